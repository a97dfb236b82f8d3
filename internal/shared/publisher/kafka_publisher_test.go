package publisher

import (
	"context"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fakeWriter struct {
	written []kafka.Message
	err     error
	closed  bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.written = append(w.written, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

type KafkaPublisherSuite struct {
	suite.Suite

	writer    *fakeWriter
	publisher *KafkaPublisher
}

func (s *KafkaPublisherSuite) SetupTest() {
	s.writer = &fakeWriter{}
	s.publisher = newKafkaPublisher(s.writer, "ledger.credits")
}

func (s *KafkaPublisherSuite) TestNewKafkaPublisher_Validation() {
	_, err := NewKafkaPublisher(KafkaOptions{Topic: "ledger.credits"}, nil)
	assert.ErrorContains(s.T(), err, "broker")

	_, err = NewKafkaPublisher(KafkaOptions{Brokers: []string{"localhost:9092"}}, nil)
	assert.ErrorContains(s.T(), err, "topic")

	p, err := NewKafkaPublisher(KafkaOptions{Brokers: []string{"localhost:9092"}, Topic: "ledger.credits"}, nil)
	require.NoError(s.T(), err)
	assert.NoError(s.T(), p.Close())
}

func (s *KafkaPublisherSuite) TestPublishMapsKeyAndHeaders() {
	err := s.publisher.Publish(context.Background(), Message{
		Key:     "wd-1",
		Value:   []byte(`{"order_id":"wd-1"}`),
		Headers: map[string]string{HeaderIdempotencyKey: "wd-1"},
	})
	require.NoError(s.T(), err)
	require.Len(s.T(), s.writer.written, 1)

	msg := s.writer.written[0]
	assert.Equal(s.T(), []byte("wd-1"), msg.Key)
	assert.JSONEq(s.T(), `{"order_id":"wd-1"}`, string(msg.Value))
	require.Len(s.T(), msg.Headers, 1)
	assert.Equal(s.T(), HeaderIdempotencyKey, msg.Headers[0].Key)
	assert.Equal(s.T(), []byte("wd-1"), msg.Headers[0].Value)
	assert.False(s.T(), msg.Time.IsZero())
}

func (s *KafkaPublisherSuite) TestPublish_Errors_TableDriven() {
	brokerErr := errors.New("leader not available")

	tests := []struct {
		name      string
		err       error
		assertion func(error)
	}{
		{
			name: "partial batch failure",
			err:  kafka.WriteErrors{nil, brokerErr},
			assertion: func(err error) {
				var batchErr *BatchError
				require.ErrorAs(s.T(), err, &batchErr)
				assert.False(s.T(), batchErr.Failed(0))
				assert.True(s.T(), batchErr.Failed(1))
				assert.Contains(s.T(), batchErr.Error(), "1 of 2")
			},
		},
		{
			name: "whole write failure",
			err:  brokerErr,
			assertion: func(err error) {
				assert.ErrorIs(s.T(), err, brokerErr)
				assert.ErrorContains(s.T(), err, "ledger.credits")
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.writer.err = tc.err

			err := s.publisher.Publish(context.Background(), Message{Key: "a"}, Message{Key: "b"})
			tc.assertion(err)
		})
	}
}

func (s *KafkaPublisherSuite) TestPublishEmptyAndClose() {
	require.NoError(s.T(), s.publisher.Publish(context.Background()))
	assert.Empty(s.T(), s.writer.written)

	require.NoError(s.T(), s.publisher.Close())
	assert.True(s.T(), s.writer.closed)
}

func TestKafkaPublisherSuite(t *testing.T) {
	suite.Run(t, new(KafkaPublisherSuite))
}
