package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SchedulerSuite struct {
	suite.Suite

	scheduler *Scheduler
}

func (s *SchedulerSuite) SetupTest() {
	s.scheduler = New(nil)
}

func (s *SchedulerSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = s.scheduler.Stop(ctx)
}

func (s *SchedulerSuite) TestRegister_TableDriven() {
	noop := func(context.Context) error { return nil }

	tests := []struct {
		name      string
		job       string
		spec      string
		fn        Job
		expectErr string
	}{
		{name: "descriptor", job: "process", spec: "@every 5s", fn: noop},
		{name: "cron expression", job: "recover", spec: "*/2 * * * *", fn: noop},
		{name: "duplicate", job: "process", spec: "@every 1s", fn: noop, expectErr: "already registered"},
		{name: "bad spec", job: "outbox", spec: "every now and then", fn: noop, expectErr: "invalid schedule"},
		{name: "missing job", job: "resume", spec: "@every 1s", expectErr: "required"},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			err := s.scheduler.Register(tc.job, tc.spec, tc.fn)
			if tc.expectErr != "" {
				assert.ErrorContains(s.T(), err, tc.expectErr)
				return
			}
			assert.NoError(s.T(), err)
		})
	}

	assert.ElementsMatch(s.T(), []string{"process", "recover"}, s.scheduler.Jobs())
}

func (s *SchedulerSuite) TestJobsRunAndSurviveFailures() {
	var ok, failing, panicking atomic.Int32

	require.NoError(s.T(), s.scheduler.Register("ok", "@every 1s", func(context.Context) error {
		ok.Add(1)
		return nil
	}))
	require.NoError(s.T(), s.scheduler.Register("failing", "@every 1s", func(context.Context) error {
		failing.Add(1)
		return errors.New("rpc unavailable")
	}))
	require.NoError(s.T(), s.scheduler.Register("panicking", "@every 1s", func(context.Context) error {
		panicking.Add(1)
		panic("boom")
	}))

	s.scheduler.Start()

	assert.Eventually(s.T(), func() bool {
		return ok.Load() >= 2 && failing.Load() >= 2 && panicking.Load() >= 2
	}, 5*time.Second, 50*time.Millisecond)
}

func (s *SchedulerSuite) TestStopCancelsRunningJob() {
	started := make(chan struct{})
	var cancelled atomic.Bool

	require.NoError(s.T(), s.scheduler.Register("slow", "@every 1s", func(ctx context.Context) error {
		select {
		case started <- struct{}{}:
		default:
		}
		<-ctx.Done()
		cancelled.Store(true)
		return ctx.Err()
	}))
	s.scheduler.Start()

	select {
	case <-started:
	case <-time.After(3 * time.Second):
		s.T().Fatal("job never started")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(s.T(), s.scheduler.Stop(ctx))
	assert.True(s.T(), cancelled.Load())
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerSuite))
}
