package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	configmocks "github.com/joshuarp/settlement-engine/internal/mock/shared/config"
)

type LoggerSuite struct{ suite.Suite }

func (s *LoggerSuite) TestParseLevel_TableDriven() {
	tests := []struct {
		input  string
		expect slog.Level
	}{
		{input: "debug", expect: slog.LevelDebug},
		{input: " WARN ", expect: slog.LevelWarn},
		{input: "warning", expect: slog.LevelWarn},
		{input: "error", expect: slog.LevelError},
		{input: "", expect: slog.LevelInfo},
		{input: "verbose", expect: slog.LevelInfo},
	}

	for _, tc := range tests {
		s.Run(tc.input, func() {
			assert.Equal(s.T(), tc.expect, parseLevel(tc.input))
		})
	}
}

func (s *LoggerSuite) TestJSONHandlerWritesUTCTimestamps() {
	var buf bytes.Buffer
	logger := slog.New(newJSONHandler(&buf, slog.LevelInfo))

	logger.Debug("hidden")
	logger.Info("order claimed", "order_id", "wd-1", "chain_id", "eth-mainnet")

	var line map[string]any
	require.NoError(s.T(), json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(s.T(), "order claimed", line["msg"])
	assert.Equal(s.T(), "wd-1", line["order_id"])

	ts, err := time.Parse(time.RFC3339, line["time"].(string))
	require.NoError(s.T(), err)
	assert.Equal(s.T(), time.UTC, ts.Location())
}

func (s *LoggerSuite) TestNewJSONLoggerReloadsLevel() {
	cfg := configmocks.NewConfigProvider(s.T())

	var reload func()
	cfg.EXPECT().GetString("logging.level").Return("error").Once()
	cfg.EXPECT().OnChange(mock.Anything).Run(func(fn func()) { reload = fn }).Return()

	logger := NewJSONLogger(cfg)
	require.NotNil(s.T(), reload)
	assert.False(s.T(), logger.Enabled(context.Background(), slog.LevelInfo))

	cfg.EXPECT().GetString("logging.level").Return("debug").Once()
	reload()
	assert.True(s.T(), logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerSuite))
}
