package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joshuarp/settlement-engine/internal/shared/config"
)

// NewJSONLogger logs JSON to stdout. The level follows logging.level and is
// re-read whenever the config file reloads.
func NewJSONLogger(cfg config.ConfigProvider) *slog.Logger {
	level := new(slog.LevelVar)
	level.Set(parseLevel(cfg.GetString("logging.level")))

	cfg.OnChange(func() {
		level.Set(parseLevel(cfg.GetString("logging.level")))
	})

	return slog.New(newJSONHandler(os.Stdout, level))
}

func newJSONHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, attr.Value.Time().UTC().Format(time.RFC3339))
			}
			return attr
		},
	})
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
