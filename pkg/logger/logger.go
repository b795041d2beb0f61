package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

// Init builds the JSON logger every package shares. LOG_LEVEL (debug, info,
// warn, error) overrides the info default.
func Init() {
	level := slog.LevelInfo
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			level = slog.LevelInfo
		}
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler).With(slog.String("service", "siteseekers-api"))
}
