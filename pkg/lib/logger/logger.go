package logger

import (
	"fmt"
	"io"
	"log/slog"

	"shopapi/pkg/config"
	"shopapi/pkg/lib/logger/handler/slogpretty"
)

// SetupLogger picks a handler for the deployment env: colored text for local
// runs, JSON for dev (debug and up) and prod (info and up).
func SetupLogger(env string, out io.Writer) (*slog.Logger, error) {
	switch env {
	case config.EnvLocal:
		opts := slogpretty.PrettyHandlerOptions{
			SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
		}
		return slog.New(opts.NewPrettyHandler(out)), nil
	case config.EnvDev:
		return newJSON(out, slog.LevelDebug), nil
	case config.EnvProd:
		return newJSON(out, slog.LevelInfo), nil
	default:
		return nil, fmt.Errorf("failed to init logger: unknown env %q", env)
	}
}

func newJSON(out io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}
