package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"harvest/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Attribute keys whose values never reach the log output.
var redactedKeys = map[string]struct{}{
	"authorization": {},
	"password":      {},
	"token":         {},
	"delivery_code": {},
}

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the process logger writing to stdout.
func New(params Params) (*slog.Logger, error) {
	return newLogger(os.Stdout, params.Config)
}

func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	var level slog.Level
	if raw := strings.TrimSpace(cfg.Env.Log.Level); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return nil, errors.Wrapf(err, "unknown log level %q", raw)
		}
	}

	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: redact}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if name := cfg.Env.ServiceName; name != "" {
		logger = logger.With(slog.String("service", name))
	}
	if env := cfg.Env.Env; env != "" {
		logger = logger.With(slog.String("env", env))
	}

	return logger, nil
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if _, ok := redactedKeys[strings.ToLower(a.Key)]; ok {
		return slog.String(a.Key, "[REDACTED]")
	}

	return a
}
