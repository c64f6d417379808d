package observability

import (
	"context"
	"errors"

	"github.com/kbukum/gogskit/logger"
)

// ShutdownFunc flushes and stops the exporters started by Setup.
type ShutdownFunc func(ctx context.Context) error

// Setup initialises tracing and metrics when cfg.Enabled is set. When it is
// not, the returned ShutdownFunc is a no-op and the global no-op providers stay
// in place. Provider start-up is logged at debug level on log, which may be nil.
func Setup(ctx context.Context, cfg Config, log *logger.Logger) (ShutdownFunc, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tp, err := InitTracer(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	mp, err := InitMeter(ctx, cfg, log)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}
	return func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}

func orNop(log *logger.Logger) *logger.Logger {
	if log == nil {
		return logger.Nop()
	}
	return log
}
