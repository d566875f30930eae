package lgctx

import (
	"context"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pw-alert/log"
)

type loggerKey struct{}

func NewContext(parent context.Context, logger lager.Logger) context.Context {
	return context.WithValue(parent, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or a logger that discards
// everything when there is none.
func FromContext(ctx context.Context) lager.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(lager.Logger); ok {
		return logger
	}

	return log.NewNullLogger()
}

func WithSession(ctx context.Context, task string, data ...lager.Data) lager.Logger {
	return FromContext(ctx).Session(task, data...)
}

func WithData(ctx context.Context, data lager.Data) lager.Logger {
	return FromContext(ctx).WithData(data)
}
