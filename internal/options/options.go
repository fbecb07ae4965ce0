package options

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

type contextKey struct{}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// WithLogger stores the provided logger inside the context.
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	if logger == nil {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, logger)
}

// Logger retrieves the logger from context. Callers that never attached one
// get a logger that drops everything.
func Logger(ctx context.Context) logrus.FieldLogger {
	if v := ctx.Value(contextKey{}); v != nil {
		if logger, ok := v.(logrus.FieldLogger); ok {
			return logger
		}
	}
	return discard
}

// Preview truncates s to at most n bytes for diagnostic output.
func Preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
