package irpulse

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/litinoveweedle/SmartIR/internal/metrics"
	internalopts "github.com/litinoveweedle/SmartIR/internal/options"
)

// Recorder receives one call per decoded command. outcome is "ok" or the
// error Kind.
type Recorder interface {
	RecordDecode(format, outcome string, pulses int)
}

var _ Recorder = (*metrics.Metrics)(nil)

// DecodeOptions configures decoding.
type DecodeOptions struct {
	// Logger receives debug diagnostics. Nil keeps whatever logger ctx
	// already carries, or discards output.
	Logger   logrus.FieldLogger
	Recorder Recorder
}

func (opts DecodeOptions) toInternal(ctx context.Context) context.Context {
	return internalopts.WithLogger(ctx, opts.Logger)
}

func (opts DecodeOptions) record(format string, err error, pulses int) {
	if opts.Recorder == nil {
		return
	}
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = "error"
		if kind := KindOf(err); kind != "" {
			outcome = string(kind)
		}
	}
	opts.Recorder.RecordDecode(format, outcome, pulses)
}
