// Package irpulse converts infrared remote command strings into signed pulse
// durations. A command is either a bracketed list of integers or a base64
// Broadlink IR packet.
package irpulse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/litinoveweedle/SmartIR/internal/format"
	_ "github.com/litinoveweedle/SmartIR/internal/format/broadlink" // register decoder
	_ "github.com/litinoveweedle/SmartIR/internal/format/literal"   // register decoder
	"github.com/litinoveweedle/SmartIR/internal/options"
)

const previewLen = 30

// Result captures the outcome of Decode.
type Result struct {
	Format    string
	Repeat    int
	ByteCount int
	Pulses    Pulses
}

// String renders a human-readable representation of the result.
func (r Result) String() string {
	summary := map[string]any{
		"format": r.Format,
		"count":  r.Pulses.Len(),
		"pulses": r.Pulses.Values(),
	}
	if r.ByteCount > 0 {
		summary["byte_count"] = r.ByteCount
		summary["repeat"] = r.Repeat
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("format: %s pulses:%s (marshal error: %v)", r.Format, r.Pulses, err)
	}
	return string(data)
}

// Formats lists the registered command formats in the order they are tried.
func Formats() []string {
	return format.Names()
}

// Decode selects the command format and returns the decoded pulses.
func Decode(ctx context.Context, command string) (Result, error) {
	return DecodeWithOptions(ctx, command, DecodeOptions{})
}

// DecodeWithOptions decodes the command with custom options. On error the
// returned Result carries no pulses.
func DecodeWithOptions(ctx context.Context, command string, opts DecodeOptions) (Result, error) {
	ctx = opts.toInternal(ctx)
	log := options.Logger(ctx)
	log.WithField("preview", options.Preview(command, previewLen)).Debug("decoding command")

	dec, err := format.Lookup(command)
	if err != nil {
		return Result{}, err
	}
	result := Result{Format: dec.Name()}

	out, err := dec.Decode(ctx, command)
	if err != nil {
		err = classify(dec.Name(), err)
		opts.record(result.Format, err, 0)
		result.ByteCount = out.ByteCount
		log.WithError(err).Debug("command rejected")
		return result, err
	}
	result.Repeat = out.Repeat
	result.ByteCount = out.ByteCount
	result.Pulses = newPulses(out.Pulses)
	opts.record(result.Format, nil, result.Pulses.Len())
	return result, nil
}

func classify(name string, err error) error {
	switch {
	case errors.Is(err, format.ErrMalformed):
		return &Error{Kind: KindMalformedLiteral, Format: name, Message: err.Error(), Cause: err}
	case errors.Is(err, format.ErrInvalid):
		return &Error{Kind: KindInvalidPayload, Format: name, Message: err.Error(), Cause: err}
	default:
		return err
	}
}
