package broadlink

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/litinoveweedle/SmartIR/internal/b64"
	"github.com/litinoveweedle/SmartIR/internal/format"
	"github.com/litinoveweedle/SmartIR/internal/frame"
	"github.com/litinoveweedle/SmartIR/internal/options"
	"github.com/litinoveweedle/SmartIR/internal/pulse"
)

const previewLen = 30

func init() {
	// Lowest priority: anything that is not claimed by another format is
	// treated as a base64 Broadlink packet.
	format.Register(format.Detection{Priority: 0}, Decoder{})
}

// Decoder implements decoding of base64 Broadlink IR packets.
type Decoder struct{}

// Name returns the canonical decoder name.
func (Decoder) Name() string { return "broadlink" }

// Decode base64-decodes raw, validates the packet framing and extracts the
// pulse durations.
func (Decoder) Decode(ctx context.Context, raw string) (format.Output, error) {
	log := options.Logger(ctx)
	decoded, err := b64.Decode(raw)
	if err != nil {
		return format.Output{}, fmt.Errorf("%w: %w", format.ErrInvalid, err)
	}
	if decoded.Skipped > 0 {
		log.WithField("skipped", decoded.Skipped).Debug("ignored characters outside the base64 alphabet")
	}
	log.WithFields(logrus.Fields{
		"hex":   options.Preview(b64.Hex(decoded.Data), previewLen),
		"bytes": len(decoded.Data),
	}).Debug("decoded broadlink packet")

	packet, err := frame.Parse(decoded.Data)
	if err != nil {
		return format.Output{ByteCount: len(decoded.Data)}, fmt.Errorf("%w: %w", format.ErrInvalid, err)
	}
	return format.Output{
		Pulses:    pulse.Extract(packet.Body()),
		Repeat:    int(packet.Repeat),
		ByteCount: len(decoded.Data),
	}, nil
}
