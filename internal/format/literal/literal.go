package literal

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/litinoveweedle/SmartIR/internal/format"
	"github.com/litinoveweedle/SmartIR/internal/options"
)

const priority = 10

func init() {
	format.Register(format.Detection{Priority: priority, Match: Match}, Decoder{})
}

// Match reports whether raw is a bracketed list such as "[100,-200,300]".
func Match(raw string) bool {
	return len(raw) >= 2 && raw[0] == '[' && raw[len(raw)-1] == ']'
}

// Decoder parses bracketed lists of signed decimal durations.
type Decoder struct{}

// Name returns the canonical decoder name.
func (Decoder) Name() string { return "raw" }

// Decode parses every comma separated token between the brackets. The first
// token that is not an integer fails the whole command.
func (Decoder) Decode(ctx context.Context, raw string) (format.Output, error) {
	pulses, err := Parse(raw)
	if err != nil {
		return format.Output{}, err
	}
	options.Logger(ctx).WithField("pulses", len(pulses)).Debug("parsed raw pulse list")
	return format.Output{Pulses: pulses}, nil
}

// Parse is the matching-free core of Decode.
func Parse(raw string) ([]int, error) {
	if !Match(raw) {
		return nil, fmt.Errorf("%w: %q is not a bracketed list", format.ErrMalformed, options.Preview(raw, 30))
	}
	tokens := strings.Split(raw[1:len(raw)-1], ",")
	pulses := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q: %w", format.ErrMalformed, i, tok, err)
		}
		pulses = append(pulses, v)
	}
	return pulses, nil
}
