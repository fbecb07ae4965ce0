package irpulse

import "errors"

// Kind is a stable category for programmatic error handling. Branch on Kind
// rather than on error strings.
type Kind string

const (
	// KindMalformedLiteral: a token of a bracketed list is not an integer.
	KindMalformedLiteral Kind = "MalformedLiteral"
	// KindInvalidPayload: an encoded packet is truncated, is not an IR
	// packet or lacks the 0D 05 trailer.
	KindInvalidPayload Kind = "InvalidPayload"
)

// Error is the structured error returned by Decode.
type Error struct {
	Kind    Kind
	Format  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// IsKind reports whether err is (or wraps) an *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// KindOf returns the Kind of a structured error, or "" if err is not one.
func KindOf(err error) Kind {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Kind
}
