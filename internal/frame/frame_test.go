package frame

import (
	"encoding/hex"
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	raw := decodeHex(t, "260207002211223300"+"0D05"+"000000000000")
	p, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Repeat != 2 {
		t.Fatalf("repeat mismatch: %d", p.Repeat)
	}
	if p.Length != 7 {
		t.Fatalf("length mismatch: %d", p.Length)
	}
	if p.End() != 11 {
		t.Fatalf("unexpected end %d", p.End())
	}
	if got := hex.EncodeToString(p.Body()); got != "22112233000d05" {
		t.Fatalf("unexpected body %s", got)
	}
}

func TestParseRejects(t *testing.T) {
	cases := []struct {
		name string
		hex  string
		want error
	}{
		{"too short", "2600", ErrTooShort},
		{"empty", "", ErrTooShort},
		{"truncated", "26005000102030", ErrTruncated},
		{"rf packet", "B20005001020000D0500", ErrUnsupportedType},
		{"bad trailer", "26000500102030" + "0D06", ErrBadTrailer},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(decodeHex(t, tc.hex))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestParseTruncatedBeforeType(t *testing.T) {
	// Length is checked first, so an RF packet with a bogus length still
	// reports truncation.
	_, err := Parse(decodeHex(t, "B200FF00"))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex decode: %v", err)
	}
	return b
}
