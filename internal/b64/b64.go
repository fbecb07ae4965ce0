package b64

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Decoded holds the bytes recovered from a command string together with the
// number of characters that were not part of the base64 alphabet.
type Decoded struct {
	Data    []byte
	Skipped int
}

// Decode converts a base64 command string to bytes. Decoding stops at the
// first '=' and ignores any character outside the standard alphabet. A single
// dangling symbol after the last full group yields one byte holding its six
// bits shifted left by two.
func Decode(s string) (Decoded, error) {
	clean := make([]byte, 0, len(s))
	skipped := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '=' {
			break
		}
		if strings.IndexByte(alphabet, c) < 0 {
			skipped++
			continue
		}
		clean = append(clean, c)
	}
	data, err := decodeSymbols(clean)
	if err != nil {
		return Decoded{Skipped: skipped}, err
	}
	return Decoded{Data: data, Skipped: skipped}, nil
}

// decodeSymbols decodes unpadded base64 symbols, flushing a dangling symbol.
func decodeSymbols(symbols []byte) ([]byte, error) {
	var dangling []byte
	if len(symbols)%4 == 1 {
		last := symbols[len(symbols)-1]
		v := strings.IndexByte(alphabet, last)
		if v < 0 {
			return nil, fmt.Errorf("decode base64: illegal symbol %q", last)
		}
		dangling = []byte{byte(v) << 2}
		symbols = symbols[:len(symbols)-1]
	}
	data := make([]byte, base64.RawStdEncoding.DecodedLen(len(symbols)), base64.RawStdEncoding.DecodedLen(len(symbols))+len(dangling))
	n, err := base64.RawStdEncoding.Decode(data, symbols)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return append(data[:n], dangling...), nil
}

// Hex renders bytes as uppercase hex digits, two per byte.
func Hex(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}
