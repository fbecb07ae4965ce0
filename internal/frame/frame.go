package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// TypeIR marks a Broadlink infrared packet. RF packets use 0xB2/0xD7.
	TypeIR     = 0x26
	headerSize = 4
)

// Trailer terminates every valid packet. It doubles as the escaped long gap
// that ends the last pulse pair.
var Trailer = [2]byte{0x0D, 0x05}

var (
	ErrTooShort        = errors.New("packet shorter than header")
	ErrTruncated       = errors.New("declared length exceeds packet data")
	ErrUnsupportedType = errors.New("packet is not an infrared packet")
	ErrBadTrailer      = errors.New("packet trailer mismatch")
)

// Packet represents a validated Broadlink IR packet. Raw keeps any padding
// that followed the declared length.
type Packet struct {
	Raw    []byte
	Type   byte
	Repeat byte
	Length uint16
}

// Parse validates the header and trailer of a decoded packet.
func Parse(raw []byte) (Packet, error) {
	if len(raw) < headerSize {
		return Packet{}, fmt.Errorf("%w: %d bytes", ErrTooShort, len(raw))
	}
	p := Packet{
		Raw:    raw,
		Type:   raw[0],
		Repeat: raw[1],
		Length: binary.LittleEndian.Uint16(raw[2:4]),
	}
	end := p.End()
	if end > len(raw) {
		return Packet{}, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, end, len(raw))
	}
	if p.Type != TypeIR {
		return Packet{}, fmt.Errorf("%w: type 0x%02X", ErrUnsupportedType, p.Type)
	}
	if raw[end-2] != Trailer[0] || raw[end-1] != Trailer[1] {
		return Packet{}, fmt.Errorf("%w: got %02X%02X at offset %d", ErrBadTrailer, raw[end-2], raw[end-1], end-2)
	}
	return p, nil
}

// End returns the offset just past the trailer.
func (p Packet) End() int {
	return int(p.Length) + headerSize
}

// Body returns the bytes covered by the declared length, trailer included.
func (p Packet) Body() []byte {
	return p.Raw[headerSize:p.End()]
}
