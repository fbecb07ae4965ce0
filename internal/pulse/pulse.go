package pulse

// TickScale converts Broadlink units (269/8192 ms) into output ticks. The
// product is taken in float32; float64 truncates one tick lower for some
// escaped durations (e.g. 0x1187).
const TickScale float32 = 30.45353165

// escape introduces a big-endian 16-bit duration in the next two bytes.
const escape = 0x00

// trailerLen is the final escaped gap (00 0D 05) that the walk leaves alone.
const trailerLen = 3

// Extract walks a packet body and returns signed durations in ticks. Even
// positions are marks (positive), odd positions spaces (negative).
func Extract(body []byte) []int {
	out := make([]int, 0, len(body))
	for n := 0; n < len(body)-trailerLen; n++ {
		k := int(body[n])
		if k == escape {
			k = int(body[n+1])<<8 | int(body[n+2])
			n += 2
		}
		v := Ticks(k)
		if len(out)%2 != 0 {
			v = -v
		}
		out = append(out, v)
	}
	return out
}

// Ticks converts one Broadlink duration unit count to ticks, truncating.
func Ticks(units int) int {
	return int(float32(units) * TickScale)
}

// Units converts ticks back to the nearest Broadlink unit count. The sign is
// dropped.
func Units(ticks int) int {
	if ticks < 0 {
		ticks = -ticks
	}
	return int(float32(ticks)/TickScale + 0.5)
}
