package stego

import "strings"

const (
	// Marker is the reserved code point that precedes every frame.
	Marker = '‍'
	// BitZero encodes a 0 bit.
	BitZero = '​'
	// BitOne encodes a 1 bit.
	BitOne = '‌'
)

// EncodeBits maps each byte of s to eight zero-width code points, one per
// bit, most significant bit first. The input is expected to be an ASCII
// hex string, but any byte string round-trips.
func EncodeBits(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 8 * 3) // each zero-width rune is 3 bytes in UTF-8
	for i := 0; i < len(s); i++ {
		c := s[i]
		for bit := 7; bit >= 0; bit-- {
			if c&(1<<uint(bit)) != 0 {
				b.WriteRune(BitOne)
			} else {
				b.WriteRune(BitZero)
			}
		}
	}
	return b.String()
}

// DecodeBits reverses EncodeBits. It fails with ErrCorruptFrame if seq
// contains any rune outside the bit alphabet or its length is not a
// multiple of 8 bits. It never panics; seq is untrusted.
func DecodeBits(seq string) (string, error) {
	var out strings.Builder
	var cur byte
	n := 0
	for _, r := range seq {
		switch r {
		case BitZero:
			cur <<= 1
		case BitOne:
			cur = cur<<1 | 1
		default:
			return "", ErrCorruptFrame
		}
		n++
		if n == 8 {
			out.WriteByte(cur)
			cur, n = 0, 0
		}
	}
	if n != 0 {
		return "", ErrCorruptFrame
	}
	return out.String(), nil
}

// isBitRun reports whether s is non-empty and consists exclusively of the
// two bit code points.
func isBitRun(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != BitZero && r != BitOne {
			return false
		}
	}
	return true
}
