package stego

import "strings"

const markerString = string(Marker)

// EmbedFrame builds the invisible frame for a hex-encoded encrypted block:
// the marker code point followed by the bit encoding of the block.
func EmbedFrame(blockHex string) string {
	return markerString + EncodeBits(blockHex)
}

// ExtractFrame locates the most recent frame in content. It returns the
// text after the last marker and found=true, or found=false when no marker
// is present — a normal "no watermark" outcome, not an error. Taking the
// last marker means re-signing the same content keeps only the newest
// watermark recoverable.
func ExtractFrame(content string) (tail string, found bool) {
	idx := strings.LastIndex(content, markerString)
	if idx < 0 {
		return "", false
	}
	return content[idx+len(markerString):], true
}

// StripFrame removes the trailing frame from content, restoring the
// original visible text. The frame is removed only when the text after the
// last marker consists exclusively of the two bit code points; anything
// else after the marker means the tail is not a watermark, and content is
// returned unchanged.
//
// Known limitation: the heuristic cannot distinguish a genuine frame from
// an attacker-crafted run of the same invisible characters.
func StripFrame(content string) string {
	idx := strings.LastIndex(content, markerString)
	if idx < 0 {
		return content
	}
	if !isBitRun(content[idx+len(markerString):]) {
		return content
	}
	return content[:idx]
}
