// Package stego implements the zero-width steganographic encoding used to
// carry an encrypted watermark inside otherwise-ordinary text.
//
// # Alphabet
//
// Three zero-visual-width code points are reserved system-wide:
//
//   - U+200D (zero-width joiner): frame marker
//   - U+200B (zero-width space): bit 0
//   - U+200C (zero-width non-joiner): bit 1
//
// A frame is the marker followed by 8 code points per ASCII character of
// the hex-encoded encrypted block. Frames are only ever appended to the
// end of visible content; the visible content itself is never modified.
//
// # Totality
//
// Decoding runs against arbitrary untrusted text (leak scanners, content
// pipelines), so every function in this package returns a failure value
// instead of panicking, no matter the input.
package stego
