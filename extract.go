package textseal

import (
	"encoding/json"

	"github.com/textseal/textseal-go/internal/crypto"
	"github.com/textseal/textseal-go/internal/stego"
)

// ExtractResult is the outcome of Extract. When IsValid is false, Err
// holds one of the package sentinels (ErrNoWatermark, ErrCorruptFrame,
// ErrMalformedBlock, ErrAuthentication, ErrPayloadDecode).
type ExtractResult struct {
	// IsValid reports whether an authentic watermark was recovered.
	IsValid bool

	// Payload is the decrypted watermark payload, timestamp field
	// included. JSON numbers appear as float64.
	Payload map[string]any

	// Timestamp is the signing time in milliseconds since the Unix
	// epoch, taken from the payload's "t" field.
	Timestamp int64

	// Err classifies the failure when IsValid is false.
	Err error
}

// Extract recovers and authenticates the watermark payload from content.
// It is total: any failure, from missing marker to a forged ciphertext,
// collapses into an invalid result instead of an error, so it is safe to
// run against arbitrary untrusted text. If the same content was signed
// more than once, only the most recent watermark is recovered.
func (e *Engine) Extract(content string) *ExtractResult {
	tail, found := stego.ExtractFrame(content)
	if !found {
		return &ExtractResult{Err: ErrNoWatermark}
	}

	block, err := stego.DecodeBits(tail)
	if err != nil {
		return &ExtractResult{Err: wrapExtractError(err)}
	}

	plaintext, err := crypto.DecryptBlock(e.aesKey, block)
	if err != nil {
		return &ExtractResult{Err: wrapExtractError(err)}
	}

	var payload map[string]any
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		return &ExtractResult{Err: ErrPayloadDecode}
	}

	result := &ExtractResult{IsValid: true, Payload: payload}
	if t, ok := payload[TimestampField].(float64); ok {
		result.Timestamp = int64(t)
	}
	return result
}

// VerifyHMAC reports whether signature is a valid detached signature
// over content. Malformed signatures verify as false; the call never
// fails.
func (e *Engine) VerifyHMAC(content, signature string) bool {
	return crypto.VerifyContentHMAC(e.hmacKey, content, signature)
}

// Strip removes the trailing watermark frame from content, restoring
// the original visible text. Content without a frame is returned
// unchanged, as is content whose trailing invisible run contains
// anything beyond the two bit code points.
//
// Known limitation: a crafted run of the same invisible characters is
// indistinguishable from a genuine frame and is removed too.
func (e *Engine) Strip(content string) string {
	return stego.StripFrame(content)
}
