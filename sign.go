package textseal

import (
	"encoding/json"
	"fmt"

	"github.com/textseal/textseal-go/internal/crypto"
	"github.com/textseal/textseal-go/internal/stego"
)

// SignResult is the outcome of Sign.
type SignResult struct {
	// Content is the original text, with the invisible watermark frame
	// appended when the mode embeds one. It renders identically to the
	// input.
	Content string

	// Signature is the detached hex HMAC over Content, present for
	// ModeHMAC and ModeDual. In ModeDual it is computed over the
	// already-framed content, so it also authenticates watermark
	// integrity.
	Signature string
}

// TimestampField is the payload key Sign reserves for the signing time,
// in integer milliseconds since the Unix epoch. A caller-supplied value
// under this key is overwritten.
const TimestampField = "t"

// Sign watermarks and/or signs content according to the engine's mode.
// payload may be nil; it is merged with the signing timestamp, encrypted,
// and carried inside the invisible frame. The visible content is never
// modified, only appended to.
//
// Sign fails only on programmer misuse: a payload that does not
// JSON-serialize, or one whose serialized form exceeds the configured
// cap. Adversarial content never makes it fail.
func (e *Engine) Sign(content string, payload map[string]any) (*SignResult, error) {
	data := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		data[k] = v
	}
	data[TimestampField] = e.now().UnixMilli()

	plaintext, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("serialize payload: %w", err)
	}
	if e.maxPayloadSize > 0 && len(plaintext) > e.maxPayloadSize {
		return nil, fmt.Errorf("%w: %d bytes, cap %d", ErrPayloadTooLarge, len(plaintext), e.maxPayloadSize)
	}

	out := content
	if e.embedFrame {
		block, err := crypto.EncryptBlock(e.aesKey, plaintext)
		if err != nil {
			return nil, fmt.Errorf("encrypt payload: %w", err)
		}
		out += stego.EmbedFrame(block)
	}

	result := &SignResult{Content: out}
	if e.detachedHMAC {
		result.Signature = crypto.SignContentHMAC(e.hmacKey, out)
	}
	return result, nil
}
