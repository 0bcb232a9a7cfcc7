package textseal

import (
	"errors"

	"github.com/textseal/textseal-go/internal/crypto"
	"github.com/textseal/textseal-go/internal/stego"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrKeyTooShort is returned by New when the secret is shorter than
	// MinSecretLength. Construction fails fast; the engine never exists
	// in a half-valid state.
	ErrKeyTooShort = errors.New("secret must be at least 32 characters")

	// ErrInvalidMode is returned by New for an unrecognized mode.
	ErrInvalidMode = errors.New("invalid signing mode")

	// ErrNoWatermark is reported by Extract when content carries no
	// marker code point. This is a normal outcome for unwatermarked
	// text, not a failure.
	ErrNoWatermark = errors.New("no watermark found")

	// ErrCorruptFrame is reported by Extract when a frame is present but
	// its invisible bit run cannot be decoded.
	ErrCorruptFrame = errors.New("corrupt watermark frame")

	// ErrMalformedBlock is reported by Extract when the decoded frame is
	// not a well-formed encrypted block.
	ErrMalformedBlock = errors.New("malformed encrypted block")

	// ErrAuthentication is reported by Extract when the encrypted block
	// fails authentication: tampering or a different secret.
	ErrAuthentication = errors.New("watermark authentication failed")

	// ErrPayloadDecode is reported by Extract when the decrypted
	// plaintext is not a valid JSON object.
	ErrPayloadDecode = errors.New("watermark payload decode failed")

	// ErrPayloadTooLarge is returned by Sign when the serialized payload
	// exceeds the configured size cap.
	ErrPayloadTooLarge = errors.New("serialized payload exceeds size cap")

	// ErrAttestationDisabled is returned by Attest when the engine was
	// built without WithAttestation.
	ErrAttestationDisabled = errors.New("attestation not enabled")
)

// wrapExtractError maps internal errors onto the public sentinels so
// callers can use errors.Is on ExtractResult.Err without importing
// internal packages.
func wrapExtractError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, stego.ErrCorruptFrame):
		return ErrCorruptFrame
	case errors.Is(err, crypto.ErrMalformedBlock):
		return ErrMalformedBlock
	case errors.Is(err, crypto.ErrAuthentication):
		return ErrAuthentication
	}
	return err
}
