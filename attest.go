package textseal

import (
	"github.com/textseal/textseal-go/internal/crypto"
)

// Attest produces a detached ML-DSA-65 signature over content, encoded
// as unpadded base64url. Unlike the HMAC signature, an attestation can
// be verified by third parties holding only AttestationPublicKey, not
// the shared secret. Requires WithAttestation.
func (e *Engine) Attest(content string) (string, error) {
	if e.attestKey == nil {
		return "", ErrAttestationDisabled
	}
	sig, err := e.attestKey.Sign(content)
	if err != nil {
		return "", err
	}
	return crypto.ToBase64URL(sig), nil
}

// VerifyAttestation reports whether signature is a valid attestation
// over content. Malformed base64 and wrong-length signatures verify as
// false, as does any call on an engine built without WithAttestation.
func (e *Engine) VerifyAttestation(content, signature string) bool {
	if e.attestKey == nil {
		return false
	}
	sig, err := crypto.FromBase64URL(signature)
	if err != nil {
		return false
	}
	return e.attestKey.Verify(content, sig)
}

// AttestationPublicKey returns the packed public attestation key for
// distribution to verifiers, or an error if attestation is not enabled.
// Verifiers check signatures with [VerifyAttestationKey].
func (e *Engine) AttestationPublicKey() ([]byte, error) {
	if e.attestKey == nil {
		return nil, ErrAttestationDisabled
	}
	return e.attestKey.PublicKeyBytes()
}

// VerifyAttestationKey verifies a detached attestation signature using
// only a packed public key, for verifiers without the shared secret.
func VerifyAttestationKey(publicKey []byte, content, signature string) bool {
	sig, err := crypto.FromBase64URL(signature)
	if err != nil {
		return false
	}
	return crypto.VerifyAttestation(publicKey, content, sig) == nil
}
