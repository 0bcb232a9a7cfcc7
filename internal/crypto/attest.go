package crypto

import (
	"crypto/sha512"
	"fmt"
	"io"

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"golang.org/x/crypto/hkdf"
)

// AttestKey is an ML-DSA-65 keypair used for detached attestation
// signatures. The same secret always derives the same keypair, so any
// engine built from the secret can attest, and third parties holding only
// the public key can verify.
type AttestKey struct {
	pub  *mldsa65.PublicKey
	priv *mldsa65.PrivateKey
}

// DeriveAttestKey derives the attestation keypair from the shared secret.
// The seed is HKDF-SHA-512(secret) under AttestContext, keeping the
// attestation key domain-separated from the AEAD and HMAC keys.
func DeriveAttestKey(secret []byte) (*AttestKey, error) {
	if len(secret) < AttestSeedSize {
		return nil, fmt.Errorf("%w: got %d, want at least %d", ErrInvalidSecretSize, len(secret), AttestSeedSize)
	}

	reader := hkdf.New(sha512.New, secret, nil, []byte(AttestContext))
	var seed [mldsa65.SeedSize]byte
	if _, err := io.ReadFull(reader, seed[:]); err != nil {
		return nil, fmt.Errorf("derive attestation seed: %w", err)
	}

	pub, priv := mldsa65.NewKeyFromSeed(&seed)
	return &AttestKey{pub: pub, priv: priv}, nil
}

// Sign produces a detached ML-DSA-65 signature over the UTF-8 bytes of
// content.
func (k *AttestKey) Sign(content string) ([]byte, error) {
	sig := make([]byte, mldsa65.SignatureSize)
	if err := mldsa65.SignTo(k.priv, []byte(content), nil, false, sig); err != nil {
		return nil, fmt.Errorf("attestation sign: %w", err)
	}
	return sig, nil
}

// Verify reports whether sig is a valid attestation signature over
// content. Wrong-length signatures verify as false.
func (k *AttestKey) Verify(content string, sig []byte) bool {
	if len(sig) != mldsa65.SignatureSize {
		return false
	}
	return mldsa65.Verify(k.pub, []byte(content), nil, sig)
}

// PublicKeyBytes returns the packed public key for distribution to
// verifiers.
func (k *AttestKey) PublicKeyBytes() ([]byte, error) {
	return k.pub.MarshalBinary()
}

// VerifyAttestation verifies a detached attestation signature against a
// packed public key, without access to the shared secret.
func VerifyAttestation(publicKey []byte, content string, sig []byte) error {
	var pub mldsa65.PublicKey
	if err := pub.UnmarshalBinary(publicKey); err != nil {
		return fmt.Errorf("unmarshal public key: %w", err)
	}
	if len(sig) != mldsa65.SignatureSize || !mldsa65.Verify(&pub, []byte(content), nil, sig) {
		return ErrAuthentication
	}
	return nil
}
