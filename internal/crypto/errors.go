package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrMalformedBlock is returned when an encrypted block string does
	// not consist of exactly three non-empty ':'-separated hex fields.
	ErrMalformedBlock = errors.New("malformed encrypted block")

	// ErrAuthentication is returned when the AEAD authentication tag does
	// not verify: the block was tampered with or the key is wrong.
	ErrAuthentication = errors.New("authentication failed")

	// ErrInvalidSecretSize is returned when the secret used to derive the
	// attestation keypair is too short.
	ErrInvalidSecretSize = errors.New("invalid secret size")
)
