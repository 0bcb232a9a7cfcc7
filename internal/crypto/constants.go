package crypto

const (
	// AttestContext is the HKDF info string used when deriving the
	// attestation signing seed, for domain separation.
	AttestContext = "textseal:attest:v1"

	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESIVSize is the size of an AES-GCM IV in bytes.
	AESIVSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16

	// HMACSize is the size of an HMAC-SHA256 signature in bytes.
	HMACSize = 32

	// BlockFields is the number of ':'-separated hex fields in an
	// encrypted block string: IV, auth tag, ciphertext.
	BlockFields = 3

	// AttestSeedSize is the size of the ML-DSA-65 keypair seed in bytes.
	AttestSeedSize = 32
)
