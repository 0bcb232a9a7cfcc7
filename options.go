package textseal

// Mode selects which protections Sign applies.
type Mode string

const (
	// ModeNone passes content through untouched: no watermark, no
	// detached signature.
	ModeNone Mode = "none"
	// ModeHMAC produces only a detached HMAC-SHA256 signature.
	ModeHMAC Mode = "hmac"
	// ModeSteganography embeds only the invisible watermark frame.
	ModeSteganography Mode = "steganography"
	// ModeDual embeds the watermark and signs the framed content, so the
	// detached signature also authenticates watermark integrity.
	ModeDual Mode = "dual"
)

const (
	// MinSecretLength is the minimum secret length accepted by New.
	MinSecretLength = 32

	// defaultMaxPayloadSize bounds the serialized payload, which bounds
	// the invisible-character overhead: each payload byte costs roughly
	// 8 zero-width runes once encrypted, hex-encoded, and bit-encoded.
	defaultMaxPayloadSize = 200
)

// engineConfig holds configuration for the engine.
type engineConfig struct {
	mode           Mode
	maxPayloadSize int
	attestation    bool
}

// Option configures the engine.
type Option func(*engineConfig)

// WithMode sets the signing mode. Default: ModeDual.
func WithMode(mode Mode) Option {
	return func(c *engineConfig) {
		c.mode = mode
	}
}

// WithMaxPayloadSize sets the cap on the serialized payload in bytes,
// timestamp field included. Zero disables the cap.
// Default: 200 bytes.
func WithMaxPayloadSize(n int) Option {
	return func(c *engineConfig) {
		c.maxPayloadSize = n
	}
}

// WithAttestation derives an ML-DSA-65 keypair from the secret at
// construction, enabling Attest and VerifyAttestation. Third parties
// holding only AttestationPublicKey can then verify content provenance
// without the shared secret.
func WithAttestation() Option {
	return func(c *engineConfig) {
		c.attestation = true
	}
}

func defaultConfig() *engineConfig {
	return &engineConfig{
		mode:           ModeDual,
		maxPayloadSize: defaultMaxPayloadSize,
	}
}
