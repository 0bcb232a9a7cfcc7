package textseal

import (
	"fmt"
	"time"

	"github.com/textseal/textseal-go/internal/crypto"
)

// Engine signs, watermarks, and verifies text content. It is immutable
// after construction and safe for concurrent use; every operation is a
// pure function of its inputs plus the key and mode captured here.
type Engine struct {
	aesKey  []byte // first 32 bytes of the secret
	hmacKey []byte // full secret
	mode    Mode

	// mode resolved once into strategy flags, so Sign and Extract never
	// compare mode strings per call.
	embedFrame   bool
	detachedHMAC bool

	maxPayloadSize int
	attestKey      *crypto.AttestKey

	now func() time.Time
}

// New creates an engine from a shared secret. The secret must be at
// least 32 bytes: the first 32 bytes become the AEAD key and the full
// secret the HMAC key. The length is enforced here, once, and never
// re-validated per call.
func New(secret string, opts ...Option) (*Engine, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("%w: got %d bytes", ErrKeyTooShort, len(secret))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	e := &Engine{
		aesKey:         []byte(secret)[:crypto.AESKeySize],
		hmacKey:        []byte(secret),
		mode:           cfg.mode,
		maxPayloadSize: cfg.maxPayloadSize,
		now:            time.Now,
	}

	switch cfg.mode {
	case ModeNone:
	case ModeHMAC:
		e.detachedHMAC = true
	case ModeSteganography:
		e.embedFrame = true
	case ModeDual:
		e.embedFrame = true
		e.detachedHMAC = true
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, cfg.mode)
	}

	if cfg.attestation {
		key, err := crypto.DeriveAttestKey([]byte(secret))
		if err != nil {
			return nil, fmt.Errorf("derive attestation key: %w", err)
		}
		e.attestKey = key
	}

	return e, nil
}

// Mode returns the signing mode the engine was built with.
func (e *Engine) Mode() Mode {
	return e.mode
}
