package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// EncryptBlock encrypts plaintext with AES-256-GCM under a fresh random
// 96-bit IV and returns the block as "iv_hex:authtag_hex:ciphertext_hex".
func EncryptBlock(key, plaintext []byte) (string, error) {
	if len(key) != AESKeySize {
		return "", fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), AESKeySize)
	}

	iv := make([]byte, AESIVSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	// Seal appends the 16-byte tag to the ciphertext; the block format
	// carries them as separate fields.
	sealed := gcm.Seal(nil, iv, plaintext, nil)
	ciphertext := sealed[:len(sealed)-AESTagSize]
	tag := sealed[len(sealed)-AESTagSize:]

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(tag) + ":" + hex.EncodeToString(ciphertext), nil
}

// DecryptBlock reverses EncryptBlock. It fails with ErrMalformedBlock
// unless block has exactly three non-empty hex fields of the right sizes,
// and with ErrAuthentication when the tag does not verify.
func DecryptBlock(key []byte, block string) ([]byte, error) {
	if len(key) != AESKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), AESKeySize)
	}

	parts := strings.Split(block, ":")
	if len(parts) != BlockFields {
		return nil, fmt.Errorf("%w: got %d fields, want %d", ErrMalformedBlock, len(parts), BlockFields)
	}
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("%w: empty field", ErrMalformedBlock)
		}
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: decode iv: %v", ErrMalformedBlock, err)
	}
	tag, err := hex.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: decode auth tag: %v", ErrMalformedBlock, err)
	}
	ciphertext, err := hex.DecodeString(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: decode ciphertext: %v", ErrMalformedBlock, err)
	}

	// GCM panics on a wrong-size nonce, so size errors must be caught
	// here, before Open.
	if len(iv) != AESIVSize {
		return nil, fmt.Errorf("%w: iv is %d bytes, want %d", ErrMalformedBlock, len(iv), AESIVSize)
	}
	if len(tag) != AESTagSize {
		return nil, fmt.Errorf("%w: auth tag is %d bytes, want %d", ErrMalformedBlock, len(tag), AESTagSize)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, iv, append(ciphertext, tag...), nil)
	if err != nil {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}
	return gcm, nil
}
