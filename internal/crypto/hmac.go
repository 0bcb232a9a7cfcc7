package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignContentHMAC computes the HMAC-SHA256 of the UTF-8 bytes of content
// and returns it hex-encoded (64 characters).
func SignContentHMAC(key []byte, content string) string {
	h := hmac.New(sha256.New, key)
	h.Write([]byte(content))
	return hex.EncodeToString(h.Sum(nil))
}

// VerifyContentHMAC recomputes the signature for content and compares it
// to signatureHex in constant time. Malformed hex and wrong-length
// signatures verify as false, never as an error; the input is untrusted.
func VerifyContentHMAC(key []byte, content, signatureHex string) bool {
	sig, err := hex.DecodeString(signatureHex)
	if err != nil || len(sig) != HMACSize {
		return false
	}

	h := hmac.New(sha256.New, key)
	h.Write([]byte(content))
	return hmac.Equal(sig, h.Sum(nil))
}
