// Package crypto provides the cryptographic primitives behind textseal's
// watermarking and signing engine.
//
// # Algorithm Suite
//
//   - AES-256-GCM: authenticated encryption (AEAD) of watermark payloads.
//     Provides confidentiality and tamper detection in one primitive.
//
//   - HMAC-SHA256: detached keyed signatures over content. Verification
//     uses constant-time comparison only.
//
//   - ML-DSA-65 (NIST FIPS 204): optional detached attestation signatures
//     that third parties can verify without the shared secret.
//
//   - HKDF-SHA-512 (RFC 5869): derives the attestation signing seed from
//     the shared secret with domain separation.
//
// # Encrypted block format
//
// EncryptBlock produces one ASCII string, three hex fields joined with ':'
//
//	<24-hex iv>:<32-hex authtag>:<ciphertext-hex>
//
// A fresh random 96-bit IV is generated inside every EncryptBlock call.
// IV reuse under the same key completely breaks AES-GCM, so the IV is
// never cached, counted, or accepted from the caller.
//
// # Error discipline
//
// DecryptBlock and VerifyContentHMAC run against untrusted input and fail
// with typed errors (ErrMalformedBlock, ErrAuthentication) or false; they
// never panic. An ErrAuthentication result means tampering or a wrong key
// and is indistinguishable between the two by design.
package crypto
