// Package textseal embeds invisible, encrypted, tamper-evident watermarks
// in arbitrary text and produces detached keyed signatures over it.
//
// A watermark is an AES-256-GCM-encrypted JSON payload, bit-encoded into
// zero-width Unicode code points and appended to the visible content. The
// text looks identical before and after signing; any holder of the shared
// secret can later extract the payload and reliably detect tampering or
// the absence of a watermark.
//
// Basic usage:
//
//	engine, err := textseal.New("a-shared-secret-of-at-least-32-chars")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	signed, err := engine.Sign("Hello World", map[string]any{"userId": 123})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// signed.Content renders exactly like "Hello World".
//	result := engine.Extract(signed.Content)
//	if result.IsValid {
//	    fmt.Println(result.Payload["userId"])
//	}
//
// Extraction and verification are total: they return typed invalid
// results instead of failing, so they are safe to run against arbitrary,
// possibly hostile, text without per-call error handling. The engine
// holds no mutable state after construction and is safe for concurrent
// use.
//
// The watermark survives only bit-for-bit preservation of the invisible
// code points; translation, summarization, or normalization that drops
// zero-width characters destroys it. An adversary who holds the secret
// is outside the threat model.
package textseal
