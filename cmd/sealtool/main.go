// Command sealtool signs, verifies, and inspects watermarked text from
// the command line. Content is read from stdin; the shared secret comes
// from the TEXTSEAL_SECRET environment variable (a .env file in the
// working directory is honored).
//
// Usage:
//
//	sealtool sign [payload-json]      watermark + sign stdin, print JSON result
//	sealtool extract                  recover the watermark payload from stdin
//	sealtool verify <signature-hex>   verify a detached signature over stdin
//	sealtool strip                    print stdin with the watermark removed
//	sealtool scan                     run the threat classifiers over stdin
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	textseal "github.com/textseal/textseal-go"
	"github.com/textseal/textseal-go/threatanalysis"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: sealtool <sign|extract|verify|strip|scan> [args]")
	}

	// Best effort; the secret may already be in the environment.
	_ = godotenv.Load()

	switch os.Args[1] {
	case "sign":
		sign()
	case "extract":
		extract()
	case "verify":
		if len(os.Args) < 3 {
			fatal("usage: sealtool verify <signature-hex>")
		}
		verify(os.Args[2])
	case "strip":
		strip()
	case "scan":
		scan()
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func newEngine() *textseal.Engine {
	secret := os.Getenv("TEXTSEAL_SECRET")
	if secret == "" {
		fatal("TEXTSEAL_SECRET is required")
	}

	mode := textseal.ModeDual
	if m := os.Getenv("TEXTSEAL_MODE"); m != "" {
		mode = textseal.Mode(m)
	}

	engine, err := textseal.New(secret, textseal.WithMode(mode))
	if err != nil {
		fatal("create engine: %v", err)
	}
	return engine
}

func readContent() string {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}
	return string(data)
}

func sign() {
	payload := map[string]any{}
	if len(os.Args) > 2 {
		if err := json.Unmarshal([]byte(os.Args[2]), &payload); err != nil {
			fatal("parse payload: %v", err)
		}
	}

	signed, err := newEngine().Sign(readContent(), payload)
	if err != nil {
		fatal("sign: %v", err)
	}

	out := map[string]any{"content": signed.Content}
	if signed.Signature != "" {
		out["signature"] = signed.Signature
	}
	emit(out)
}

func extract() {
	result := newEngine().Extract(readContent())

	out := map[string]any{"isValid": result.IsValid}
	if result.IsValid {
		out["payload"] = result.Payload
		out["timestamp"] = result.Timestamp
	} else {
		out["error"] = result.Err.Error()
	}
	emit(out)
}

func verify(signature string) {
	ok := newEngine().VerifyHMAC(readContent(), signature)
	emit(map[string]any{"valid": ok})
	if !ok {
		os.Exit(1)
	}
}

func strip() {
	if _, err := io.WriteString(os.Stdout, newEngine().Strip(readContent())); err != nil {
		fatal("write: %v", err)
	}
}

func scan() {
	report := threatanalysis.NewAnalyzer().Analyze(readContent())
	emit(report)
}

func emit(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fatal("encode output: %v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
