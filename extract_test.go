package textseal

import (
	"errors"
	"testing"
)

func TestExtract_RoundTrip(t *testing.T) {
	payload := map[string]any{"userId": float64(123), "role": "admin", "nested": map[string]any{"a": float64(1)}}

	for _, mode := range []Mode{ModeSteganography, ModeDual} {
		t.Run(string(mode), func(t *testing.T) {
			engine, err := New(testSecret, WithMode(mode))
			if err != nil {
				t.Fatal(err)
			}

			signed, err := engine.Sign("some visible content", payload)
			if err != nil {
				t.Fatal(err)
			}

			result := engine.Extract(signed.Content)
			if !result.IsValid {
				t.Fatalf("Extract() invalid, err = %v", result.Err)
			}
			if result.Timestamp == 0 {
				t.Error("Timestamp = 0, want sign-time milliseconds")
			}

			for k, want := range payload {
				switch wantV := want.(type) {
				case map[string]any:
					got, ok := result.Payload[k].(map[string]any)
					if !ok || got["a"] != wantV["a"] {
						t.Errorf("payload[%q] = %v, want %v", k, result.Payload[k], want)
					}
				default:
					if result.Payload[k] != want {
						t.Errorf("payload[%q] = %v, want %v", k, result.Payload[k], want)
					}
				}
			}
		})
	}
}

func TestExtract_NoWatermark(t *testing.T) {
	engine, err := New(testSecret)
	if err != nil {
		t.Fatal(err)
	}

	tests := []string{
		"plain text, no watermark",
		"",
		"zero-width noise ​‌ without a marker",
	}
	for _, content := range tests {
		result := engine.Extract(content)
		if result.IsValid {
			t.Errorf("Extract(%q) valid = true, want false", content)
		}
		if !errors.Is(result.Err, ErrNoWatermark) {
			t.Errorf("Extract(%q) err = %v, want ErrNoWatermark", content, result.Err)
		}
	}
}

func TestExtract_CorruptFrame(t *testing.T) {
	engine, err := New(testSecret, WithMode(ModeSteganography))
	if err != nil {
		t.Fatal(err)
	}

	signed, err := engine.Sign("Hello World", map[string]any{"k": "v"})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("truncated bit run", func(t *testing.T) {
		runes := []rune(signed.Content)
		truncated := string(runes[:len(runes)-1])
		result := engine.Extract(truncated)
		if result.IsValid {
			t.Fatal("Extract() valid = true for a truncated frame")
		}
		if !errors.Is(result.Err, ErrCorruptFrame) {
			t.Errorf("err = %v, want ErrCorruptFrame", result.Err)
		}
	})

	t.Run("visible text after frame", func(t *testing.T) {
		result := engine.Extract(signed.Content + "trailing edit")
		if result.IsValid {
			t.Fatal("Extract() valid = true with text appended after the frame")
		}
		if !errors.Is(result.Err, ErrCorruptFrame) {
			t.Errorf("err = %v, want ErrCorruptFrame", result.Err)
		}
	})

	t.Run("bare marker", func(t *testing.T) {
		result := engine.Extract("content‍")
		if result.IsValid {
			t.Fatal("Extract() valid = true for a bare marker")
		}
	})
}

func TestExtract_WrongSecret(t *testing.T) {
	signer, err := New(testSecret, WithMode(ModeSteganography))
	if err != nil {
		t.Fatal(err)
	}
	other, err := New("abcdefghijklmnopqrstuvwxyz012345", WithMode(ModeSteganography))
	if err != nil {
		t.Fatal(err)
	}

	signed, err := signer.Sign("content", map[string]any{"k": "v"})
	if err != nil {
		t.Fatal(err)
	}

	result := other.Extract(signed.Content)
	if result.IsValid {
		t.Fatal("Extract() valid = true under a different secret")
	}
	if !errors.Is(result.Err, ErrAuthentication) {
		t.Errorf("err = %v, want ErrAuthentication", result.Err)
	}
}

func TestExtract_ResignKeepsNewestWatermark(t *testing.T) {
	engine, err := New(testSecret, WithMode(ModeSteganography))
	if err != nil {
		t.Fatal(err)
	}

	first, err := engine.Sign("content", map[string]any{"rev": float64(1)})
	if err != nil {
		t.Fatal(err)
	}
	second, err := engine.Sign(first.Content, map[string]any{"rev": float64(2)})
	if err != nil {
		t.Fatal(err)
	}

	result := engine.Extract(second.Content)
	if !result.IsValid {
		t.Fatalf("Extract() invalid, err = %v", result.Err)
	}
	if result.Payload["rev"] != float64(2) {
		t.Errorf("payload rev = %v, want 2 (most recent watermark)", result.Payload["rev"])
	}
}

func TestStrip_RestoresOriginal(t *testing.T) {
	engine, err := New(testSecret, WithMode(ModeDual))
	if err != nil {
		t.Fatal(err)
	}

	tests := []string{
		"Hello World",
		"",
		"multi\nline\ncontent",
		"unicode ✓ héllo",
	}
	for _, content := range tests {
		signed, err := engine.Sign(content, map[string]any{"k": "v"})
		if err != nil {
			t.Fatal(err)
		}
		if got := engine.Strip(signed.Content); got != content {
			t.Errorf("Strip() = %q, want %q", got, content)
		}
	}
}

func TestStrip_UnwatermarkedUnchanged(t *testing.T) {
	engine, err := New(testSecret)
	if err != nil {
		t.Fatal(err)
	}

	const content = "no watermark here"
	if got := engine.Strip(content); got != content {
		t.Errorf("Strip() = %q, want unchanged", got)
	}
}
