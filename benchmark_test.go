package jwt

import (
	"testing"
)

func BenchmarkEncodeHS256(b *testing.B) {
	claims := testClaims()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(AlgHS256, claims, testSecretKey); err != nil {
			b.Fatalf("Encode failed: %v", err)
		}
	}
}

func BenchmarkDecodeHS256(b *testing.B) {
	token, err := Encode(AlgHS256, testClaims(), testSecretKey)
	if err != nil {
		b.Fatalf("Encode failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(token, testSecretKey); err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
	}
}

func BenchmarkDecodeWithIssuerKeys(b *testing.B) {
	claims := testClaims()
	claims["iss"] = "iss1"

	token, err := Encode(AlgHS256, claims, testSecretKey)
	if err != nil {
		b.Fatalf("Encode failed: %v", err)
	}
	mapping := map[string]any{"iss1": testSecretKey}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DecodeWithKeys(token, "other-key", mapping); err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
	}
}
