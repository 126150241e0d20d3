package keys

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
)

func encodePEM(t *testing.T, blockType string, der []byte) []byte {
	t.Helper()
	return pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
}

func TestParseRSAPrivateKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}

	t.Run("PKCS1", func(t *testing.T) {
		pemBytes := encodePEM(t, "RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(key))
		parsed, err := ParseRSAPrivateKey(pemBytes)
		if err != nil {
			t.Fatalf("ParseRSAPrivateKey failed: %v", err)
		}
		if parsed.N.Cmp(key.N) != 0 {
			t.Error("Parsed key does not match original")
		}
	})

	t.Run("PKCS8", func(t *testing.T) {
		der, err := x509.MarshalPKCS8PrivateKey(key)
		if err != nil {
			t.Fatalf("Failed to marshal PKCS8: %v", err)
		}
		if _, err := ParseRSAPrivateKey(encodePEM(t, "PRIVATE KEY", der)); err != nil {
			t.Errorf("ParseRSAPrivateKey failed: %v", err)
		}
	})

	t.Run("Not PEM", func(t *testing.T) {
		if _, err := ParseRSAPrivateKey([]byte("garbage")); err == nil {
			t.Error("Expected error for non-PEM input")
		}
	})

	t.Run("Wrong key type in PKCS8", func(t *testing.T) {
		ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		if err != nil {
			t.Fatalf("Failed to generate key: %v", err)
		}
		der, err := x509.MarshalPKCS8PrivateKey(ecKey)
		if err != nil {
			t.Fatalf("Failed to marshal PKCS8: %v", err)
		}
		if _, err := ParseRSAPrivateKey(encodePEM(t, "PRIVATE KEY", der)); err == nil {
			t.Error("Expected error for ECDSA key parsed as RSA")
		}
	})
}

func TestParseRSAPublicKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}

	t.Run("PKIX", func(t *testing.T) {
		der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
		if err != nil {
			t.Fatalf("Failed to marshal PKIX: %v", err)
		}
		parsed, err := ParseRSAPublicKey(encodePEM(t, "PUBLIC KEY", der))
		if err != nil {
			t.Fatalf("ParseRSAPublicKey failed: %v", err)
		}
		if parsed.N.Cmp(key.N) != 0 {
			t.Error("Parsed key does not match original")
		}
	})

	t.Run("PKCS1", func(t *testing.T) {
		der := x509.MarshalPKCS1PublicKey(&key.PublicKey)
		if _, err := ParseRSAPublicKey(encodePEM(t, "RSA PUBLIC KEY", der)); err != nil {
			t.Errorf("ParseRSAPublicKey failed: %v", err)
		}
	})

	t.Run("Not PEM", func(t *testing.T) {
		if _, err := ParseRSAPublicKey([]byte("garbage")); err == nil {
			t.Error("Expected error for non-PEM input")
		}
	})
}

func TestParseECDSAKeys(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}

	t.Run("SEC1 private", func(t *testing.T) {
		der, err := x509.MarshalECPrivateKey(key)
		if err != nil {
			t.Fatalf("Failed to marshal EC key: %v", err)
		}
		parsed, err := ParseECDSAPrivateKey(encodePEM(t, "EC PRIVATE KEY", der))
		if err != nil {
			t.Fatalf("ParseECDSAPrivateKey failed: %v", err)
		}
		if parsed.X.Cmp(key.X) != 0 {
			t.Error("Parsed key does not match original")
		}
	})

	t.Run("PKCS8 private", func(t *testing.T) {
		der, err := x509.MarshalPKCS8PrivateKey(key)
		if err != nil {
			t.Fatalf("Failed to marshal PKCS8: %v", err)
		}
		if _, err := ParseECDSAPrivateKey(encodePEM(t, "PRIVATE KEY", der)); err != nil {
			t.Errorf("ParseECDSAPrivateKey failed: %v", err)
		}
	})

	t.Run("PKIX public", func(t *testing.T) {
		der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
		if err != nil {
			t.Fatalf("Failed to marshal PKIX: %v", err)
		}
		parsed, err := ParseECDSAPublicKey(encodePEM(t, "PUBLIC KEY", der))
		if err != nil {
			t.Fatalf("ParseECDSAPublicKey failed: %v", err)
		}
		if parsed.X.Cmp(key.X) != 0 {
			t.Error("Parsed key does not match original")
		}
	})

	t.Run("Not PEM", func(t *testing.T) {
		if _, err := ParseECDSAPublicKey([]byte("garbage")); err == nil {
			t.Error("Expected error for non-PEM input")
		}
	})

	t.Run("RSA key parsed as ECDSA", func(t *testing.T) {
		rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			t.Fatalf("Failed to generate key: %v", err)
		}
		der, err := x509.MarshalPKIXPublicKey(&rsaKey.PublicKey)
		if err != nil {
			t.Fatalf("Failed to marshal PKIX: %v", err)
		}
		if _, err := ParseECDSAPublicKey(encodePEM(t, "PUBLIC KEY", der)); err == nil {
			t.Error("Expected error for RSA key parsed as ECDSA")
		}
	})
}
