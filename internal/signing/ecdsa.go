package signing

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"

	"github.com/longlene/jwt/internal/keys"
)

type ecdsaSigningMethod struct {
	Name      string
	HashFunc  crypto.Hash
	CurveBits int
	KeySize   int
}

// Sign produces a JOSE-style ECDSA signature: r and s zero-padded to the
// curve byte size and concatenated, then base64url-encoded.
func (e *ecdsaSigningMethod) Sign(signingInput string, key any) (string, error) {
	privateKey, err := resolveECDSAPrivateKey(key)
	if err != nil {
		return "", err
	}

	if privateKey.Curve.Params().BitSize != e.CurveBits {
		return "", fmt.Errorf("ECDSA key curve size %d does not match %s", privateKey.Curve.Params().BitSize, e.Name)
	}

	if !e.HashFunc.Available() {
		return "", fmt.Errorf("hash function %v not available", e.HashFunc)
	}

	hasher := e.HashFunc.New()
	hasher.Write([]byte(signingInput))

	r, s, err := ecdsa.Sign(rand.Reader, privateKey, hasher.Sum(nil))
	if err != nil {
		return "", fmt.Errorf("ECDSA signing failed: %w", err)
	}

	sig := make([]byte, 2*e.KeySize)
	r.FillBytes(sig[:e.KeySize])
	s.FillBytes(sig[e.KeySize:])

	return base64.RawURLEncoding.EncodeToString(sig), nil
}

func (e *ecdsaSigningMethod) Verify(signingInput, signature string, key any) error {
	publicKey, err := resolveECDSAPublicKey(key)
	if err != nil {
		return err
	}

	sigBytes, err := base64.RawURLEncoding.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("failed to decode signature: %w", err)
	}

	if len(sigBytes) != 2*e.KeySize {
		return fmt.Errorf("invalid ECDSA signature length: got %d, want %d", len(sigBytes), 2*e.KeySize)
	}

	if !e.HashFunc.Available() {
		return fmt.Errorf("hash function %v not available", e.HashFunc)
	}

	hasher := e.HashFunc.New()
	hasher.Write([]byte(signingInput))

	r := new(big.Int).SetBytes(sigBytes[:e.KeySize])
	s := new(big.Int).SetBytes(sigBytes[e.KeySize:])

	if !ecdsa.Verify(publicKey, hasher.Sum(nil), r, s) {
		return errors.New("ECDSA signature verification failed")
	}

	return nil
}

func (e *ecdsaSigningMethod) Alg() string {
	return e.Name
}

func (e *ecdsaSigningMethod) Hash() crypto.Hash {
	return e.HashFunc
}

func resolveECDSAPrivateKey(key any) (*ecdsa.PrivateKey, error) {
	switch k := key.(type) {
	case *ecdsa.PrivateKey:
		return k, nil
	case []byte:
		return keys.ParseECDSAPrivateKey(k)
	case string:
		return keys.ParseECDSAPrivateKey([]byte(k))
	default:
		return nil, fmt.Errorf("ECDSA signing key must be *ecdsa.PrivateKey or PEM bytes, got %T", key)
	}
}

func resolveECDSAPublicKey(key any) (*ecdsa.PublicKey, error) {
	switch k := key.(type) {
	case *ecdsa.PublicKey:
		return k, nil
	case *ecdsa.PrivateKey:
		return &k.PublicKey, nil
	case []byte:
		return ecdsaPublicKeyFromPEM(k)
	case string:
		return ecdsaPublicKeyFromPEM([]byte(k))
	default:
		return nil, fmt.Errorf("ECDSA verification key must be *ecdsa.PublicKey, *ecdsa.PrivateKey or PEM bytes, got %T", key)
	}
}

func ecdsaPublicKeyFromPEM(pemBytes []byte) (*ecdsa.PublicKey, error) {
	if publicKey, err := keys.ParseECDSAPublicKey(pemBytes); err == nil {
		return publicKey, nil
	}

	privateKey, err := keys.ParseECDSAPrivateKey(pemBytes)
	if err != nil {
		return nil, err
	}

	return &privateKey.PublicKey, nil
}

var ecdsaES256 = &ecdsaSigningMethod{"ES256", crypto.SHA256, 256, 32}
