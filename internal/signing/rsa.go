package signing

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"fmt"

	"github.com/longlene/jwt/internal/keys"
)

type rsaSigningMethod struct {
	Name     string
	HashFunc crypto.Hash
}

func (r *rsaSigningMethod) Sign(signingInput string, key any) (string, error) {
	privateKey, err := resolveRSAPrivateKey(key)
	if err != nil {
		return "", err
	}

	if !r.HashFunc.Available() {
		return "", fmt.Errorf("hash function %v not available", r.HashFunc)
	}

	hasher := r.HashFunc.New()
	hasher.Write([]byte(signingInput))

	sig, err := rsa.SignPKCS1v15(rand.Reader, privateKey, r.HashFunc, hasher.Sum(nil))
	if err != nil {
		return "", fmt.Errorf("RSA signing failed: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(sig), nil
}

func (r *rsaSigningMethod) Verify(signingInput, signature string, key any) error {
	publicKey, err := resolveRSAPublicKey(key)
	if err != nil {
		return err
	}

	sigBytes, err := base64.RawURLEncoding.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("failed to decode signature: %w", err)
	}

	if !r.HashFunc.Available() {
		return fmt.Errorf("hash function %v not available", r.HashFunc)
	}

	hasher := r.HashFunc.New()
	hasher.Write([]byte(signingInput))

	if err := rsa.VerifyPKCS1v15(publicKey, r.HashFunc, hasher.Sum(nil), sigBytes); err != nil {
		return fmt.Errorf("RSA signature verification failed: %w", err)
	}

	return nil
}

func (r *rsaSigningMethod) Alg() string {
	return r.Name
}

func (r *rsaSigningMethod) Hash() crypto.Hash {
	return r.HashFunc
}

// resolveRSAPrivateKey accepts a pre-parsed private key handle or raw PEM
// bytes and resolves them to a usable key.
func resolveRSAPrivateKey(key any) (*rsa.PrivateKey, error) {
	switch k := key.(type) {
	case *rsa.PrivateKey:
		return k, nil
	case []byte:
		return keys.ParseRSAPrivateKey(k)
	case string:
		return keys.ParseRSAPrivateKey([]byte(k))
	default:
		return nil, fmt.Errorf("RSA signing key must be *rsa.PrivateKey or PEM bytes, got %T", key)
	}
}

// resolveRSAPublicKey accepts a public or private key handle, or raw PEM
// bytes in either public or private form.
func resolveRSAPublicKey(key any) (*rsa.PublicKey, error) {
	switch k := key.(type) {
	case *rsa.PublicKey:
		return k, nil
	case *rsa.PrivateKey:
		return &k.PublicKey, nil
	case []byte:
		return rsaPublicKeyFromPEM(k)
	case string:
		return rsaPublicKeyFromPEM([]byte(k))
	default:
		return nil, fmt.Errorf("RSA verification key must be *rsa.PublicKey, *rsa.PrivateKey or PEM bytes, got %T", key)
	}
}

func rsaPublicKeyFromPEM(pemBytes []byte) (*rsa.PublicKey, error) {
	if publicKey, err := keys.ParseRSAPublicKey(pemBytes); err == nil {
		return publicKey, nil
	}

	privateKey, err := keys.ParseRSAPrivateKey(pemBytes)
	if err != nil {
		return nil, err
	}

	return &privateKey.PublicKey, nil
}

var rsaRS256 = &rsaSigningMethod{"RS256", crypto.SHA256}
