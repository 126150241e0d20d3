package signing

import (
	"crypto"
	"crypto/hmac"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/longlene/jwt/internal/security"
)

type hmacSigningMethod struct {
	Name     string
	HashFunc crypto.Hash
}

func (h *hmacSigningMethod) Sign(signingInput string, key any) (string, error) {
	keyBytes, err := hmacKeyBytes(key)
	if err != nil {
		return "", err
	}

	if !h.HashFunc.Available() {
		return "", fmt.Errorf("hash function %v not available", h.HashFunc)
	}

	hasher := hmac.New(h.HashFunc.New, keyBytes)
	hasher.Write([]byte(signingInput))
	mac := hasher.Sum(nil)
	defer security.ZeroBytes(mac)

	return base64.RawURLEncoding.EncodeToString(mac), nil
}

// Verify recomputes the signature and compares it to the received one in
// its encoded form. Both sides pass through the identical encoding step,
// so encoded equality holds exactly when the raw MACs are equal.
func (h *hmacSigningMethod) Verify(signingInput, signature string, key any) error {
	expected, err := h.Sign(signingInput, key)
	if err != nil {
		return err
	}

	if !security.SecureCompareString(expected, signature) {
		return errors.New("signature verification failed")
	}

	return nil
}

func (h *hmacSigningMethod) Alg() string {
	return h.Name
}

func (h *hmacSigningMethod) Hash() crypto.Hash {
	return h.HashFunc
}

func hmacKeyBytes(key any) ([]byte, error) {
	switch k := key.(type) {
	case []byte:
		return k, nil
	case string:
		return []byte(k), nil
	default:
		return nil, fmt.Errorf("HMAC key must be []byte or string, got %T", key)
	}
}

var (
	hmacHS256 = &hmacSigningMethod{"HS256", crypto.SHA256}
	hmacHS384 = &hmacSigningMethod{"HS384", crypto.SHA384}
	hmacHS512 = &hmacSigningMethod{"HS512", crypto.SHA512}
)
