// Package signing implements the signature algorithms supported for
// token signing and verification: HS256, HS384, HS512, RS256, and ES256.
package signing

import (
	"crypto"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	_ "crypto/sha256"
	_ "crypto/sha512"
)

// ErrUnsupportedAlgorithm is returned by Resolve for any algorithm
// identifier outside the supported set.
var ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")

// Method represents a signing method for JWT tokens.
type Method interface {
	// Alg returns the algorithm identifier carried in the token header.
	Alg() string

	// Sign produces the base64url-encoded signature over the signing input.
	Sign(signingInput string, key any) (string, error)

	// Verify checks a signature as received from the token (still
	// base64url-encoded) against the signing input.
	Verify(signingInput, signature string, key any) error

	// Hash returns the hash function backing this method.
	Hash() crypto.Hash
}

// Resolve maps an algorithm identifier to its signing method. The
// supported set is deliberately restricted; every other identifier,
// including other registered JWT algorithms, resolves to
// ErrUnsupportedAlgorithm.
func Resolve(alg string) (Method, error) {
	switch alg {
	case "HS256":
		return hmacHS256, nil
	case "HS384":
		return hmacHS384, nil
	case "HS512":
		return hmacHS512, nil
	case "RS256":
		return rsaRS256, nil
	case "ES256":
		return ecdsaES256, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
	}
}

// SignedString serializes the header and claims, assembles the signing
// input, and appends the signature produced by the method.
func SignedString(header map[string]any, claims any, method Method, key any) (string, error) {
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	signingInput := base64.RawURLEncoding.EncodeToString(headerJSON) +
		"." + base64.RawURLEncoding.EncodeToString(claimsJSON)

	signature, err := method.Sign(signingInput, key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signingInput + "." + signature, nil
}
