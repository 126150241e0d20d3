// Package jwt implements encoding and decoding of JSON Web Tokens:
// compact, signed, URL-safe tokens conveying a claims mapping.
//
// Tokens are signed with one of HS256, HS384, HS512 (shared secret),
// RS256 (RSA private key or PEM), or ES256 (ECDSA P-256 private key or
// PEM). Decoding verifies the signature against a single key or a
// per-issuer key mapping and enforces the exp claim.
//
// Every operation is stateless and safe for concurrent use; keys are
// supplied per call and never cached.
package jwt

import (
	"fmt"
	"time"

	"github.com/longlene/jwt/internal/core"
	"github.com/longlene/jwt/internal/signing"
)

// Encode serializes and signs the claims with the given algorithm,
// producing a compact three-segment token. The key type depends on the
// algorithm: []byte or string secrets for the HS family, an
// *rsa.PrivateKey / *ecdsa.PrivateKey handle or raw PEM bytes for RS256
// and ES256.
//
// Requesting an algorithm outside the supported set returns
// ErrAlgorithmNotSupported.
func Encode(alg string, claims Claims, key any) (string, error) {
	method, err := signing.Resolve(alg)
	if err != nil {
		return "", fmt.Errorf("%s: %w", alg, ErrAlgorithmNotSupported)
	}

	// A nil map would serialize to JSON null, which is not a valid claims
	// segment; empty claims serialize to an empty object instead.
	if claims == nil {
		claims = Claims{}
	}

	header := map[string]any{
		"typ": headerType,
		"alg": method.Alg(),
	}

	token, err := signing.SignedString(header, claims, method, key)
	if err != nil {
		return "", fmt.Errorf("failed to encode token: %w", err)
	}

	return token, nil
}

// EncodeExpiring encodes the claims with an exp claim computed from the
// given expiry specification. The caller's map is not modified; any
// existing exp value is overwritten in the copy.
func EncodeExpiring(alg string, claims Claims, expiry Expiry, key any) (string, error) {
	expiring := claims.clone()
	expiring["exp"] = expiry.expiresAt(time.Now().Unix())

	return Encode(alg, expiring, key)
}

// Decode verifies the token against a single key and returns its claims.
// See DecodeWithKeys for the error contract.
func Decode(token string, key any) (Claims, error) {
	return DecodeWithKeys(token, key, nil)
}

// DecodeWithKeys verifies the token and returns its claims. The
// verification key is chosen by the token's iss claim: if the claim is
// present and found in issuerKeys, that key is used, otherwise
// defaultKey.
//
// Errors are normalized to exactly one of ErrInvalidToken (structural
// malformation), ErrInvalidSignature (verification failure, including
// unsupported algorithms), or ErrTokenExpired. The checks run in that
// order, so a forged and expired token reports ErrInvalidSignature.
func DecodeWithKeys(token string, defaultKey any, issuerKeys map[string]any) (Claims, error) {
	headerSeg, claimsSeg, signatureSeg, err := core.SplitToken(token)
	if err != nil {
		return nil, fmt.Errorf("split token: %w", ErrInvalidToken)
	}

	// JSON null unmarshals into a map without error, leaving it nil; a
	// segment that is not an object is structurally malformed.
	var header map[string]any
	if err := core.DecodeSegment(headerSeg, &header); err != nil {
		return nil, fmt.Errorf("decode header: %w", ErrInvalidToken)
	}
	if header == nil {
		return nil, fmt.Errorf("header is not an object: %w", ErrInvalidToken)
	}

	var claims Claims
	if err := core.DecodeSegment(claimsSeg, &claims); err != nil {
		return nil, fmt.Errorf("decode claims: %w", ErrInvalidToken)
	}
	if claims == nil {
		return nil, fmt.Errorf("claims is not an object: %w", ErrInvalidToken)
	}

	key := defaultKey
	if iss, ok := claims.Issuer(); ok {
		if issuerKey, ok := issuerKeys[iss]; ok {
			key = issuerKey
		}
	}

	// A missing or unsupported alg fails verification here; it never
	// bypasses the signature check.
	alg, _ := header["alg"].(string)
	if err := verifySignature(alg, headerSeg+"."+claimsSeg, signatureSeg, key); err != nil {
		return nil, fmt.Errorf("verify signature: %w", ErrInvalidSignature)
	}

	if expired(claims, time.Now().Unix()) {
		return nil, ErrTokenExpired
	}

	return claims, nil
}

func verifySignature(alg, signingInput, signature string, key any) error {
	method, err := signing.Resolve(alg)
	if err != nil {
		return err
	}

	return method.Verify(signingInput, signature, key)
}
