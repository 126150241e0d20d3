package jwt

import (
	"errors"
)

// Predefined errors for the encode and decode operations. Decode
// normalizes every internal failure into one of ErrInvalidToken,
// ErrInvalidSignature, or ErrTokenExpired; nothing else escapes it.
var (
	// ErrAlgorithmNotSupported indicates the requested signing algorithm
	// is outside the supported set (HS256, HS384, HS512, RS256, ES256).
	ErrAlgorithmNotSupported = errors.New("algorithm not supported")

	// ErrInvalidToken indicates structural malformation: wrong segment
	// count, undecodable base64url, or undecodable JSON.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidSignature indicates the token parsed but its signature
	// does not verify against the resolved key. Tokens carrying an
	// unsupported algorithm also fail with this error; they never bypass
	// verification.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrTokenExpired indicates the signature verified but the exp claim
	// is at or before the current time.
	ErrTokenExpired = errors.New("token expired")

	// ErrInvalidConfig indicates an Issuer is configured incorrectly.
	ErrInvalidConfig = errors.New("invalid configuration")
)
