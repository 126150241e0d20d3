// Package core handles the structural layer of compact JWTs: splitting a
// token into its three segments and decoding individual segments.
package core

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MaxTokenLength bounds the size of token accepted for parsing.
	MaxTokenLength = 8192

	// tokenPartCount is the number of dot-separated segments in a
	// well-formed token (header.claims.signature).
	tokenPartCount = 3
)

var (
	ErrEmptyToken         = errors.New("empty token")
	ErrTokenTooLarge      = fmt.Errorf("token too large: maximum %d characters allowed", MaxTokenLength)
	ErrInvalidTokenFormat = errors.New("invalid token format")
)

// SplitToken splits a compact token into its header, claims, and
// signature segments. Any segment count other than three, or an empty
// segment, is a malformed token.
func SplitToken(token string) (header, claims, signature string, err error) {
	if token == "" {
		return "", "", "", ErrEmptyToken
	}

	if len(token) > MaxTokenLength {
		return "", "", "", ErrTokenTooLarge
	}

	parts := strings.Split(token, ".")
	if len(parts) != tokenPartCount {
		return "", "", "", fmt.Errorf("%w: expected %d parts, got %d", ErrInvalidTokenFormat, tokenPartCount, len(parts))
	}

	for _, part := range parts {
		if part == "" {
			return "", "", "", fmt.Errorf("%w: empty segment", ErrInvalidTokenFormat)
		}
	}

	return parts[0], parts[1], parts[2], nil
}
