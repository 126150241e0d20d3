package core

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

const (
	maxSegmentLength = 4096
	maxDecodedLength = 2048
)

// DecodeSegment decodes a base64url encoded JWT segment into dest. The
// segment is validated before decoding so oversized or malformed input is
// rejected without allocating for it.
func DecodeSegment(segment string, dest any) error {
	if len(segment) == 0 {
		return fmt.Errorf("empty segment")
	}

	if len(segment) > maxSegmentLength {
		return fmt.Errorf("segment too large: maximum %d characters allowed", maxSegmentLength)
	}

	if !isValidBase64URL(segment) {
		return fmt.Errorf("invalid base64url characters in segment")
	}

	bufLen := base64.RawURLEncoding.DecodedLen(len(segment))
	if bufLen > maxDecodedLength {
		return fmt.Errorf("decoded segment too large: maximum %d bytes allowed", maxDecodedLength)
	}

	buf := make([]byte, bufLen)

	n, err := base64.RawURLEncoding.Decode(buf, []byte(segment))
	if err != nil {
		return fmt.Errorf("failed to decode base64url: %w", err)
	}

	if err := json.Unmarshal(buf[:n], dest); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}

// isValidBase64URL checks if the string contains only unpadded base64url
// alphabet characters.
func isValidBase64URL(s string) bool {
	for _, char := range s {
		if !((char >= 'A' && char <= 'Z') ||
			(char >= 'a' && char <= 'z') ||
			(char >= '0' && char <= '9') ||
			char == '-' || char == '_') {
			return false
		}
	}
	return true
}
