package security

import (
	"crypto/subtle"
	"runtime"
)

// SecureCompare performs a constant-time comparison of two byte slices.
// Slices of different lengths still burn time proportional to the longer
// one before returning false.
func SecureCompare(a, b []byte) bool {
	if len(a) == len(b) {
		return subtle.ConstantTimeCompare(a, b) == 1
	}

	longer := a
	if len(b) > len(longer) {
		longer = b
	}

	var result byte
	for i := range longer {
		result |= longer[i]
	}
	runtime.KeepAlive(result)

	return false
}

// SecureCompareString performs a constant-time comparison of two strings.
func SecureCompareString(a, b string) bool {
	return SecureCompare([]byte(a), []byte(b))
}

// ZeroBytes overwrites a byte slice so derived key material does not
// linger in memory after use.
func ZeroBytes(data []byte) {
	if len(data) == 0 {
		return
	}

	for i := range data {
		data[i] = 0
	}

	runtime.KeepAlive(data)
}
