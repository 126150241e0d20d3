package jwt

import (
	"encoding/json"
	"time"
)

const (
	secondsPerHour = 3600
	secondsPerDay  = 86400
)

// Expiry specifies when a token should expire, relative to the moment it
// is encoded. Use ExpireIn, ExpireHourly, or ExpireDaily to construct one.
type Expiry interface {
	// expiresAt computes the absolute expiry in epoch seconds.
	expiresAt(nowUnix int64) int64
}

type relativeExpiry int64

func (e relativeExpiry) expiresAt(nowUnix int64) int64 {
	return nowUnix + int64(e)
}

type windowExpiry struct {
	window int64
	offset int64
}

func (e windowExpiry) expiresAt(nowUnix int64) int64 {
	return nowUnix - nowUnix%e.window + e.offset
}

// ExpireIn expires the token d after the moment of encoding. Sub-second
// precision is truncated.
func ExpireIn(d time.Duration) Expiry {
	return relativeExpiry(d / time.Second)
}

// ExpireHourly expires the token at the start of the current hour plus
// offset. Two tokens encoded within the same hour carry the same expiry
// regardless of when within the hour they were encoded.
func ExpireHourly(offset time.Duration) Expiry {
	return windowExpiry{window: secondsPerHour, offset: int64(offset / time.Second)}
}

// ExpireDaily expires the token at the start of the current day (UTC)
// plus offset.
func ExpireDaily(offset time.Duration) Expiry {
	return windowExpiry{window: secondsPerDay, offset: int64(offset / time.Second)}
}

// expired reports whether the claims carry an exp at or before now.
// Claims without an exp never expire; a token expiring exactly now counts
// as expired.
func expired(claims Claims, nowUnix int64) bool {
	exp, ok := claimUnix(claims, "exp")
	if !ok {
		return false
	}
	return exp-nowUnix <= 0
}

// claimUnix retrieves a numeric epoch-seconds claim. It handles float64
// (the default from encoding/json), json.Number, and the integer types a
// caller may have placed in the map directly. Absent or non-numeric
// values report false.
func claimUnix(claims Claims, key string) (int64, bool) {
	raw, exists := claims[key]
	if !exists {
		return 0, false
	}

	switch v := raw.(type) {
	case float64:
		return int64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return int64(f), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}
