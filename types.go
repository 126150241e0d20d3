package jwt

// Supported signing algorithm identifiers. This is a deliberately
// restricted subset of the registered JWT algorithms; identifiers outside
// this set are rejected on encode and fail verification on decode.
const (
	// AlgHS256 uses HMAC with SHA-256 over a shared secret.
	AlgHS256 = "HS256"
	// AlgHS384 uses HMAC with SHA-384 over a shared secret.
	AlgHS384 = "HS384"
	// AlgHS512 uses HMAC with SHA-512 over a shared secret.
	AlgHS512 = "HS512"
	// AlgRS256 uses RSASSA-PKCS1-v1_5 with SHA-256.
	AlgRS256 = "RS256"
	// AlgES256 uses ECDSA on P-256 with SHA-256.
	AlgES256 = "ES256"
)

// headerType is the fixed "typ" value stamped into every token header.
const headerType = "JWT"

// Claims is the payload of a token: a mapping from claim names to
// JSON-representable values. Callers own the map; Encode never mutates
// it, and EncodeExpiring works on a copy.
type Claims map[string]any

// Pair is a single claim as a key-value pair, for callers that prefer
// association-list literals over map literals.
type Pair struct {
	Key   string
	Value any
}

// FromPairs builds a Claims map from an association list. Later pairs
// overwrite earlier ones with the same key.
func FromPairs(pairs []Pair) Claims {
	claims := make(Claims, len(pairs))
	for _, p := range pairs {
		claims[p.Key] = p.Value
	}
	return claims
}

// Issuer returns the iss claim if present and a string.
func (c Claims) Issuer() (string, bool) {
	iss, ok := c["iss"].(string)
	return iss, ok
}

// clone returns a shallow copy of the claims map.
func (c Claims) clone() Claims {
	copied := make(Claims, len(c)+1)
	for k, v := range c {
		copied[k] = v
	}
	return copied
}
