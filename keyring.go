package jwt

import (
	"sync"
)

// Keyring is a concurrency-safe registry of verification keys indexed by
// issuer. It is a convenience over DecodeWithKeys for callers that
// accumulate issuer keys over time; the decode semantics are identical.
type Keyring struct {
	mu         sync.RWMutex
	defaultKey any
	issuerKeys map[string]any
}

// NewKeyring creates a Keyring that falls back to defaultKey for tokens
// whose issuer is unknown or absent.
func NewKeyring(defaultKey any) *Keyring {
	return &Keyring{
		defaultKey: defaultKey,
		issuerKeys: make(map[string]any),
	}
}

// Add registers the verification key for an issuer, replacing any
// previous key. Changes are visible to the next Decode call.
func (k *Keyring) Add(issuer string, key any) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.issuerKeys[issuer] = key
}

// Remove drops the key registered for an issuer. Tokens from that issuer
// fall back to the default key afterwards.
func (k *Keyring) Remove(issuer string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.issuerKeys, issuer)
}

// Lookup returns the key registered for an issuer.
func (k *Keyring) Lookup(issuer string) (any, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	key, ok := k.issuerKeys[issuer]
	return key, ok
}

// Decode verifies the token using the registered issuer keys, falling
// back to the default key. See DecodeWithKeys for the error contract.
func (k *Keyring) Decode(token string) (Claims, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return DecodeWithKeys(token, k.defaultKey, k.issuerKeys)
}
