package jwt

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// defaultTokenTTL is the token lifetime an Issuer uses when none is
// configured.
const defaultTokenTTL = 15 * time.Minute

// Issuer is a configured token issuer. It stamps the registered iss, iat,
// jti, and exp claims onto outgoing claims before signing, so callers
// only supply their application claims. The core Encode/Decode operations
// stay untouched by this sugar; Issue delegates to Encode.
type Issuer struct {
	// Name is the value of the iss claim on issued tokens.
	Name string

	// Algorithm selects the signing algorithm. Defaults to HS256.
	Algorithm string

	// Key is the signing key, with the same types Encode accepts.
	Key any

	// TTL is the token lifetime used to derive the exp claim. Defaults
	// to 15 minutes.
	TTL time.Duration
}

// Validate checks the issuer configuration.
func (i *Issuer) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("%w: issuer name is required", ErrInvalidConfig)
	}

	if i.Key == nil {
		return fmt.Errorf("%w: signing key is required", ErrInvalidConfig)
	}

	if i.TTL < 0 {
		return fmt.Errorf("%w: TTL must not be negative", ErrInvalidConfig)
	}

	switch i.Algorithm {
	case "", AlgHS256, AlgHS384, AlgHS512, AlgRS256, AlgES256:
		return nil
	default:
		return fmt.Errorf("%s: %w", i.Algorithm, ErrAlgorithmNotSupported)
	}
}

// Issue signs the claims with the issuer's registered claims stamped in.
// Caller-supplied iat, jti, and exp values are kept; iss is always set to
// the issuer's name. The caller's map is not modified.
func (i *Issuer) Issue(claims Claims) (string, error) {
	if err := i.Validate(); err != nil {
		return "", err
	}

	alg := i.Algorithm
	if alg == "" {
		alg = AlgHS256
	}

	ttl := i.TTL
	if ttl == 0 {
		ttl = defaultTokenTTL
	}

	now := time.Now()

	stamped := claims.clone()
	stamped["iss"] = i.Name
	if _, ok := stamped["iat"]; !ok {
		stamped["iat"] = now.Unix()
	}
	if _, ok := stamped["jti"]; !ok {
		stamped["jti"] = uuid.NewString()
	}
	if _, ok := stamped["exp"]; !ok {
		stamped["exp"] = now.Add(ttl).Unix()
	}

	return Encode(alg, stamped, i.Key)
}
