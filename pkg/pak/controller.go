package pak

import (
	"crypto/subtle"
	"fmt"
)

// PrefixedApiKeyController generates and verifies prefixed API keys for
// a fixed prefix, token lengths, random source and digest. Controllers
// are immutable once built (see ControllerBuilder) and safe to share:
// verification is pure, and generation only draws request-scoped
// randomness from the owned source.
type PrefixedApiKeyController struct {
	prefix           string
	shortTokenPrefix string
	shortTokenLength int
	longTokenLength  int
	rng              RandomSource
	digest           DigestAlgorithm
}

// GenerateKey draws fresh short and long tokens and wraps them with the
// controller's prefix. A random-source failure is returned as an error
// satisfying errors.Is(err, ErrRandomSource); no retry is attempted.
func (c *PrefixedApiKeyController) GenerateKey() (PrefixedApiKey, error) {
	shortToken, err := randomToken(c.rng, c.shortTokenLength)
	if err != nil {
		return PrefixedApiKey{}, fmt.Errorf("generate short token: %w", err)
	}

	// An operator-chosen short token prefix is spliced onto the front
	// and the result truncated back to the configured length.
	if c.shortTokenPrefix != "" {
		shortToken = (c.shortTokenPrefix + shortToken)[:c.shortTokenLength]
	}

	longToken, err := randomToken(c.rng, c.longTokenLength)
	if err != nil {
		return PrefixedApiKey{}, fmt.Errorf("generate long token: %w", err)
	}

	return New(c.prefix, shortToken, longToken), nil
}

// MustGenerateKey is GenerateKey for random sources that cannot fail,
// such as the OS source. It panics if the source does fail.
func (c *PrefixedApiKeyController) MustGenerateKey() PrefixedApiKey {
	key, err := c.GenerateKey()
	if err != nil {
		panic(err)
	}
	return key
}

// GenerateKeyAndHash generates a key and immediately hashes its long
// token, so callers never hold a fresh secret without also holding the
// value they are supposed to persist.
func (c *PrefixedApiKeyController) GenerateKeyAndHash() (PrefixedApiKey, string, error) {
	key, err := c.GenerateKey()
	if err != nil {
		return PrefixedApiKey{}, "", err
	}
	return key, c.LongTokenHash(key), nil
}

// MustGenerateKeyAndHash is GenerateKeyAndHash for random sources that
// cannot fail. It panics if the source does fail.
func (c *PrefixedApiKeyController) MustGenerateKeyAndHash() (PrefixedApiKey, string) {
	key, hash, err := c.GenerateKeyAndHash()
	if err != nil {
		panic(err)
	}
	return key, hash
}

// LongTokenHash returns the hex-encoded digest of the key's long token
// using the controller's digest algorithm.
func (c *PrefixedApiKeyController) LongTokenHash(key PrefixedApiKey) string {
	return key.LongTokenHash(c.digest)
}

// CheckHash reports whether the key's long token hashes to
// expectedHash. The comparison is constant time. Prefix and short token
// are not inspected; looking up the candidate hash by short token is
// the caller's job, before calling this.
func (c *PrefixedApiKeyController) CheckHash(key PrefixedApiKey, expectedHash string) bool {
	computed := c.LongTokenHash(key)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(expectedHash)) == 1
}
