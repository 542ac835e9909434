package pak

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Separator joins the prefix, short token and long token in the
// serialized key form. None of the three components may contain it.
const Separator = "_"

var (
	// ErrWrongComponentCount reports a key string that does not split
	// into exactly three separator-delimited components.
	ErrWrongComponentCount = errors.New("key must have exactly three components")

	// ErrEmptyComponent reports a key string with an empty prefix,
	// short token or long token.
	ErrEmptyComponent = errors.New("key component is empty")
)

// PrefixedApiKey is the structured form of an API key:
// "{prefix}_{short_token}_{long_token}". The prefix names the issuing
// service and the short token identifies the key record; neither is
// secret. The long token is the secret — only its hash should ever be
// stored.
type PrefixedApiKey struct {
	prefix     string
	shortToken string
	longToken  string
}

// New wraps the three components without validating them. Keys built
// from untrusted input should go through FromString instead.
func New(prefix, shortToken, longToken string) PrefixedApiKey {
	return PrefixedApiKey{
		prefix:     prefix,
		shortToken: shortToken,
		longToken:  longToken,
	}
}

// FromString parses the serialized form of a key. It checks structure
// only: exactly three non-empty separator-delimited components. Token
// length and alphabet conformance are properties of the controller that
// issued the key, not of the format.
func FromString(s string) (PrefixedApiKey, error) {
	parts := strings.Split(s, Separator)
	if len(parts) != 3 {
		return PrefixedApiKey{}, fmt.Errorf("%w: got %d", ErrWrongComponentCount, len(parts))
	}
	for _, part := range parts {
		if part == "" {
			return PrefixedApiKey{}, ErrEmptyComponent
		}
	}
	return New(parts[0], parts[1], parts[2]), nil
}

// Prefix returns the issuing-service prefix.
func (k PrefixedApiKey) Prefix() string {
	return k.prefix
}

// ShortToken returns the non-secret lookup token.
func (k PrefixedApiKey) ShortToken() string {
	return k.shortToken
}

// LongToken returns the secret token. Handle with care.
func (k PrefixedApiKey) LongToken() string {
	return k.longToken
}

// String returns the canonical serialized form, long token included.
// This is the form handed to the key's owner; use Masked or structured
// logging everywhere else.
func (k PrefixedApiKey) String() string {
	return k.prefix + Separator + k.shortToken + Separator + k.longToken
}

// Masked returns a display form with the long token replaced by stars,
// safe for terminals and UIs.
func (k PrefixedApiKey) Masked() string {
	return k.prefix + Separator + k.shortToken + Separator + strings.Repeat("*", len(k.longToken))
}

// LongTokenHash returns the hex-encoded digest of the long token using
// the given algorithm. A fresh hash instance is used per call, so
// stateful digest implementations are safe here.
func (k PrefixedApiKey) LongTokenHash(algorithm DigestAlgorithm) string {
	h := algorithm.NewHash()
	h.Write([]byte(k.longToken))
	return hex.EncodeToString(h.Sum(nil))
}

// LogValue keeps the long token out of structured logs.
func (k PrefixedApiKey) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("prefix", k.prefix),
		slog.String("short_token", k.shortToken),
		slog.String("long_token", "***"),
	)
}
