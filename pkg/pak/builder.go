package pak

import (
	"errors"
	"strings"
)

// Reference token lengths: 8 short token symbols are enough to look a
// record up by, and 24 long token symbols carry entropy comparable to a
// random UUIDv4.
const (
	DefaultShortTokenLength = 8
	DefaultLongTokenLength  = 24
)

var (
	// ErrMissingPrefix reports that no key prefix was configured.
	ErrMissingPrefix = errors.New("prefix must be set and non-empty")

	// ErrPrefixContainsSeparator reports a prefix that would break the
	// serialized key format.
	ErrPrefixContainsSeparator = errors.New("prefix must not contain the separator")

	// ErrMissingRandomSource reports that no random source was configured.
	ErrMissingRandomSource = errors.New("random source must be set")

	// ErrMissingDigest reports that no digest algorithm was configured.
	ErrMissingDigest = errors.New("digest algorithm must be set")

	// ErrInvalidShortTokenLength reports a missing or non-positive
	// short token length.
	ErrInvalidShortTokenLength = errors.New("short token length must be positive")

	// ErrInvalidLongTokenLength reports a missing or non-positive long
	// token length.
	ErrInvalidLongTokenLength = errors.New("long token length must be positive")
)

// ControllerBuilder accumulates controller configuration through fluent
// setters. Finalize validates the result and reports the first unset or
// invalid field as its own sentinel error, so callers can branch on
// exactly which piece of configuration is missing.
type ControllerBuilder struct {
	prefix           string
	shortTokenPrefix string
	shortTokenLength int
	longTokenLength  int
	rng              RandomSource
	digest           DigestAlgorithm
}

// NewControllerBuilder returns an empty builder. Every required field
// must be set, or defaulted via SeamDefaults/DefaultLengths, before
// Finalize succeeds.
func NewControllerBuilder() *ControllerBuilder {
	return &ControllerBuilder{}
}

// Prefix sets the key prefix. This should name your company or service.
func (b *ControllerBuilder) Prefix(prefix string) *ControllerBuilder {
	b.prefix = prefix
	return b
}

// ShortTokenPrefix sets an optional literal spliced onto the front of
// generated short tokens. Keep it within the token alphabet and well
// below the short token length, or short tokens will collide.
func (b *ControllerBuilder) ShortTokenPrefix(prefix string) *ControllerBuilder {
	b.shortTokenPrefix = prefix
	return b
}

// ShortTokenLength sets the length of the non-secret short token.
func (b *ControllerBuilder) ShortTokenLength(length int) *ControllerBuilder {
	b.shortTokenLength = length
	return b
}

// LongTokenLength sets the length of the secret long token.
func (b *ControllerBuilder) LongTokenLength(length int) *ControllerBuilder {
	b.longTokenLength = length
	return b
}

// RandomSource sets the entropy source used for token generation.
func (b *ControllerBuilder) RandomSource(src RandomSource) *ControllerBuilder {
	b.rng = src
	return b
}

// Digest sets the algorithm used to hash long tokens.
func (b *ControllerBuilder) Digest(algorithm DigestAlgorithm) *ControllerBuilder {
	b.digest = algorithm
	return b
}

// DefaultLengths sets the reference 8/24 token lengths.
func (b *ControllerBuilder) DefaultLengths() *ControllerBuilder {
	return b.ShortTokenLength(DefaultShortTokenLength).LongTokenLength(DefaultLongTokenLength)
}

// SeamDefaults configures the OS random source, SHA-256 and the default
// token lengths, matching the reference implementation this key format
// comes from. Only the prefix remains to be set.
func (b *ControllerBuilder) SeamDefaults() *ControllerBuilder {
	return b.RandomSource(RandOS()).Digest(DigestSHA256).DefaultLengths()
}

// Finalize validates the accumulated configuration and produces an
// immutable controller. The controller clones the random source, so the
// builder can be discarded afterwards; reusing it is not supported.
func (b *ControllerBuilder) Finalize() (*PrefixedApiKeyController, error) {
	if b.prefix == "" {
		return nil, ErrMissingPrefix
	}
	if strings.Contains(b.prefix, Separator) {
		return nil, ErrPrefixContainsSeparator
	}
	if b.rng == nil {
		return nil, ErrMissingRandomSource
	}
	if b.digest == nil {
		return nil, ErrMissingDigest
	}
	if b.shortTokenLength <= 0 {
		return nil, ErrInvalidShortTokenLength
	}
	if b.longTokenLength <= 0 {
		return nil, ErrInvalidLongTokenLength
	}

	return &PrefixedApiKeyController{
		prefix:           b.prefix,
		shortTokenPrefix: b.shortTokenPrefix,
		shortTokenLength: b.shortTokenLength,
		longTokenLength:  b.longTokenLength,
		rng:              b.rng.Clone(),
		digest:           b.digest,
	}, nil
}
