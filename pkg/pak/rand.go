package pak

import (
	"crypto/rand"
	"errors"
)

// ErrRandomSource reports that the configured random source failed to
// supply entropy.
var ErrRandomSource = errors.New("random source failed")

// RandomSource supplies cryptographically secure random bytes.
// Implementations must be duplicable via Clone so a controller can hold
// an owned copy, and clones must draw independently.
type RandomSource interface {
	// Fill overwrites p entirely with random bytes, or reports why it
	// could not.
	Fill(p []byte) error

	// Clone returns an independent copy of the source.
	Clone() RandomSource
}

// osRandom reads from the operating system entropy pool. It is
// stateless, so clones are free and concurrent draws are safe.
type osRandom struct{}

// RandOS returns a RandomSource backed by crypto/rand.
func RandOS() RandomSource {
	return osRandom{}
}

func (osRandom) Fill(p []byte) error {
	_, err := rand.Read(p)
	return err
}

func (r osRandom) Clone() RandomSource {
	return r
}
