package commands

import (
	"fmt"

	"github.com/strrl/prefixed-api-key/pkg/pak"
)

// resolveDigest maps a flag/config name onto a digest algorithm.
func resolveDigest(name string) (pak.DigestAlgorithm, error) {
	switch name {
	case "sha224":
		return pak.DigestSHA224, nil
	case "sha256":
		return pak.DigestSHA256, nil
	case "sha384":
		return pak.DigestSHA384, nil
	case "sha512":
		return pak.DigestSHA512, nil
	case "sha512-224":
		return pak.DigestSHA512_224, nil
	case "sha512-256":
		return pak.DigestSHA512_256, nil
	default:
		return nil, fmt.Errorf("unsupported digest %q", name)
	}
}

// resolveRandomSource maps a flag/config name onto a random source.
func resolveRandomSource(name string) (pak.RandomSource, error) {
	switch name {
	case "os":
		return pak.RandOS(), nil
	default:
		return nil, fmt.Errorf("unsupported random source %q", name)
	}
}
