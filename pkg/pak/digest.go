package pak

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// DigestAlgorithm produces hash instances for long-token digests. It is
// a factory rather than a shared instance so that stateful hash
// implementations never carry data across computations.
type DigestAlgorithm interface {
	NewHash() hash.Hash
}

type digestFunc func() hash.Hash

func (f digestFunc) NewHash() hash.Hash {
	return f()
}

// Built-in SHA-2 family digests.
var (
	DigestSHA224     DigestAlgorithm = digestFunc(sha256.New224)
	DigestSHA256     DigestAlgorithm = digestFunc(sha256.New)
	DigestSHA384     DigestAlgorithm = digestFunc(sha512.New384)
	DigestSHA512     DigestAlgorithm = digestFunc(sha512.New)
	DigestSHA512_224 DigestAlgorithm = digestFunc(sha512.New512_224)
	DigestSHA512_256 DigestAlgorithm = digestFunc(sha512.New512_256)
)
