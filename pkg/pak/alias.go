package pak

// Pre-assembled controllers for the common case: OS randomness, default
// token lengths and one of the SHA-2 digests. Use the builder directly
// when you need other lengths or your own capabilities.

func newOSController(prefix string, digest DigestAlgorithm) (*PrefixedApiKeyController, error) {
	return NewControllerBuilder().
		Prefix(prefix).
		RandomSource(RandOS()).
		Digest(digest).
		DefaultLengths().
		Finalize()
}

// NewOSSHA224Controller builds an OS-rand, SHA-224 controller.
func NewOSSHA224Controller(prefix string) (*PrefixedApiKeyController, error) {
	return newOSController(prefix, DigestSHA224)
}

// NewOSSHA256Controller builds an OS-rand, SHA-256 controller. This is
// the reference configuration.
func NewOSSHA256Controller(prefix string) (*PrefixedApiKeyController, error) {
	return newOSController(prefix, DigestSHA256)
}

// NewOSSHA384Controller builds an OS-rand, SHA-384 controller.
func NewOSSHA384Controller(prefix string) (*PrefixedApiKeyController, error) {
	return newOSController(prefix, DigestSHA384)
}

// NewOSSHA512Controller builds an OS-rand, SHA-512 controller.
func NewOSSHA512Controller(prefix string) (*PrefixedApiKeyController, error) {
	return newOSController(prefix, DigestSHA512)
}

// NewOSSHA512_224Controller builds an OS-rand, SHA-512/224 controller.
func NewOSSHA512_224Controller(prefix string) (*PrefixedApiKeyController, error) {
	return newOSController(prefix, DigestSHA512_224)
}

// NewOSSHA512_256Controller builds an OS-rand, SHA-512/256 controller.
func NewOSSHA512_256Controller(prefix string) (*PrefixedApiKeyController, error) {
	return newOSController(prefix, DigestSHA512_256)
}
