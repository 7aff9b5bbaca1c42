package crypto

const (
	// KeySize is the derived key length in bytes (AES-256).
	KeySize = 32

	// NonceSize is the GCM nonce length in bytes (96 bits).
	NonceSize = 12

	// TagSize is the GCM authentication tag length in bytes.
	TagSize = 16

	// MinSaltSize is the shortest salt accepted by key derivation.
	MinSaltSize = 16

	// DefaultIterations is the PBKDF2 work factor used when an account has
	// no pinned iteration count.
	DefaultIterations = 200_000

	// MinIterations is the lowest work factor the default deriver accepts.
	MinIterations = 100_000
)
