package crypto

import "github.com/MKhiriev/go-pass-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns a master password into a symmetric key.
type KeyDeriver interface {
	// Derive runs the password-based derivation for the given salt and
	// iteration count and returns a [KeySize]-byte key. It is deterministic
	// and intentionally slow. The caller owns the returned slice and is
	// responsible for wiping it.
	//
	// Returns ErrEmptyPassword, ErrInvalidSalt or ErrInvalidIterations on
	// bad input.
	Derive(password string, salt []byte, iterations int) ([]byte, error)
}

// EnvelopeCipher seals and opens single field values.
type EnvelopeCipher interface {
	// Encrypt seals plaintext under key with a fresh random nonce and
	// returns both halves transport encoded. The caller never supplies the
	// nonce.
	Encrypt(key, plaintext []byte) (models.Envelope, error)

	// Decrypt opens env under key. It returns ErrMalformedInput if either
	// half is not valid transport encoding and ErrAuthenticationFailed if
	// the envelope does not authenticate.
	Decrypt(key []byte, env models.Envelope) ([]byte, error)
}
