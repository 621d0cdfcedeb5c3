package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService seals secrets that are kept in the local settings store,
// such as the budgeting API token. It knows nothing about storage or the
// network.
//
// Flow:
//
//	salt   = GenerateSalt()            (once per install, stored openly)
//	key    = DeriveKey(secret, salt)   (in memory only)
//	sealed = Seal(token, key)          (stored)
//	token  = Open(sealed, key)
type KeyChainService interface {
	// GenerateSalt returns 16 random bytes.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a 32-byte key from passphrase and salt with Argon2id.
	DeriveKey(passphrase string, salt []byte) []byte

	// Seal encrypts plain with key using AES-256-GCM and returns
	// base64(nonce || ciphertext).
	Seal(plain string, key []byte) (string, error)

	// Open reverses Seal. A wrong key or a tampered blob returns an error.
	Open(sealed string, key []byte) (string, error)
}
