package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. The hash is stored next to an explicit per-user
// salt column, so the parameters must stay fixed for stored hashes to keep
// verifying.
const (
	timeCost    = 1
	memoryCost  = 64 * 1024
	parallelism = 2
	keyLength   = 32
	saltLength  = 16
)

// NewSalt returns a fresh random salt, hex encoded for storage.
func NewSalt() (string, error) {
	raw := make([]byte, saltLength)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("password: generate salt: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

// Hash derives the stored hash for a password with the given salt.
func Hash(password, salt string) string {
	key := argon2.IDKey([]byte(password), []byte(salt), timeCost, memoryCost, parallelism, keyLength)
	return hex.EncodeToString(key)
}

// Verify reports whether password+salt derive the stored hash. The
// comparison is constant time.
func Verify(password, salt, storedHash string) bool {
	computed := Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
