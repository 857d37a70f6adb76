package pkg

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

// Hasher turns a secret and its salt into the stored digest. The scheme is
// pluggable; the default must stay SHA256Hasher so existing rows (including
// the seeded smoke-test identity) keep authenticating.
type Hasher func(secret, salt string) string

const saltBytes = 16

// NewSalt returns a fresh random salt, hex encoded.
func NewSalt() (string, error) {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// SHA256Hasher is the legacy scheme: sha256(secret + salt), lowercase hex.
func SHA256Hasher(secret, salt string) string {
	sum := sha256.Sum256([]byte(secret + salt))
	return hex.EncodeToString(sum[:])
}

// PBKDF2Hasher is a slow alternative for deployments that do not need to
// read rows written under the legacy scheme.
func PBKDF2Hasher(secret, salt string) string {
	key := pbkdf2.Key([]byte(secret), []byte(salt), 4096, 32, sha256.New)
	return hex.EncodeToString(key)
}

// HashEqual compares two digests in constant time.
func HashEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
