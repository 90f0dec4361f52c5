// Package cryptox derives one-way credential hashes. The encoded output
// is self-describing (PHC string format), so parameters can be changed
// later without invalidating stored hashes.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dpetrovs/userreg/internal/common"
	"github.com/dpetrovs/userreg/internal/secretx"
	"golang.org/x/crypto/argon2"
)

// argon2id parameters, per current OWASP guidance.
const (
	argon2Time    = 1         // iterations
	argon2Memory  = 64 * 1024 // KiB
	argon2Threads = 4
	argon2SaltLen = 16
	argon2KeyLen  = 32
)

// Hasher derives and checks credential hashes.
type Hasher interface {
	// Hash derives a salted one-way hash of the secret. Each call uses
	// a fresh random salt, so equal inputs yield different encodings.
	Hash(secret *secretx.Secret) (string, error)

	// Verify reports whether the secret matches the encoded hash.
	// Registration never calls it; it exists so stored hashes stay
	// usable once a login flow is added.
	Verify(secret *secretx.Secret, encoded string) (bool, error)
}

// Argon2idHasher implements Hasher with argon2id.
type Argon2idHasher struct{}

func NewArgon2idHasher() *Argon2idHasher {
	return &Argon2idHasher{}
}

// Hash produces a PHC-encoded argon2id hash:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<b64 salt>$<b64 hash>
func (h *Argon2idHasher) Hash(secret *secretx.Secret) (string, error) {
	plaintext := secret.Expose()
	if len(plaintext) == 0 {
		return "", fmt.Errorf("%w: empty secret", common.ErrInternal)
	}

	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%w: salt generation: %v", common.ErrInternal, err)
	}

	key := argon2.IDKey(plaintext, salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argon2Memory, argon2Time, argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Verify re-derives the hash with the parameters and salt stored in the
// encoded string and compares in constant time.
func (h *Argon2idHasher) Verify(secret *secretx.Secret, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, fmt.Errorf("%w: malformed credential hash", common.ErrInternal)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("%w: malformed credential hash: %v", common.ErrInternal, err)
	}
	if version != argon2.Version {
		return false, fmt.Errorf("%w: unsupported argon2 version %d", common.ErrInternal, version)
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, fmt.Errorf("%w: malformed credential hash: %v", common.ErrInternal, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: malformed credential hash: %v", common.ErrInternal, err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("%w: malformed credential hash: %v", common.ErrInternal, err)
	}

	got := argon2.IDKey(secret.Expose(), salt, time, memory, threads, uint32(len(want)))

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
