package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	// ErrPasswordMismatch is returned by VerifyPassword for a well-formed
	// hash that does not match.
	ErrPasswordMismatch = errors.New("password does not match")
	ErrMalformedHash    = errors.New("malformed password hash")
)

type phcHash struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	salt        []byte
	key         []byte
}

// HashPassword returns a PHC-format Argon2id hash of the peppered password.
func HashPassword(password string) (string, error) {
	p, err := currentPepper()
	if err != nil {
		return "", fmt.Errorf("load pepper: %w", err)
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(password+p), salt, iterations, memory, parallelism, keyLength)

	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory, iterations, parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword checks password against a hash produced by HashPassword.
// The parameters encoded in the hash are used, so older hashes keep
// verifying after the defaults change.
func VerifyPassword(password, encodedHash string) error {
	h, err := parsePHC(encodedHash)
	if err != nil {
		return err
	}

	p, err := currentPepper()
	if err != nil {
		return fmt.Errorf("load pepper: %w", err)
	}

	// #nosec G115 -- key length comes from our own encoder
	computed := argon2.IDKey([]byte(password+p), h.salt, h.iterations, h.memory, h.parallelism, uint32(len(h.key)))
	if subtle.ConstantTimeCompare(computed, h.key) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

// parsePHC splits $argon2id$v=19$m=X,t=Y,p=Z$salt$hash.
func parsePHC(encoded string) (phcHash, error) {
	var h phcHash

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return h, fmt.Errorf("%w: expected 6 sections", ErrMalformedHash)
	}
	if parts[1] != "argon2id" {
		return h, fmt.Errorf("%w: algorithm %q", ErrMalformedHash, parts[1])
	}
	if parts[2] != "v=19" {
		return h, fmt.Errorf("%w: version %q", ErrMalformedHash, parts[2])
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &h.memory, &h.iterations, &h.parallelism); err != nil {
		return h, fmt.Errorf("%w: params: %v", ErrMalformedHash, err)
	}

	var err error
	if h.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return h, fmt.Errorf("%w: salt: %v", ErrMalformedHash, err)
	}
	if h.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return h, fmt.Errorf("%w: key: %v", ErrMalformedHash, err)
	}
	if len(h.key) == 0 {
		return h, fmt.Errorf("%w: empty key", ErrMalformedHash)
	}
	return h, nil
}
