package encryption

import (
	"crypto/sha1"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Salt is the constant PBKDF2 salt Chromium uses for its safe storage key.
	Salt = "saltysalt"
	// KeyLength is the size of the derived AES-128 key.
	KeyLength = 16

	// DarwinIterations is the PBKDF2 iteration count used on macOS.
	DarwinIterations = 1003
	// LinuxIterations is the PBKDF2 iteration count used on Linux.
	LinuxIterations = 1
)

// ErrInvalidIterations is returned by DeriveKey for a non-positive count.
var ErrInvalidIterations = errors.New("iteration count must be at least 1")

// DeriveKey turns the safe storage passphrase into the 16-byte AES key with
// PBKDF2-HMAC-SHA1 over the constant salt.
func DeriveKey(passphrase string, iterations int) ([]byte, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIterations, iterations)
	}
	return pbkdf2.Key([]byte(passphrase), []byte(Salt), iterations, KeyLength, sha1.New), nil
}
