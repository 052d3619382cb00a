// Package encryption reverses the at-rest encryption Chromium applies to
// cookie values on macOS and Linux, and derives the key it uses.
package encryption

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrDecryption is wrapped by every error returned from DecryptValue.
var ErrDecryption = errors.New("decryption failed")

// versionPrefixLen is the length of the "v10"/"v11" tag Chromium writes
// before the ciphertext.
const versionPrefixLen = 3

const v10Prefix = "v10"

// iv is the fixed initialization vector: 16 ASCII spaces.
var iv = bytes.Repeat([]byte{' '}, aes.BlockSize)

// DecryptValue strips the version prefix from ciphertext, decrypts the rest
// with AES-128-CBC and removes the trailing pad manually. The plaintext must
// be valid UTF-8; anything else almost always means the key is wrong.
func DecryptValue(key []byte, ciphertext []byte) (string, error) {
	if len(ciphertext) < versionPrefixLen {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryption)
	}
	data := ciphertext[versionPrefixLen:]
	if len(data) < aes.BlockSize {
		return "", fmt.Errorf("%w: ciphertext shorter than one block", ErrDecryption)
	}
	if len(data)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext is not a multiple of the block size", ErrDecryption)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	plaintext := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, data)

	padding := int(plaintext[len(plaintext)-1])
	if padding > aes.BlockSize {
		return "", fmt.Errorf("%w: invalid padding length %d", ErrDecryption, padding)
	}
	plaintext = plaintext[:len(plaintext)-padding]

	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: plaintext is not valid UTF-8 (wrong key?)", ErrDecryption)
	}
	return string(plaintext), nil
}

// EncryptValue produces the same framing DecryptValue reads: a "v10" prefix
// followed by AES-128-CBC ciphertext with PKCS#7 padding. It exists to build
// fixtures and is never used to write to a browser store.
func EncryptValue(key []byte, value string) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	padding := aes.BlockSize - len(value)%aes.BlockSize
	plaintext := make([]byte, 0, len(value)+padding)
	plaintext = append(plaintext, value...)
	plaintext = append(plaintext, bytes.Repeat([]byte{byte(padding)}, padding)...)

	out := make([]byte, versionPrefixLen+len(plaintext))
	copy(out, v10Prefix)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[versionPrefixLen:], plaintext)
	return out, nil
}
