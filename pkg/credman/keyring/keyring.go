// Package keyring retrieves the passphrase a Chromium-family browser uses to
// protect its cookie store from the operating system's secret storage.
package keyring

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// Provider supplies the browser's safe storage passphrase.
type Provider interface {
	Passphrase(ctx context.Context) (string, error)
}

// Keyring reads the passphrase from the macOS keychain. Linux stores are
// looked up with SecretTool instead.
type Keyring struct {
	Service string
	Account string
}

var keyringGet = keyring.Get

// NewKeyring returns a provider for the given keychain item. Chrome stores its
// passphrase under service "Chrome Safe Storage" and account "Chrome".
func NewKeyring(service, account string) *Keyring {
	return &Keyring{
		Service: service,
		Account: account,
	}
}

func (k *Keyring) Passphrase(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	secret, err := keyringGet(k.Service, k.Account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("keychain item %q/%q not found: %w", k.Service, k.Account, err)
		}
		return "", fmt.Errorf("keychain lookup %q: %w", k.Service, err)
	}
	return secret, nil
}

var _ Provider = (*Keyring)(nil)
