package keyring

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// SecretTool looks the passphrase up with the libsecret "secret-tool" CLI,
// which is how Chromium stores it under GNOME and KDE. When the lookup
// exits non-zero or prints nothing, the browser is assumed to be running
// with the basic password store and the fallback passphrase is returned.
type SecretTool struct {
	Application string
}

var runSecretTool = func(ctx context.Context, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, "secret-tool", args...).Output()
}

// NewSecretTool returns a provider for the given "application" attribute,
// e.g. "chrome" or "chromium".
func NewSecretTool(application string) *SecretTool {
	return &SecretTool{Application: application}
}

func (s *SecretTool) Passphrase(ctx context.Context) (string, error) {
	out, err := runSecretTool(ctx, "lookup", "application", s.Application)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("secret-tool not found, install libsecret-tools: %w", err)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			return FallbackPassphrase, nil
		}
		return "", fmt.Errorf("secret-tool lookup: %w", err)
	}
	secret := strings.TrimRight(string(out), "\r\n")
	if secret == "" {
		return FallbackPassphrase, nil
	}
	return secret, nil
}

var _ Provider = (*SecretTool)(nil)
