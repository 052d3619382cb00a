package keyring

import "context"

// FallbackPassphrase is the hardcoded passphrase Chromium uses on Linux when
// no secret service is available. It offers no protection at all; any
// process that can read the cookie file can decrypt it.
const FallbackPassphrase = "peanuts"

// Static returns a fixed passphrase. It backs the Linux fallback and
// explicit passphrase overrides.
type Static struct {
	Value string
}

// NewStatic returns a provider that always yields value.
func NewStatic(value string) *Static {
	return &Static{Value: value}
}

// Fallback returns the weak "peanuts" provider.
func Fallback() *Static {
	return NewStatic(FallbackPassphrase)
}

func (s *Static) Passphrase(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.Value, nil
}

var _ Provider = (*Static)(nil)
