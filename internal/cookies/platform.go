package cookies

import (
	"fmt"

	"github.com/warpdl/chromecookies/pkg/credman/encryption"
	"github.com/warpdl/chromecookies/pkg/credman/keyring"
)

// Platform bundles everything that differs between operating systems. It is
// chosen once at startup and injected into the Extractor, which is itself
// platform-agnostic.
type Platform struct {
	// Secret supplies the safe storage passphrase.
	Secret keyring.Provider
	// Iterations is the PBKDF2 iteration count.
	Iterations int
	// StorePath locates the cookie database.
	StorePath PathResolver
}

// PlatformOptions are the user-facing knobs that shape a Platform.
type PlatformOptions struct {
	Browser Browser
	Profile string
	// UserDataDir overrides the browser's default user data directory.
	UserDataDir string
	// CookieFile, when set, is used instead of resolving the profile.
	CookieFile string
	// Iterations, when positive, overrides the platform iteration count.
	Iterations int
	// Passphrase, when set, replaces the platform secret provider.
	Passphrase string
}

// PlatformFor returns the Platform for goos ("darwin" or "linux").
func PlatformFor(goos string, opts PlatformOptions) (Platform, error) {
	var p Platform
	b := opts.Browser
	switch goos {
	case "darwin":
		p.Secret = keyring.NewKeyring(b.KeychainService, b.KeychainAccount)
		p.Iterations = encryption.DarwinIterations
	case "linux":
		p.Secret = keyring.NewSecretTool(b.SecretToolApp)
		p.Iterations = encryption.LinuxIterations
	default:
		return Platform{}, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}

	if opts.Passphrase != "" {
		p.Secret = keyring.NewStatic(opts.Passphrase)
	}
	if opts.Iterations > 0 {
		p.Iterations = opts.Iterations
	}

	switch {
	case opts.CookieFile != "":
		p.StorePath = StaticPath(opts.CookieFile)
	case opts.UserDataDir != "":
		p.StorePath = ProfileResolver(opts.UserDataDir, opts.Profile)
	default:
		p.StorePath = func() (string, error) {
			dir, err := UserDataDir(b)
			if err != nil {
				return "", fmt.Errorf("%w: cannot locate %s user data: %w", ErrStorage, b.Name, err)
			}
			return ProfileResolver(dir, opts.Profile)()
		}
	}
	return p, nil
}
