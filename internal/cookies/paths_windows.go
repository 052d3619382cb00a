//go:build windows

package cookies

import (
	"errors"
	"os"
	"path/filepath"
)

// userDataDirForEnv returns the browser's user data directory under the given
// LOCALAPPDATA value. Windows stores are listed by the paths command but
// cannot be decrypted by this package.
func userDataDirForEnv(b Browser, localAppData string) string {
	parts := append([]string{localAppData}, b.windowsDir...)
	return filepath.Join(parts...)
}

// UserDataDir returns the browser's user data directory for the current user.
func UserDataDir(b Browser) (string, error) {
	localAppData := os.Getenv("LOCALAPPDATA")
	if localAppData == "" {
		return "", errors.New("LOCALAPPDATA is not set")
	}
	return userDataDirForEnv(b, localAppData), nil
}
