//go:build unix

package cookies

import (
	"os"
	"path/filepath"
	"runtime"
)

// userDataDirForHome returns the browser's user data directory under homeDir.
// This is the testable variant; UserDataDir calls it with the real home.
func userDataDirForHome(b Browser, goos, homeDir string) string {
	if goos == "darwin" {
		parts := append([]string{homeDir, "Library", "Application Support"}, b.darwinDir...)
		return filepath.Join(parts...)
	}
	parts := append([]string{homeDir, ".config"}, b.linuxDir...)
	return filepath.Join(parts...)
}

// UserDataDir returns the browser's user data directory for the current user.
func UserDataDir(b Browser) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return userDataDirForHome(b, runtime.GOOS, homeDir), nil
}
