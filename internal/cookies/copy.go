package cookies

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// storeFs is the filesystem OpenStore copies stores on. Only the SafeCopy step
// goes through it; the sqlite driver and DetectFormat read the copy from the
// OS filesystem, so it must stay an OsFs outside of SafeCopy tests.
var storeFs afero.Fs = afero.NewOsFs()

// SafeCopy copies a SQLite cookie file (and its -wal and -shm companions if
// they exist) from src to a temporary directory on dst. This prevents locking
// conflicts with the browser that owns the database.
//
// Returns the temporary directory path, a cleanup function that removes the
// temp directory, and an error. The caller MUST call cleanup when done.
func SafeCopy(src, dst afero.Fs, srcPath string) (tempDir string, cleanup func(), err error) {
	info, err := src.Stat(srcPath)
	if err != nil {
		return "", nil, fmt.Errorf("error: cookie file not found: %s", srcPath)
	}
	if info.IsDir() {
		return "", nil, fmt.Errorf("error: %s is a directory, expected a cookie file path", srcPath)
	}
	if info.Size() == 0 {
		return "", nil, fmt.Errorf("error: cookie file at %s is empty or corrupted", srcPath)
	}

	tempDir, err = afero.TempDir(dst, "", "chromecookies-")
	if err != nil {
		return "", nil, fmt.Errorf("error: cannot create temp directory: %w", err)
	}

	cleanup = func() {
		dst.RemoveAll(tempDir)
	}

	baseName := filepath.Base(srcPath)

	if err := copyFile(src, dst, srcPath, filepath.Join(tempDir, baseName)); err != nil {
		cleanup()
		return "", nil, err
	}

	// WAL and SHM are best-effort
	for _, suffix := range []string{"-wal", "-shm"} {
		companion := srcPath + suffix
		if _, err := src.Stat(companion); err == nil {
			_ = copyFile(src, dst, companion, filepath.Join(tempDir, baseName+suffix))
		}
	}

	return tempDir, cleanup, nil
}

func copyFile(srcFs, dstFs afero.Fs, src, dst string) error {
	in, err := srcFs.Open(src)
	if err != nil {
		return fmt.Errorf("error: cannot open source file %s: %w", src, err)
	}
	defer in.Close()

	out, err := dstFs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("error: cannot create destination file %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("error: cannot copy file: %w", err)
	}
	return nil
}
