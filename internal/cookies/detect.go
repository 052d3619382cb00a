package cookies

import (
	"bytes"
	"database/sql"
	"fmt"
	"io"
	"os"

	_ "modernc.org/sqlite"
)

// StoreFormat identifies the schema of a SQLite cookie store.
type StoreFormat int

const (
	// FormatUnknown means the file is not a recognised cookie store.
	FormatUnknown StoreFormat = iota
	// FormatChromium means the file has Chromium's cookies table.
	FormatChromium
	// FormatFirefox means the file has Firefox's moz_cookies table. It is
	// detected only to produce a helpful error.
	FormatFirefox
)

// sqliteMagic is the first 16 bytes of any SQLite database file.
var sqliteMagic = []byte("SQLite format 3\x00")

// DetectFormat determines the cookie store schema of the file at the given path.
func DetectFormat(path string) (StoreFormat, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("error: cookie file not found: %s", path)
	}
	if info.IsDir() {
		return FormatUnknown, fmt.Errorf("error: %s is a directory, expected a cookie file path", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("error: cannot open cookie file: %w", err)
	}
	defer f.Close()

	header := make([]byte, len(sqliteMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		return FormatUnknown, fmt.Errorf("error: cookie file at %s is empty or corrupted", path)
	}
	if !bytes.Equal(header, sqliteMagic) {
		return FormatUnknown, fmt.Errorf("error: %s is not a SQLite database", path)
	}
	return detectSQLiteFormat(path)
}

// detectSQLiteFormat opens the SQLite file and checks which cookie table exists.
func detectSQLiteFormat(path string) (StoreFormat, error) {
	db, err := sql.Open("sqlite", sqliteDSN(path, "mode=ro"))
	if err != nil {
		return FormatUnknown, fmt.Errorf("error: cannot open SQLite database: %w", err)
	}
	defer db.Close()

	var tableName string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='cookies'`).Scan(&tableName)
	if err == nil {
		return FormatChromium, nil
	}

	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='moz_cookies'`).Scan(&tableName)
	if err == nil {
		return FormatFirefox, nil
	}

	return FormatUnknown, fmt.Errorf("error: unsupported cookie database schema at %s", path)
}
