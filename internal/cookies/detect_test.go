package cookies

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func makeFirefoxDB(t *testing.T, dir string) string {
	t.Helper()
	dbPath := filepath.Join(dir, "cookies.sqlite")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("makeFirefoxDB: open: %v", err)
	}
	_, err = db.Exec(`CREATE TABLE moz_cookies (
        id INTEGER PRIMARY KEY,
        name TEXT NOT NULL DEFAULT '',
        value TEXT NOT NULL DEFAULT '',
        host TEXT NOT NULL DEFAULT '',
        path TEXT NOT NULL DEFAULT '/',
        expiry INTEGER NOT NULL DEFAULT 0
    )`)
	if err != nil {
		t.Fatalf("makeFirefoxDB: create table: %v", err)
	}
	db.Close()
	return dbPath
}

func TestDetectFormat_ChromiumSQLite(t *testing.T) {
	dbPath := createChromeFixture(t, t.TempDir(), nil)

	format, err := DetectFormat(dbPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != FormatChromium {
		t.Errorf("expected FormatChromium (%d), got %d", FormatChromium, format)
	}
}

func TestDetectFormat_HashInFileName(t *testing.T) {
	dir := t.TempDir()
	fixture := createChromeFixture(t, dir, nil)
	dbPath := filepath.Join(dir, "profile#1 Cookies")
	if err := os.Rename(fixture, dbPath); err != nil {
		t.Fatalf("rename fixture: %v", err)
	}

	format, err := DetectFormat(dbPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != FormatChromium {
		t.Errorf("expected FormatChromium (%d), got %d", FormatChromium, format)
	}
}

func TestDetectFormat_FirefoxSQLite(t *testing.T) {
	dbPath := makeFirefoxDB(t, t.TempDir())

	format, err := DetectFormat(dbPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != FormatFirefox {
		t.Errorf("expected FormatFirefox (%d), got %d", FormatFirefox, format)
	}
}

func TestDetectFormat_NotSQLite(t *testing.T) {
	dir := t.TempDir()
	fpath := filepath.Join(dir, "Cookies")
	if err := os.WriteFile(fpath, []byte("# Netscape HTTP Cookie File\n.example.com\tTRUE\t/\tFALSE\t0\ta\tb\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	format, err := DetectFormat(fpath)
	if err == nil {
		t.Fatal("expected error for non-SQLite file, got nil")
	}
	if format != FormatUnknown {
		t.Errorf("expected FormatUnknown, got %d", format)
	}
}

func TestDetectFormat_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	fpath := filepath.Join(dir, "Cookies")
	if err := os.WriteFile(fpath, []byte{}, 0644); err != nil {
		t.Fatalf("failed to write empty file: %v", err)
	}

	if _, err := DetectFormat(fpath); err == nil {
		t.Fatal("expected error for empty file, got nil")
	}
}

func TestDetectFormat_FileNotFound(t *testing.T) {
	if _, err := DetectFormat("/nonexistent/path/Cookies"); err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestDetectFormat_Directory(t *testing.T) {
	if _, err := DetectFormat(t.TempDir()); err == nil {
		t.Fatal("expected error for directory, got nil")
	}
}

func TestDetectFormat_SQLiteUnknownSchema(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "unknown.sqlite")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE some_other_table (id INTEGER PRIMARY KEY, data TEXT)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	db.Close()

	if _, err := DetectFormat(dbPath); err == nil {
		t.Fatal("expected error for unsupported schema, got nil")
	}
}
