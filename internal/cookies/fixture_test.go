package cookies

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

type chromeRow struct {
	HostKey        string
	Path           string
	Name           string
	Value          string
	EncryptedValue []byte
	ExpiresUTC     int64
	CreationUTC    int64
	IsSecure       int
	IsHttpOnly     int
}

const modernSchema = `CREATE TABLE cookies (
        creation_utc INTEGER NOT NULL,
        host_key TEXT NOT NULL,
        name TEXT NOT NULL,
        value TEXT NOT NULL,
        encrypted_value BLOB NOT NULL DEFAULT x'',
        path TEXT NOT NULL DEFAULT '/',
        expires_utc INTEGER NOT NULL DEFAULT 0,
        is_secure INTEGER NOT NULL DEFAULT 0,
        is_httponly INTEGER NOT NULL DEFAULT 0,
        has_expires INTEGER NOT NULL DEFAULT 1,
        is_persistent INTEGER NOT NULL DEFAULT 1
    )`

const legacySchema = `CREATE TABLE cookies (
        creation_utc INTEGER NOT NULL,
        host_key TEXT NOT NULL,
        name TEXT NOT NULL,
        value TEXT NOT NULL,
        encrypted_value BLOB NOT NULL DEFAULT x'',
        path TEXT NOT NULL DEFAULT '/',
        expires_utc INTEGER NOT NULL DEFAULT 0,
        secure INTEGER NOT NULL DEFAULT 0,
        httponly INTEGER NOT NULL DEFAULT 0
    )`

func createChromeFixture(t *testing.T, dir string, rows []chromeRow) string {
	t.Helper()
	return createFixtureWithSchema(t, dir, modernSchema, "is_secure, is_httponly", rows)
}

func createLegacyFixture(t *testing.T, dir string, rows []chromeRow) string {
	t.Helper()
	return createFixtureWithSchema(t, dir, legacySchema, "secure, httponly", rows)
}

func createFixtureWithSchema(t *testing.T, dir, schema, flagColumns string, rows []chromeRow) string {
	t.Helper()
	dbPath := filepath.Join(dir, "Cookies")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("failed to create cookies table: %v", err)
	}

	stmt, err := db.Prepare(`INSERT INTO cookies (creation_utc, host_key, name, value, encrypted_value, path, expires_utc, ` +
		flagColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		t.Fatalf("failed to prepare insert: %v", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		encVal := r.EncryptedValue
		if encVal == nil {
			encVal = []byte{}
		}
		if _, err := stmt.Exec(r.CreationUTC, r.HostKey, r.Name, r.Value, encVal, r.Path, r.ExpiresUTC, r.IsSecure, r.IsHttpOnly); err != nil {
			t.Fatalf("failed to insert row: %v", err)
		}
	}
	return dbPath
}

func names(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}
