package cmd

import (
	"bytes"
	"database/sql"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli"
	"github.com/warpdl/chromecookies/pkg/credman/encryption"
	_ "modernc.org/sqlite"
)

// captureOutput captures stdout and stderr during function execution.
func captureOutput(f func()) (stdout, stderr string) {
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	f()

	wOut.Close()
	wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	var bufOut, bufErr bytes.Buffer
	io.Copy(&bufOut, rOut)
	io.Copy(&bufErr, rErr)
	rOut.Close()
	rErr.Close()

	return bufOut.String(), bufErr.String()
}

func assertContains(t *testing.T, output, expected string) {
	t.Helper()
	if !strings.Contains(output, expected) {
		t.Errorf("expected output to contain %q, got:\n%s", expected, output)
	}
}

func assertNotContains(t *testing.T, output, notExpected string) {
	t.Helper()
	if strings.Contains(output, notExpected) {
		t.Errorf("expected output to NOT contain %q, got:\n%s", notExpected, output)
	}
}

// assertErrorFormat checks the "chromecookies: cmd[action]:" error prefix.
func assertErrorFormat(t *testing.T, output, cmd, action string) {
	t.Helper()
	pattern := "chromecookies: " + cmd + "[" + action + "]:"
	if !strings.Contains(output, pattern) {
		t.Errorf("expected error format %q, got:\n%s", pattern, output)
	}
}

// newContext creates a CLI context for testing commands.
func newContext(app *cli.App, args []string, name string) *cli.Context {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	_ = set.Parse(args)
	ctx := cli.NewContext(app, set, nil)
	ctx.Command = cli.Command{Name: name}
	return ctx
}

type fixtureCookie struct {
	host, path, name, value string
	secure                  int
}

// writeCookieStore creates a Chromium cookie database whose values are
// encrypted with the "peanuts" key at one iteration.
func writeCookieStore(t *testing.T, rows []fixtureCookie) string {
	t.Helper()
	key, err := encryption.DeriveKey("peanuts", 1)
	if err != nil {
		t.Fatalf("derive key: %v", err)
	}
	dbPath := filepath.Join(t.TempDir(), "Cookies")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec(`CREATE TABLE cookies (
        creation_utc INTEGER NOT NULL,
        host_key TEXT NOT NULL,
        name TEXT NOT NULL,
        value TEXT NOT NULL,
        encrypted_value BLOB NOT NULL DEFAULT x'',
        path TEXT NOT NULL,
        expires_utc INTEGER NOT NULL,
        is_secure INTEGER NOT NULL,
        is_httponly INTEGER NOT NULL,
        has_expires INTEGER NOT NULL DEFAULT 1,
        is_persistent INTEGER NOT NULL DEFAULT 1
    )`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	for i, r := range rows {
		enc, err := encryption.EncryptValue(key, r.value)
		if err != nil {
			t.Fatalf("encrypt: %v", err)
		}
		if _, err := db.Exec(`INSERT INTO cookies (creation_utc, host_key, name, value, encrypted_value, path, expires_utc, is_secure, is_httponly)
            VALUES (?, ?, ?, '', ?, ?, ?, ?, 0)`, i, r.host, r.name, enc, r.path, int64(13343973600000000), r.secure); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	return dbPath
}
