package cookies

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// SQLiteStore is a RowSource over a private, read-only copy of a Chromium
// Cookies database.
type SQLiteStore struct {
	db      *sql.DB
	path    string
	cleanup func()
	query   string
}

// OpenStore copies the cookie database at path to a temporary directory and
// opens the copy. The returned store must be closed, which also deletes the
// copy.
func OpenStore(ctx context.Context, path string) (*SQLiteStore, error) {
	tempDir, cleanup, err := SafeCopy(storeFs, storeFs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	copied := filepath.Join(tempDir, filepath.Base(path))

	format, err := DetectFormat(copied)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if format != FormatChromium {
		cleanup()
		return nil, fmt.Errorf("%w: error: %s is not a Chromium cookie store", ErrStorage, path)
	}

	db, err := sql.Open("sqlite", sqliteDSN(copied, "immutable=1"))
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("%w: error: cannot open Chrome cookie database: %w", ErrStorage, err)
	}

	query, err := buildRowQuery(ctx, db)
	if err != nil {
		db.Close()
		cleanup()
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return &SQLiteStore{db: db, path: copied, cleanup: cleanup, query: query}, nil
}

// sqliteDSN builds a file: URI for path. The path is escaped so that '#', '?'
// and '%' in file names reach SQLite intact.
func sqliteDSN(path, query string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p, RawQuery: query}).String()
}

// buildRowQuery picks column names for the schema at hand. Older Chrome
// versions name the flags secure/httponly/persistent; newer ones prefix
// them with is_.
func buildRowQuery(ctx context.Context, db *sql.DB) (string, error) {
	rows, err := db.QueryContext(ctx, `PRAGMA table_info(cookies)`)
	if err != nil {
		return "", fmt.Errorf("error: cannot read cookies schema: %w", err)
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, typ        string
			dflt             sql.NullString
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return "", fmt.Errorf("error: cannot read cookies schema: %w", err)
		}
		columns[name] = true
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("error: cannot read cookies schema: %w", err)
	}

	pick := func(fallback string, names ...string) string {
		for _, n := range names {
			if columns[n] {
				return n
			}
		}
		return fallback
	}

	for _, required := range []string{"host_key", "path", "expires_utc", "name", "value", "encrypted_value", "creation_utc"} {
		if !columns[required] {
			return "", fmt.Errorf("error: cookies table has no %s column", required)
		}
	}

	selectList := strings.Join([]string{
		"host_key",
		"path",
		pick("0", "is_secure", "secure"),
		"expires_utc",
		"name",
		"value",
		"encrypted_value",
		"creation_utc",
		pick("0", "is_httponly", "httponly"),
		pick("expires_utc != 0", "has_expires"),
		pick("0", "is_persistent", "persistent"),
	}, ", ")

	// ORDER BY tries to match the sort order of RFC 6265 section 5.4 step 2.
	return `SELECT ` + selectList + `
        FROM cookies
        WHERE host_key LIKE ?
        ORDER BY LENGTH(path) DESC, creation_utc ASC`, nil
}

// Rows returns every cookie whose host_key ends with domain.
func (s *SQLiteStore) Rows(ctx context.Context, domain string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, s.query, "%"+domain)
	if err != nil {
		return nil, fmt.Errorf("%w: error: failed to query Chrome cookies: %w", ErrStorage, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			r                                        Record
			encrypted                                []byte
			isSecure, isHTTPOnly, hasExp, persistent int64
		)
		if err := rows.Scan(&r.HostKey, &r.Path, &isSecure, &r.ExpiresUTC, &r.Name, &r.Value,
			&encrypted, &r.CreationUTC, &isHTTPOnly, &hasExp, &persistent); err != nil {
			return nil, fmt.Errorf("%w: error: failed to scan Chrome cookie row: %w", ErrStorage, err)
		}
		r.EncryptedValue = encrypted
		r.Secure = isSecure != 0
		r.HTTPOnly = isHTTPOnly != 0
		r.HasExpires = hasExp != 0
		r.Persistent = persistent != 0
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error: failed to iterate Chrome cookie rows: %w", ErrStorage, err)
	}
	return records, nil
}

// Close closes the database and removes the temporary copy.
func (s *SQLiteStore) Close() error {
	defer s.cleanup()
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("%w: error: cannot close Chrome cookie database: %w", ErrStorage, err)
	}
	return nil
}

var _ RowSource = (*SQLiteStore)(nil)
