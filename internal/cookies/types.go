package cookies

import "context"

// Record is one row of the browser's cookies table as read from storage.
// IMPORTANT: Value is SENSITIVE and must never be logged.
type Record struct {
	// HostKey is the domain the cookie is scoped to (may have a leading dot).
	HostKey string
	// Path is the cookie path scope.
	Path string
	// Secure requires a secure transport.
	Secure bool
	// HTTPOnly is carried through to the output formats, not enforced.
	HTTPOnly bool
	// ExpiresUTC is the expiry in store-epoch microseconds, meaningful only
	// when HasExpires is set.
	ExpiresUTC int64
	HasExpires bool
	// Persistent mirrors the store's persistent flag.
	Persistent bool
	Name       string
	// Value is the plaintext value, empty while the cookie is still encrypted.
	Value string
	// EncryptedValue is the raw ciphertext; cleared once decrypted.
	EncryptedValue []byte
	// CreationUTC is the creation time in store-epoch microseconds.
	CreationUTC int64
}

// MatchContext is derived from the target URI and only used for filtering.
type MatchContext struct {
	Host   string
	Path   string
	Secure bool
}

// RowSource returns the stored cookies whose host_key ends with domain,
// ordered by path length descending then creation time ascending.
type RowSource interface {
	Rows(ctx context.Context, domain string) ([]Record, error)
	Close() error
}

// Opener acquires a RowSource for a single extraction call.
type Opener func(ctx context.Context) (RowSource, error)
