package cookies

import (
	"errors"

	"github.com/warpdl/chromecookies/pkg/credman/encryption"
)

var (
	// ErrInvalidURI means the URI has no parseable scheme or host.
	ErrInvalidURI = errors.New("could not parse URI, format should be http://www.example.com/path/")
	// ErrDomainParse means no registrable domain could be derived from the host.
	ErrDomainParse = errors.New("could not parse domain from URI, format should be http://www.example.com/path/")
	// ErrKeyDerivation means the passphrase could not be obtained or turned into a key.
	ErrKeyDerivation = errors.New("key derivation failed")
	// ErrDecryption means a stored value could not be decrypted.
	ErrDecryption = encryption.ErrDecryption
	// ErrStorage means the cookie store could not be opened, queried or closed.
	ErrStorage = errors.New("cookie store error")
	// ErrUnknownFormat is returned for an unsupported output format name.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrUnsupportedPlatform is returned when no platform profile exists for the OS.
	ErrUnsupportedPlatform = errors.New("only macOS and Linux are supported")
)
