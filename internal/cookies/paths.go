package cookies

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Browser describes where a Chromium-family browser keeps its profiles and
// under which names it stores the safe storage passphrase.
type Browser struct {
	// ID is the short name used on the command line (e.g. "chrome").
	ID string
	// Name is the human-readable browser name (e.g. "Chrome").
	Name string
	// KeychainService and KeychainAccount locate the passphrase in the
	// macOS keychain.
	KeychainService string
	KeychainAccount string
	// SecretToolApp is the libsecret "application" attribute on Linux.
	SecretToolApp string

	darwinDir  []string
	linuxDir   []string
	windowsDir []string
}

// Browsers lists the supported browsers, default first.
var Browsers = []Browser{
	{
		ID:              "chrome",
		Name:            "Chrome",
		KeychainService: "Chrome Safe Storage",
		KeychainAccount: "Chrome",
		SecretToolApp:   "chrome",
		darwinDir:       []string{"Google", "Chrome"},
		linuxDir:        []string{"google-chrome"},
		windowsDir:      []string{"Google", "Chrome", "User Data"},
	},
	{
		ID:              "chromium",
		Name:            "Chromium",
		KeychainService: "Chromium Safe Storage",
		KeychainAccount: "Chromium",
		SecretToolApp:   "chromium",
		darwinDir:       []string{"Chromium"},
		linuxDir:        []string{"chromium"},
		windowsDir:      []string{"Chromium", "User Data"},
	},
	{
		ID:              "brave",
		Name:            "Brave",
		KeychainService: "Brave Safe Storage",
		KeychainAccount: "Brave",
		SecretToolApp:   "brave",
		darwinDir:       []string{"BraveSoftware", "Brave-Browser"},
		linuxDir:        []string{"BraveSoftware", "Brave-Browser"},
		windowsDir:      []string{"BraveSoftware", "Brave-Browser", "User Data"},
	},
	{
		ID:              "edge",
		Name:            "Edge",
		KeychainService: "Microsoft Edge Safe Storage",
		KeychainAccount: "Microsoft Edge",
		SecretToolApp:   "microsoft-edge",
		darwinDir:       []string{"Microsoft Edge"},
		linuxDir:        []string{"microsoft-edge"},
		windowsDir:      []string{"Microsoft", "Edge", "User Data"},
	},
}

// DefaultProfile is the profile directory a fresh browser install uses.
const DefaultProfile = "Default"

// ParseBrowser looks a browser up by ID, case-insensitively. The empty
// string selects Chrome.
func ParseBrowser(id string) (Browser, error) {
	if id == "" {
		return Browsers[0], nil
	}
	for _, b := range Browsers {
		if strings.EqualFold(b.ID, id) {
			return b, nil
		}
	}
	return Browser{}, fmt.Errorf("unknown browser %q", id)
}

// BrowserIDs returns the IDs of all supported browsers.
func BrowserIDs() []string {
	ids := make([]string, len(Browsers))
	for i, b := range Browsers {
		ids[i] = b.ID
	}
	return ids
}

// StoreCandidates returns the cookie database paths a profile may use,
// newest layout first.
func StoreCandidates(userDataDir, profile string) []string {
	if profile == "" {
		profile = DefaultProfile
	}
	base := filepath.Join(userDataDir, profile)
	return []string{
		filepath.Join(base, "Network", "Cookies"),
		filepath.Join(base, "Cookies"),
	}
}

// PathResolver locates the cookie database for one extraction call.
type PathResolver func() (string, error)

// StaticPath resolves to path unconditionally.
func StaticPath(path string) PathResolver {
	return func() (string, error) { return path, nil }
}

// ProfileResolver resolves to the first existing cookie database of the
// profile inside userDataDir.
func ProfileResolver(userDataDir, profile string) PathResolver {
	return func() (string, error) {
		candidates := StoreCandidates(userDataDir, profile)
		for _, p := range candidates {
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				return p, nil
			}
		}
		return "", fmt.Errorf("%w: no cookie store found (tried %s)", ErrStorage, strings.Join(candidates, ", "))
	}
}
