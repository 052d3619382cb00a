package cookies

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Format names an output representation of the selected cookies.
type Format string

const (
	// FormatCurl is the Netscape cookie file format read by curl and wget.
	FormatCurl Format = "curl"
	// FormatJar is an http.CookieJar holding the cookies for the request URI.
	FormatJar Format = "jar"
	// FormatSetCookie is a list of Set-Cookie header values.
	FormatSetCookie Format = "set-cookie"
	// FormatHeader is a single Cookie header value.
	FormatHeader Format = "header"
	// FormatObject is a name to value map; overlapping names are overwritten.
	FormatObject Format = "object"
)

// Formats lists every supported format, default last.
var Formats = []Format{FormatCurl, FormatJar, FormatSetCookie, FormatHeader, FormatObject}

// ParseFormat maps a format name to a Format. The empty string selects
// FormatObject.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatObject, nil
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

func boolString(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// BuildNetscape renders cookies as Netscape cookie file lines:
// domain, include-subdomains flag, path, secure, expiry, name, value.
func BuildNetscape(cookies []Record, domain string) string {
	lines := make([]string, len(cookies))
	for i, c := range cookies {
		expiry := "0"
		if c.HasExpires {
			expiry = strconv.FormatInt(ChromeToUnix(c.ExpiresUTC), 10)
		}
		lines[i] = strings.Join([]string{
			c.HostKey,
			boolString(c.HostKey == "."+domain),
			c.Path,
			boolString(c.Secure),
			expiry,
			c.Name,
			c.Value,
		}, "\t")
	}
	return strings.Join(lines, "\n")
}

// BuildCookieHeader builds an HTTP Cookie header value from a slice of cookies.
// Format: "name1=val1; name2=val2"
func BuildCookieHeader(cookies []Record) string {
	if len(cookies) == 0 {
		return ""
	}

	parts := make([]string, len(cookies))
	for i, c := range cookies {
		parts[i] = c.Name + "=" + c.Value
	}
	return strings.Join(parts, "; ")
}

// BuildSetCookies renders one Set-Cookie header value per cookie.
func BuildSetCookies(cookies []Record) []string {
	out := make([]string, 0, len(cookies))
	for _, c := range cookies {
		var b strings.Builder
		b.WriteString(c.Name + "=" + c.Value)
		b.WriteString("; expires=" + ChromeToTime(c.ExpiresUTC).Format(http.TimeFormat))
		b.WriteString("; Domain=" + c.HostKey)
		b.WriteString("; Path=" + c.Path)
		if c.Secure {
			b.WriteString("; Secure")
		}
		if c.HTTPOnly {
			b.WriteString("; HttpOnly")
		}
		out = append(out, b.String())
	}
	return out
}

// BuildObject maps cookie names to values. Later cookies overwrite earlier
// ones with the same name; Select already removed duplicates, so this only
// matters for hand-built inputs.
func BuildObject(cookies []Record) map[string]string {
	out := make(map[string]string, len(cookies))
	for _, c := range cookies {
		out[c.Name] = c.Value
	}
	return out
}

// BuildJar stores every cookie as "name=value" for rawURI in a new jar
// backed by the public suffix list. Cookies that do not parse are skipped.
func BuildJar(cookies []Record, rawURI string) (http.CookieJar, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	for _, c := range cookies {
		parsed, err := http.ParseSetCookie(c.Name + "=" + c.Value)
		if err != nil {
			continue
		}
		jar.SetCookies(u, []*http.Cookie{parsed})
	}
	return jar, nil
}

// Render converts cookies into the requested format. The concrete type of
// the result is string for curl and header, []string for set-cookie,
// http.CookieJar for jar and map[string]string for object.
func Render(format Format, cookies []Record, domain, rawURI string) (any, error) {
	switch format {
	case FormatCurl:
		return BuildNetscape(cookies, domain), nil
	case FormatJar:
		return BuildJar(cookies, rawURI)
	case FormatSetCookie:
		return BuildSetCookies(cookies), nil
	case FormatHeader:
		return BuildCookieHeader(cookies), nil
	case FormatObject, "":
		return BuildObject(cookies), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}
