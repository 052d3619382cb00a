package cookies

import (
	"net"
	"strings"
)

// DomainMatch reports whether host satisfies the cookie's domain scope: it
// equals the cookie domain (leading dot ignored) or is a subdomain of it.
// IP literals only ever match exactly.
func DomainMatch(host, cookieDomain string) bool {
	host = strings.ToLower(host)
	domain := strings.TrimPrefix(strings.ToLower(cookieDomain), ".")
	if domain == "" {
		return false
	}
	if host == domain {
		return true
	}
	if net.ParseIP(host) != nil {
		return false
	}
	return strings.HasSuffix(host, "."+domain)
}

// PathMatch reports whether the request path satisfies the cookie path as
// defined in RFC 6265 section 5.1.4.
func PathMatch(requestPath, cookiePath string) bool {
	if requestPath == cookiePath {
		return true
	}
	if !strings.HasPrefix(requestPath, cookiePath) {
		return false
	}
	if strings.HasSuffix(cookiePath, "/") {
		return true
	}
	return requestPath[len(cookiePath)] == '/'
}

// Applies reports whether a cookie passes the secure, domain and path filters.
func (mc MatchContext) Applies(r Record) bool {
	if r.Secure && !mc.Secure {
		return false
	}
	if !DomainMatch(mc.Host, r.HostKey) {
		return false
	}
	return PathMatch(mc.Path, r.Path)
}
