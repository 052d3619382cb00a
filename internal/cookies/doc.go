// Package cookies reads the cookie store of a Chromium-family browser on
// macOS and Linux, decrypts the stored values, selects the cookies that
// apply to a URI using RFC 6265 domain and path matching, and renders them
// in formats consumed by HTTP tooling (curl cookie files, Cookie headers,
// Set-Cookie strings, http.CookieJar, name/value maps).
//
// Every extraction call owns its storage handle and key material. The
// store is copied to a temporary directory, queried read-only and removed
// before the call returns. Cookie values are never logged or formatted into
// errors; only names and counts are.
package cookies
