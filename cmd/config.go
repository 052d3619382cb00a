package cmd

const DESCRIPTION = `
chromecookies reads the cookie store of Chrome, Chromium, Brave or Edge,
decrypts it with the key held by the OS keychain (macOS) or libsecret
(Linux) and prints the cookies the browser would send to a URL.
`

const (
	GetDescription = `The get command prints the cookies that apply to the url,
most specific first. When two cookies share a name only the one
with the longest path is kept.

Formats:
        object      JSON object of name to value (default)
        header      value for a Cookie request header
        curl        Netscape cookie file, usable with curl -b
        set-cookie  one Set-Cookie header value per line
        jar         Cookie header as produced by a cookie jar

Every option can also be set through CHROMECOOKIES_<OPTION>, e.g.
CHROMECOOKIES_FORMAT=curl. CHROMECOOKIES_PASSPHRASE replaces the
keychain lookup.

Example:
        chromecookies https://github.com/
                    OR
        chromecookies get -f curl https://github.com/ > cookies.txt

`
	PathsDescription = `The paths command lists, for every supported browser, the
cookie databases that would be tried for the profile and
whether they exist.

Example:
        chromecookies paths --profile "Profile 1"

`
)
