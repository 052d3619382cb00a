package cookies

import "time"

// chromeEpochOffsetSeconds is the number of seconds between the Windows NT epoch
// (1601-01-01 00:00:00 UTC) and the Unix epoch (1970-01-01 00:00:00 UTC).
const chromeEpochOffsetSeconds int64 = 11_644_473_600

const chromeEpochOffsetMicros = chromeEpochOffsetSeconds * 1_000_000

// ChromeToUnix converts a Chrome timestamp (microseconds since 1601-01-01)
// to a Unix timestamp (seconds since 1970-01-01). Division truncates toward zero.
func ChromeToUnix(chromeUSec int64) int64 {
	return (chromeUSec - chromeEpochOffsetMicros) / 1_000_000
}

// ChromeToTime converts a Chrome timestamp to a UTC time with second precision.
func ChromeToTime(chromeUSec int64) time.Time {
	return time.Unix(ChromeToUnix(chromeUSec), 0).UTC()
}

// UnixToChrome is the inverse of ChromeToUnix.
func UnixToChrome(unixSec int64) int64 {
	return unixSec*1_000_000 + chromeEpochOffsetMicros
}
