package utils

import "time"

// Timestamps are stored as epoch seconds.
func NowUnixSeconds() int64 { return time.Now().Unix() }

// FormatUnixRFC3339 renders epoch seconds in UTC. Zero or negative renders as "".
func FormatUnixRFC3339(t int64) string {
	if t <= 0 {
		return ""
	}
	return time.Unix(t, 0).UTC().Format(time.RFC3339)
}
