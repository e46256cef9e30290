// Package conditional implements the timestamp protocol behind conditional
// reads: deciding whether a resource representation is stale relative to a
// client-supplied If-Modified-Since value, and producing the canonical
// HTTP-formatted last-modified string for fresh responses.
package conditional

import (
	"time"
)

// httpTimeFormat is the RFC 1123 layout pinned to GMT. time.RFC1123 renders
// the local zone abbreviation, which would make output differ across
// processes, so the zone is fixed in the layout and inputs are normalized to
// UTC before formatting.
const httpTimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// Epoch is the sentinel substituted for an absent last-modified timestamp:
// the system's beginning of time. Substituting a fixed value keeps staleness
// comparisons total instead of special-casing absent timestamps as
// always-stale or always-fresh.
var Epoch = time.Date(2012, time.January, 1, 0, 0, 0, 0, time.UTC)

// Stale reports whether a resource representation must be returned to a
// client that last saw it at since. Both timestamps are truncated to whole
// seconds before comparison; equality means not stale. A zero lastModified is
// replaced by Epoch.
func Stale(lastModified, since time.Time) bool {
	if lastModified.IsZero() {
		lastModified = Epoch
	}
	return lastModified.Truncate(time.Second).After(since.Truncate(time.Second))
}

// ParseHTTPDate parses a client-supplied HTTP date string. The second return
// value is false when the string is empty or unparseable, which callers must
// treat as "no conditional check requested".
func ParseHTTPDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(httpTimeFormat, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatHTTPDate renders t for a Last-Modified response header. Output is
// normalized to UTC and byte-identical across processes. A zero t is replaced
// by Epoch.
func FormatHTTPDate(t time.Time) string {
	if t.IsZero() {
		t = Epoch
	}
	return t.UTC().Format(httpTimeFormat)
}
