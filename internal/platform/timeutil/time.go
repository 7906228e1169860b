package timeutil

import "time"

// RFC3339Millis is RFC 3339 UTC with fixed millisecond precision, the same
// shape JavaScript's Date.toISOString produces. API payloads use it.
const RFC3339Millis = "2006-01-02T15:04:05.000Z"

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision. Log lines use it.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

// Clock returns the current time. Handlers take one so tests can pin it.
type Clock func() time.Time

// System is the wall clock.
var System Clock = time.Now

// FormatMillis renders t in UTC using RFC3339Millis.
func FormatMillis(t time.Time) string {
	return t.UTC().Format(RFC3339Millis)
}

// FormatMicros renders t in UTC using RFC3339Micros.
func FormatMicros(t time.Time) string {
	return t.UTC().Format(RFC3339Micros)
}
