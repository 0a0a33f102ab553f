package common

import "time"

// isoMillisLayout matches the millisecond precision ISO-8601 form browsers emit.
const isoMillisLayout = "2006-01-02T15:04:05.000Z07:00"

// ISOTimestamp renders t in UTC, e.g. 2024-05-01T10:20:30.000Z.
func ISOTimestamp(t time.Time) string {
	return t.UTC().Format(isoMillisLayout)
}
