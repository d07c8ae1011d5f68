package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the wire format of every timestamp written by issuefeed.
const TimestampLayout = "2006-01-02T15:04:05-07:00"

// Epoch is the feed-level updated value of a feed without entries.
var Epoch = time.Unix(0, 0).UTC()

var offsetlessLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// NormalizeTime converts t to UTC with second precision.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// FormatTimestamp renders t in UTC with an explicit +00:00 offset.
func FormatTimestamp(t time.Time) string {
	return NormalizeTime(t).Format(TimestampLayout)
}

// ParseTimestamp parses an ISO-8601 timestamp. A trailing Z means UTC, as
// does a missing offset.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty timestamp", ErrInvalidInput)
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return NormalizeTime(t), nil
	}

	trimmed := strings.TrimSuffix(strings.TrimSuffix(s, "Z"), "z")
	for _, layout := range offsetlessLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.UTC); err == nil {
			return NormalizeTime(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: invalid timestamp %q", ErrInvalidInput, s)
}
