package model

import (
	"time"

	"github.com/eprocurement-ocds/revision/modules/revision/domain/fail"
)

// DateTimeFormat is the platform-wide timestamp format: UTC, second
// precision, literal 'Z' suffix.
const DateTimeFormat = "2006-01-02T15:04:05Z"

func ParseDateTime(name, value string) (time.Time, error) {
	// time.Parse consumes an unlisted fractional-seconds part, so a strict
	// round-trip check is needed to reject it.
	parsed, err := time.Parse(DateTimeFormat, value)
	if err != nil || parsed.UTC().Format(DateTimeFormat) != value {
		return time.Time{}, fail.DataFormatMismatch{
			Name:           name,
			ActualValue:    value,
			ExpectedFormat: "uuuu-MM-dd'T'HH:mm:ss'Z'",
		}
	}
	return parsed.UTC(), nil
}

func FormatDateTime(t time.Time) string {
	return t.UTC().Format(DateTimeFormat)
}
