package common

import (
	"errors"
	"strings"
	"time"
)

// Layouts accepted for dates sent by clients. Browsers send YYYY-MM-DD from
// date inputs; the rest cover timestamps, partial dates and the dotted
// European form.
var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"2006-01",
	"2006",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"02.01.2006",
	"01/02/2006",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	time.RFC1123,
	time.RFC1123Z,
}

var ErrInvalidDate = errors.New("invalid date")

func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}
