package types

import (
	"errors"
	"strings"
	"time"
)

var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006.01.02 15:04:05",
	"2006.01.02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"20060102150405",
	"20060102",
	"2006-01-02T15:04:05Z",
	time.ANSIC,
	time.UnixDate,
	time.RubyDate,
	time.RFC822,
	time.RFC822Z,
	time.RFC850,
	time.RFC1123,
	time.RFC1123Z,
}

const (
	// DefaultLayout24h default 24h layout
	DefaultLayout24h = "yyyy-MM-dd HH:mm:ss"
	// DateLayout calendar date layout
	DateLayout = "2006-01-02"
	// StampLayout compact timestamp used in file names
	StampLayout = "yyyyMMdd_HHmmss"
)

// ErrUnparseableTime is returned when no known layout matches.
var ErrUnparseableTime = errors.New("can't parse string as time")

// ParseLocalTime parse to local time
func ParseLocalTime(str string) (t time.Time, err error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return time.Time{}, ErrUnparseableTime
	}
	location := time.Now().Location()
	for _, format := range timeFormats {
		t, err = time.ParseInLocation(format, str, location)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Join(ErrUnparseableTime, errors.New(str))
}

// layoutTokens maps date pattern tokens to Go reference layout pieces,
// longest tokens first.
var layoutTokens = []struct{ token, layout string }{
	{"yyyy", "2006"},
	{"EEEE", "Monday"},
	{"EEE", "Mon"},
	{"yy", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"dd", "02"},
	{"HH", "15"},
	{"hh", "03"},
	{"mm", "04"},
	{"ss", "05"},
	{"a", "PM"},
	{"d", "2"},
}

// ToGoLayout converts a pattern such as "yyyy-MM-dd HH:mm:ss" to a Go time layout.
// Strings without pattern tokens are returned unchanged.
func ToGoLayout(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		matched := false
		for _, t := range layoutTokens {
			if strings.HasPrefix(pattern[i:], t.token) {
				b.WriteString(t.layout)
				i += len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(pattern[i])
			i++
		}
	}
	return b.String()
}

// FormatTime format time with a pattern, empty string for the zero time
func FormatTime(t time.Time, pattern ...string) string {
	if t.IsZero() {
		return ""
	}
	p := DefaultLayout24h
	if len(pattern) > 0 && pattern[0] != "" {
		p = pattern[0]
	}
	return t.Format(ToGoLayout(p))
}

// FormatDate formats t as a calendar date
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a calendar date in the local location
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// StartOfDay truncates t to local midnight
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
