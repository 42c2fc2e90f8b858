// Package calendar provides the week and date arithmetic used by the
// validators.
//
// Calendar dates travel as fixed-format YYYY-MM-DD strings and are
// represented internally as UTC midnight instants. Week boundaries are
// computed in a caller-supplied IANA timezone so a week always starts at
// local midnight on Monday, including across DST transitions.
package calendar

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	// Embed the IANA database so results don't depend on the host zoneinfo.
	_ "time/tzdata"
)

// DateLayout is the only accepted calendar-date layout.
const DateLayout = "2006-01-02"

var (
	// ErrInvalidFormat covers both malformed strings and impossible dates
	// such as 2025-02-30. Callers surface one message for both.
	ErrInvalidFormat = errors.New("date must be in YYYY-MM-DD format")

	// ErrNotMonday indicates a real date that does not fall on a Monday.
	ErrNotMonday = errors.New("date must be a Monday")

	// ErrUnknownTimezone indicates an identifier the IANA database doesn't know.
	ErrUnknownTimezone = errors.New("unknown timezone")
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseCalendarDate parses a YYYY-MM-DD string into a UTC midnight instant.
// Impossible dates are detected by formatting the normalized instant back
// and comparing it with the input.
func ParseCalendarDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !datePattern.MatchString(s) {
		return time.Time{}, ErrInvalidFormat
	}

	year, _ := strconv.Atoi(s[0:4])
	month, _ := strconv.Atoi(s[5:7])
	day, _ := strconv.Atoi(s[8:10])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if FormatCalendarDate(t) != s {
		return time.Time{}, ErrInvalidFormat
	}
	return t, nil
}

// FormatCalendarDate renders the calendar date of t in t's own location.
func FormatCalendarDate(t time.Time) string {
	return t.Format(DateLayout)
}

// RequireMonday fails with ErrNotMonday unless t falls on a Monday.
func RequireMonday(t time.Time) error {
	if t.Weekday() != time.Monday {
		return ErrNotMonday
	}
	return nil
}

// LoadLocation resolves an IANA identifier. An empty identifier means UTC.
func LoadLocation(tz string) (*time.Location, error) {
	if tz == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, ErrUnknownTimezone
	}
	return loc, nil
}

// WeekStartFor returns local midnight on the Monday on or before the calendar
// day t falls on in the given timezone.
func WeekStartFor(t time.Time, tz string) (time.Time, error) {
	loc, err := LoadLocation(tz)
	if err != nil {
		return time.Time{}, err
	}
	return WeekStartIn(t, loc), nil
}

// WeekStartIn is WeekStartFor with an already-resolved location.
//
// Day arithmetic goes through time.Date on calendar fields rather than
// subtracting fixed 24h durations, so a DST shift inside the week can't move
// the result off midnight.
func WeekStartIn(t time.Time, loc *time.Location) time.Time {
	year, month, day := t.In(loc).Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, loc)
	sinceMonday := (int(midnight.Weekday()) + 6) % 7
	return time.Date(year, month, day-sinceMonday, 0, 0, 0, 0, loc)
}

// SameWeek reports whether two calendar dates share a Monday-anchored week.
func SameWeek(a, b time.Time) bool {
	return WeekStartIn(a, time.UTC).Equal(WeekStartIn(b, time.UTC))
}
