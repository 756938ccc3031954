package datemath

import (
	"fmt"
	"regexp"
	"time"
)

// DateFormat is the calendar date layout used on the wire (YYYY-MM-DD).
const DateFormat = "2006-01-02"

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Calendar does day-granularity arithmetic in a fixed timezone.
type Calendar struct {
	location *time.Location
}

// New creates a Calendar for the given IANA timezone string, e.g. "America/Sao_Paulo".
func New(timezone string) (*Calendar, error) {
	if timezone == "" {
		timezone = "UTC"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calendar{location: loc}, nil
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// Today returns midnight of the day containing now, in the calendar's timezone.
func (c *Calendar) Today(now time.Time) time.Time {
	return c.StartOfDay(now)
}

// StartOfDay returns midnight at the start of the given day in the calendar's timezone.
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// AddDays moves day by n calendar days. DST transitions do not shift the result
// off midnight because the arithmetic is done on the date, not on durations.
func (c *Calendar) AddDays(day time.Time, n int) time.Time {
	return c.StartOfDay(day).AddDate(0, 0, n)
}

// DayString formats day+n as YYYY-MM-DD.
func (c *Calendar) DayString(day time.Time, n int) string {
	return c.AddDays(day, n).Format(DateFormat)
}

// Sequence returns n consecutive dates starting at start, formatted as YYYY-MM-DD.
func (c *Calendar) Sequence(start time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	dates := make([]string, n)
	for i := range dates {
		dates[i] = c.DayString(start, i)
	}
	return dates
}

// ParseDate parses a YYYY-MM-DD string as midnight in the calendar's timezone.
func (c *Calendar) ParseDate(s string) (time.Time, error) {
	if !isoDatePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("date %q is not in YYYY-MM-DD format", s)
	}
	t, err := time.ParseInLocation(DateFormat, s, c.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// IsISODate reports whether s is a real calendar date written as YYYY-MM-DD.
func IsISODate(s string) bool {
	if !isoDatePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateFormat, s)
	return err == nil
}
