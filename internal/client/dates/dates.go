// Package dates implements the calendar arithmetic of tour date ranges.
// Tour dates travel as "YYYY/MM/DD"; dash-delimited dates and RFC 3339
// timestamps (used by match fixtures) are accepted on input.
package dates

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dmitrijs2005/tourplanner/internal/common"
)

// UnboundedDays is returned by CalculateDaysInclusive for ranges it cannot
// count. Callers must treat it as "invalid", never as a real length.
const UnboundedDays = 255

const dashLayout = "2006-01-02"

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidDateRange = errors.New("invalid date range")
)

// Parse reads a calendar date and returns it at midnight UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dashLayout, strings.ReplaceAll(s, "/", "-")); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// Format renders t in the canonical slash layout.
func Format(t time.Time) string {
	return t.Format(common.DateLayout)
}

// CalculateDaysInclusive counts the days from start to end, both included.
// Malformed input or an end before the start yields UnboundedDays.
func CalculateDaysInclusive(start, end string) int {
	s, err := Parse(start)
	if err != nil {
		return UnboundedDays
	}
	e, err := Parse(end)
	if err != nil {
		return UnboundedDays
	}
	days := int(math.Ceil(e.Sub(s).Hours()/24)) + 1
	if days <= 0 {
		return UnboundedDays
	}
	return days
}

// IsUnbounded reports whether n is the sentinel of CalculateDaysInclusive.
func IsUnbounded(n int) bool {
	return n == UnboundedDays
}

// DaysInclusive is the strict form of CalculateDaysInclusive: it reports
// malformed or inverted ranges, and ranges too long to tell apart from the
// sentinel, as ErrInvalidDateRange.
func DaysInclusive(start, end string) (int, error) {
	s, err := Parse(start)
	if err != nil {
		return 0, fmt.Errorf("%w: start: %v", ErrInvalidDateRange, err)
	}
	e, err := Parse(end)
	if err != nil {
		return 0, fmt.Errorf("%w: end: %v", ErrInvalidDateRange, err)
	}
	if e.Before(s) {
		return 0, fmt.Errorf("%w: %s is before %s", ErrInvalidDateRange, end, start)
	}
	days := int(e.Sub(s).Hours()/24) + 1
	if days >= UnboundedDays {
		return 0, fmt.Errorf("%w: %d days", ErrInvalidDateRange, days)
	}
	return days, nil
}

// DayNumber returns the 1-based itinerary day on which date falls for a tour
// starting at start. Dates before the start give values below 1.
func DayNumber(start, date string) (int, error) {
	s, err := Parse(start)
	if err != nil {
		return 0, err
	}
	d, err := Parse(date)
	if err != nil {
		return 0, err
	}
	return int(math.Round(d.Sub(s).Hours()/24)) + 1, nil
}

// DateOfDay returns the calendar date of the given 1-based day.
func DateOfDay(start string, day int) (string, error) {
	s, err := Parse(start)
	if err != nil {
		return "", err
	}
	return Format(s.AddDate(0, 0, day-1)), nil
}
