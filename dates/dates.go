// Package dates parses and renders day-first display dates (DD/MM/YYYY)
// while keeping ISO (YYYY-MM-DD) as the canonical stored form.
package dates

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrMalformedDate is returned when a display value cannot be read as a
// date. Callers should treat it as "keep the previous value" rather than a
// hard failure.
var ErrMalformedDate = errors.New("dates: malformed date")

const (
	// DisplayLayout is the day-first form shown in and accepted from forms.
	DisplayLayout = "02/01/2006"
	// ISOLayout is the canonical stored form.
	ISOLayout = "2006-01-02"
)

var (
	nonDigits = regexp.MustCompile(`\D`)
	// displayPattern performs a shallow range check only: day 01-31 and
	// month 01-12, without days-in-month or leap-year awareness. 31/02/2025
	// passes. This intentionally matches the long-standing form behaviour;
	// tightening it is a product decision, not a cleanup.
	displayPattern = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[0-2])/\d{4}$`)
)

// Parse reads a display date, tolerating any separator between the digit
// groups ("05/03/2025", "05-03-2025", "05 03 2025"). At least eight digits
// (DDMMYYYY) are required. Out-of-range day/month combinations normalise
// forward the way the reference form did (31/02 becomes 3 March).
func Parse(display string) (time.Time, error) {
	digits := nonDigits.ReplaceAllString(display, "")
	if len(digits) < 8 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, display)
	}
	day, err := strconv.Atoi(digits[0:2])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, display)
	}
	month, err := strconv.Atoi(digits[2:4])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, display)
	}
	year, err := strconv.Atoi(digits[4:8])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, display)
	}
	if day == 0 || month == 0 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, display)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// Format renders a zero-padded DD/MM/YYYY display date.
func Format(t time.Time) string {
	return t.Format(DisplayLayout)
}

// ValidateFormat reports whether the value is a well-formed display date.
// The check is range-based only; see displayPattern.
func ValidateFormat(value string) bool {
	return displayPattern.MatchString(value)
}

// FormatISO renders the canonical YYYY-MM-DD form.
func FormatISO(t time.Time) string {
	return t.Format(ISOLayout)
}

// ParseISO reads the canonical stored form.
func ParseISO(value string) (time.Time, error) {
	t, err := time.Parse(ISOLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, value)
	}
	return t, nil
}
