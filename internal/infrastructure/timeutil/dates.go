package timeutil

import (
	"fmt"
	"time"
)

// DateLayout is the YYYY-MM-DD layout used by the backend for dates.
const DateLayout = "2006-01-02"

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return t, nil
}

// MonthKey formats a year and month as YYYY-MM.
func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// ValidateMonth checks that month is in 1..12 and year is plausible.
func ValidateMonth(year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if year < 2000 || year > 9999 {
		return fmt.Errorf("year must be between 2000 and 9999, got %d", year)
	}
	return nil
}

// YearMonth returns the year and month of a YYYY-MM-DD date.
func YearMonth(date string) (int, int, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), int(t.Month()), nil
}
