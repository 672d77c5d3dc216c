package coerce

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Float parses a decimal string. An empty string yields 0.
func Float(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// Int parses a base 10 integer. An empty string yields 0.
func Int(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// YesNo reports whether s starts with "Y" after upper-casing, so "Y", "y",
// "Yes" and "YES" are true and everything else, including "", is false.
func YesNo(s string) bool {
	// cases.Caser keeps state and is not safe for concurrent use.
	upper := cases.Upper(language.Und).String(s)
	return strings.HasPrefix(upper, "Y")
}

// DateTime parses a date-time in any of the common serialisations the
// service emits ("2024-01-15T08:30:00", "2024-01-15T08:30:00-05:00",
// "1/15/2024 8:30:00 AM", ...). Values without a zone are read as UTC. An
// empty string yields the zero time.
func DateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}
