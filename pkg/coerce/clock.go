package coerce

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidClock is returned for time-of-day strings that are not HH:MM[:SS].
var ErrInvalidClock = errors.New("invalid time of day")

// Clock is a time of day with second precision and no date component.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

// ParseClock parses "HH:MM" or "HH:MM:SS". Seconds default to 0 when
// omitted, components after the seconds are ignored and an empty string
// yields midnight.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Clock{}, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	if len(parts) > 3 {
		parts = parts[:3]
	}

	var fields [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Clock{}, fmt.Errorf("%w: %q: %w", ErrInvalidClock, s, err)
		}
		fields[i] = n
	}

	c := Clock{Hour: fields[0], Minute: fields[1], Second: fields[2]}
	if !c.valid() {
		return Clock{}, fmt.Errorf("%w: %q out of range", ErrInvalidClock, s)
	}
	return c, nil
}

func (c Clock) valid() bool {
	return c.Hour >= 0 && c.Hour < 24 &&
		c.Minute >= 0 && c.Minute < 60 &&
		c.Second >= 0 && c.Second < 60
}

// String formats c as HH:MM:SS.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// IsZero reports whether c is midnight.
func (c Clock) IsZero() bool {
	return c == Clock{}
}

// SinceMidnight returns the offset of c from the start of the day.
func (c Clock) SinceMidnight() time.Duration {
	return time.Duration(c.Hour)*time.Hour +
		time.Duration(c.Minute)*time.Minute +
		time.Duration(c.Second)*time.Second
}

// On returns the instant at time c on the calendar day of date, in date's
// location.
func (c Clock) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, c.Second, 0, date.Location())
}

// Before reports whether c is earlier in the day than other.
func (c Clock) Before(other Clock) bool {
	return c.SinceMidnight() < other.SinceMidnight()
}

// MarshalText implements encoding.TextMarshaler.
func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Clock) UnmarshalText(text []byte) error {
	parsed, err := ParseClock(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
