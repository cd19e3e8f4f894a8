// Package datefmt formats and parses naive date/time values (no timezone
// offset) using a small token pattern grammar: yyyy, MMM, MM, dd, d, hh, mm,
// ss, a. Three named patterns cover the common cases; every operation also
// accepts an arbitrary custom pattern string.
//
// The package is stateless: the pattern table is immutable and all functions
// are safe for concurrent use.
package datefmt

import (
	"fmt"
	"strings"
	"time"
)

// Pattern selects one of the predefined format patterns. The zero value is
// not a valid pattern and is rejected with ErrInvalidArgument.
type Pattern int

const (
	patternUnset Pattern = iota

	// PatternDefault renders like "Apr 19 2017 09:05".
	PatternDefault
	// PatternDateOnly renders like "04-19-2017".
	PatternDateOnly
	// PatternLongDate renders like "04 19 2017 09:05:30 PM".
	PatternLongDate
)

var patternStrings = map[Pattern]string{
	PatternDefault:  "MMM d yyyy hh:mm",
	PatternDateOnly: "MM-dd-yyyy",
	PatternLongDate: "MM dd yyyy hh:mm:ss a",
}

var patternNames = map[Pattern]string{
	PatternDefault:  "DEFAULT",
	PatternDateOnly: "DATEONLY",
	PatternLongDate: "LONGDATE",
}

// String returns the symbolic name of the pattern, or "UNSET" for the zero
// value.
func (p Pattern) String() string {
	if name, ok := patternNames[p]; ok {
		return name
	}
	return "UNSET"
}

// PatternString returns the token pattern associated with p.
func (p Pattern) PatternString() (string, error) {
	s, ok := patternStrings[p]
	if !ok {
		return "", fmt.Errorf("%w: unknown named pattern %d", ErrInvalidArgument, int(p))
	}
	return s, nil
}

// PatternByName resolves a symbolic pattern name, case-insensitively.
func PatternByName(name string) (Pattern, bool) {
	for p, n := range patternNames {
		if strings.EqualFold(name, n) {
			return p, true
		}
	}
	return patternUnset, false
}

// Patterns returns the named patterns in declaration order.
func Patterns() []Pattern {
	return []Pattern{PatternDefault, PatternDateOnly, PatternLongDate}
}

// Format renders t using the default pattern (MMM d yyyy hh:mm).
func Format(t time.Time) (string, error) {
	return FormatPattern(t, PatternDefault)
}

// FormatPattern renders t using a named pattern.
func FormatPattern(t time.Time, p Pattern) (string, error) {
	pattern, err := p.PatternString()
	if err != nil {
		return "", err
	}
	return FormatLayout(t, pattern)
}

// FormatLayout renders t using a custom token pattern. The zero time and the
// empty pattern are rejected with ErrInvalidArgument, as are patterns
// containing unrecognized tokens.
func FormatLayout(t time.Time, pattern string) (string, error) {
	if t.IsZero() {
		return "", fmt.Errorf("%w: zero time value", ErrInvalidArgument)
	}
	if pattern == "" {
		return "", fmt.Errorf("%w: empty pattern", ErrInvalidArgument)
	}
	layout, err := compileLayout(pattern)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

// Parse interprets text using the default pattern (MMM d yyyy hh:mm).
func Parse(text string) (time.Time, error) {
	return ParsePattern(text, PatternDefault)
}

// ParsePattern interprets text using a named pattern.
func ParsePattern(text string, p Pattern) (time.Time, error) {
	pattern, err := p.PatternString()
	if err != nil {
		return time.Time{}, err
	}
	return ParseLayout(text, pattern)
}

// ParseLayout interprets text using a custom token pattern. Parsing is
// strict: the entire text must match the pattern, and out-of-range components
// (month 13, day 32) are rejected. Fields the pattern does not encode default
// to their zero values, so a date-only pattern yields midnight.
// Non-conforming text is reported as *ParseError and propagated unchanged.
func ParseLayout(text, pattern string) (time.Time, error) {
	if text == "" {
		return time.Time{}, fmt.Errorf("%w: empty text", ErrInvalidArgument)
	}
	if pattern == "" {
		return time.Time{}, fmt.Errorf("%w: empty pattern", ErrInvalidArgument)
	}
	layout, err := compileLayout(pattern)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(layout, text)
	if err != nil {
		return time.Time{}, &ParseError{Text: text, Pattern: pattern, Err: err}
	}
	return t, nil
}
