package datefmt

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks caller programming errors: a required argument was
// absent, empty, or an unknown pattern was supplied. Match with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ParseError reports text that did not conform to the resolved pattern.
type ParseError struct {
	Text    string
	Pattern string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q with pattern %q: %v", e.Text, e.Pattern, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// AsParseError attempts to unwrap an error into a ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var pErr *ParseError
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}
