package args

import (
	"errors"
	"fmt"
)

// ErrUsage is returned when no URL was supplied. Callers print Usage and stop.
var ErrUsage = errors.New("no URL supplied")

type UnknownFlagError struct {
	Flag string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("Unknown option: %s", e.Flag)
}

// HeaderSyntaxError is returned for a -H value without a colon
type HeaderSyntaxError struct {
	Raw string
}

func (e *HeaderSyntaxError) Error() string {
	return fmt.Sprintf("Invalid header format: %q (expected \"Name: Value\").", e.Raw)
}

// InvalidHeaderError is returned when a header name or value contains
// characters HTTP does not allow.
type InvalidHeaderError struct {
	Name  string
	Value string
}

func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("Invalid header: %q: %q.", e.Name, e.Value)
}
