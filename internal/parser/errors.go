package parser

import (
	"errors"
	"fmt"
)

// Sentinel causes carried inside a [ParseError]. Match them with
// errors.Is to distinguish failure kinds without inspecting strings.
var (
	// ErrBannerLine marks lines starting with '-', such as
	// "--------- beginning of main". Banners are not data records.
	ErrBannerLine = errors.New("banner line, not a record")

	// ErrMissingDelimiter marks a field whose expected delimiter
	// (whitespace boundary, '-', ':', or '.') was not found.
	ErrMissingDelimiter = errors.New("missing delimiter")

	// ErrUnknownLevel marks a level token that does not start with
	// one of V, D, I, W, E, F.
	ErrUnknownLevel = errors.New("unknown level code")

	// ErrBadTimestamp marks numerically well-formed date/time fields
	// that do not form a valid calendar timestamp.
	ErrBadTimestamp = errors.New("invalid timestamp")
)

// ParseError reports a threadtime decode failure. Field names the stage
// that failed (line, date, time, process id, thread id, level, tag, or
// timestamp) and Token holds the offending piece of input, when there
// is one to show.
type ParseError struct {
	Field string
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Token, e.Err)
}

// Unwrap returns the underlying cause of the error.
// This enables errors.Is() and errors.As() to work with ParseError.
func (e *ParseError) Unwrap() error { return e.Err }
