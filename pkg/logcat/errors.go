package logcat

import "github.com/ekeranen/logcat/internal/parser"

// ParseError reports a threadtime decode failure. Field names the
// stage that failed (line, date, time, process id, thread id, level,
// tag, or timestamp) and Token holds the offending piece of input.
// Unwrap exposes the cause for errors.Is and errors.As.
type ParseError = parser.ParseError

// Sentinel causes carried inside a [ParseError]. Match them with
// errors.Is to distinguish failure kinds without inspecting strings.
var (
	// ErrBannerLine marks lines starting with '-', such as
	// "--------- beginning of main". Banners are not data records.
	ErrBannerLine = parser.ErrBannerLine

	// ErrMissingDelimiter marks a field whose expected delimiter
	// (whitespace boundary, '-', ':', or '.') was not found.
	ErrMissingDelimiter = parser.ErrMissingDelimiter

	// ErrUnknownLevel marks a level token that does not start with
	// one of V, D, I, W, E, F.
	ErrUnknownLevel = parser.ErrUnknownLevel

	// ErrBadTimestamp marks numerically well-formed date/time fields
	// that do not form a valid calendar timestamp.
	ErrBadTimestamp = parser.ErrBadTimestamp
)
