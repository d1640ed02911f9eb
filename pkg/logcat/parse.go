package logcat

import (
	"time"

	"github.com/ekeranen/logcat/internal/parser"
)

// Threadtime parses a single line of logcat "threadtime" output:
//
//	mm-dd hh:mm:ss.mmm pid tid L tag: content
//
// The year of the timestamp is taken from the current local date; use a
// [ThreadtimeParser] to supply a fixed clock instead.
//
// Return values:
//   - (Message, nil): successfully parsed record
//   - (Message{}, error): banner or malformed line; the error is a
//     [ParseError] naming the field that failed
//
// Example:
//
//	line := "12-31 22:59:41.271 1 197 I init: Uptime: 00002.61"
//	msg, err := logcat.Threadtime(line)
//	if err != nil {
//	    log.Printf("parse error: %v", err)
//	    return
//	}
//	fmt.Println(msg.Tag())
func Threadtime(line string) (Message, error) {
	return parser.Threadtime(line, time.Now)
}

// ThreadtimeParser parses threadtime lines with a configurable clock.
// It implements [Parser]. The zero value reads the year from time.Now,
// exactly like [Threadtime].
//
// Each call decodes one line independently; the parser holds no state
// between calls and is safe for concurrent use.
type ThreadtimeParser struct {
	// Now supplies the current time. Only the year is used, since
	// threadtime lines do not carry one. Nil means time.Now.
	Now func() time.Time
}

// Parse implements the [Parser] interface.
func (p ThreadtimeParser) Parse(line string) (Message, error) {
	now := p.Now
	if now == nil {
		now = time.Now
	}
	return parser.Threadtime(line, now)
}
