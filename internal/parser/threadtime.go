// Package parser implements decoding of logcat output formats.
package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/ekeranen/logcat/pkg/logcat/message"
)

// Threadtime decodes one line of logcat "threadtime" output:
//
//	mm-dd hh:mm:ss.mmm pid tid L tag: content
//
// Fields are decoded left to right; each stage skips leading whitespace,
// consumes one token, and hands the remainder to the next stage. The
// first failing stage aborts the decode with a *ParseError naming the
// field and the offending token.
//
// now supplies the clock the year is read from (threadtime lines carry
// no year of their own).
func Threadtime(line string, now func() time.Time) (message.Message, error) {
	// Section banners ("--------- beginning of main") are not records.
	if strings.HasPrefix(line, "-") {
		return message.Message{}, &ParseError{Field: "line", Token: line, Err: ErrBannerLine}
	}

	var f fields
	rest, err := f.date(line)
	if err == nil {
		rest, err = f.time(rest)
	}
	if err == nil {
		rest, err = f.parsePID(rest)
	}
	if err == nil {
		rest, err = f.parseTID(rest)
	}
	if err == nil {
		rest, err = f.parseLevel(rest)
	}
	if err == nil {
		rest, err = f.tag(rest)
	}
	if err != nil {
		return message.Message{}, err
	}
	return f.content(rest, now)
}

// fields accumulates decoded values across the stage chain. A fresh
// fields value is used per line, so reusing the package-level entry
// point across lines carries no state over.
type fields struct {
	month, day                        int
	hour, minute, second, millisecond int
	pid, tid                          int
	level                             message.Level
	tagText                           string
}

// nextField skips leading whitespace, then splits at the first
// whitespace character. ok is false if no whitespace boundary follows
// the token.
func nextField(s string) (token, rest string, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return "", "", false
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return s[:i], s[i+size:], true
}

func (f *fields) date(rest string) (string, error) {
	// mm-dd <...>
	monthDay, rest, ok := nextField(rest)
	if !ok {
		return "", &ParseError{Field: "date", Err: ErrMissingDelimiter}
	}

	month, day, found := strings.Cut(monthDay, "-")
	if !found {
		return "", &ParseError{Field: "date", Token: monthDay, Err: ErrMissingDelimiter}
	}
	var err error
	if f.month, err = parseUint(month); err != nil {
		return "", &ParseError{Field: "date", Token: monthDay, Err: err}
	}
	if f.day, err = parseUint(day); err != nil {
		return "", &ParseError{Field: "date", Token: monthDay, Err: err}
	}
	return rest, nil
}

func (f *fields) time(rest string) (string, error) {
	// hh:mm:ss.mmm <...>
	tod, rest, ok := nextField(rest)
	if !ok {
		return "", &ParseError{Field: "time", Err: ErrMissingDelimiter}
	}

	// Split on both ':' and '.', keeping empty groups so "0::0.0"
	// fails on the empty minute instead of shifting fields.
	groups := strings.Split(strings.ReplaceAll(tod, ".", ":"), ":")
	if len(groups) < 4 {
		return "", &ParseError{Field: "time", Token: tod, Err: ErrMissingDelimiter}
	}
	for i, dst := range []*int{&f.hour, &f.minute, &f.second, &f.millisecond} {
		n, err := parseUint(groups[i])
		if err != nil {
			return "", &ParseError{Field: "time", Token: tod, Err: err}
		}
		*dst = n
	}
	return rest, nil
}

func (f *fields) parsePID(rest string) (string, error) {
	pid, rest, ok := nextField(rest)
	if !ok {
		return "", &ParseError{Field: "process id", Err: ErrMissingDelimiter}
	}
	n, err := strconv.ParseInt(pid, 10, 32)
	if err != nil {
		return "", &ParseError{Field: "process id", Token: pid, Err: err}
	}
	f.pid = int(n)
	return rest, nil
}

func (f *fields) parseTID(rest string) (string, error) {
	tid, rest, ok := nextField(rest)
	if !ok {
		return "", &ParseError{Field: "thread id", Err: ErrMissingDelimiter}
	}
	n, err := strconv.ParseInt(tid, 10, 32)
	if err != nil {
		return "", &ParseError{Field: "thread id", Token: tid, Err: err}
	}
	f.tid = int(n)
	return rest, nil
}

func (f *fields) parseLevel(rest string) (string, error) {
	level, rest, ok := nextField(rest)
	if !ok {
		return "", &ParseError{Field: "level", Err: ErrMissingDelimiter}
	}
	if level == "" {
		return "", &ParseError{Field: "level", Token: level, Err: ErrUnknownLevel}
	}
	l, ok := message.LevelFromShort(level[0])
	if !ok {
		return "", &ParseError{Field: "level", Token: level, Err: ErrUnknownLevel}
	}
	f.level = l
	return rest, nil
}

func (f *fields) tag(rest string) (string, error) {
	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)

	tag, rest, ok := strings.Cut(rest, ":")
	if !ok {
		return "", &ParseError{Field: "tag", Token: tag, Err: ErrMissingDelimiter}
	}
	f.tagText = strings.TrimRightFunc(tag, unicode.IsSpace)

	// Advance past the single separator character conventionally
	// following ':'. Whatever that character is, exactly one is
	// consumed; everything after it belongs to the content stage.
	if rest != "" {
		_, size := utf8.DecodeRuneInString(rest)
		rest = rest[size:]
	}
	return rest, nil
}

// content consumes the remainder verbatim, assembles the timestamp, and
// builds the Message.
func (f *fields) content(rest string, now func() time.Time) (message.Message, error) {
	ts, err := f.dateTime(now().Year())
	if err != nil {
		return message.Message{}, err
	}

	return new(message.Builder).
		Level(f.level).
		Tag(f.tagText).
		Content(rest).
		DateTime(ts).
		ProcessID(f.pid).
		ThreadID(f.tid).
		Build()
}

// dateTime composes the decoded date and time fields with the ambient
// year into a local-time timestamp, rejecting calendar-invalid values
// rather than letting time.Date normalize them (Feb 30 must fail, not
// become Mar 2).
func (f *fields) dateTime(year int) (time.Time, error) {
	valid := f.month >= 1 && f.month <= 12 &&
		f.day >= 1 && f.day <= daysIn(year, time.Month(f.month)) &&
		f.hour <= 23 && f.minute <= 59 && f.second <= 59 &&
		f.millisecond <= 999
	if !valid {
		token := fmt.Sprintf("%02d-%02d %02d:%02d:%02d.%03d",
			f.month, f.day, f.hour, f.minute, f.second, f.millisecond)
		return time.Time{}, &ParseError{Field: "timestamp", Token: token, Err: ErrBadTimestamp}
	}
	return time.Date(year, time.Month(f.month), f.day,
		f.hour, f.minute, f.second, f.millisecond*int(time.Millisecond), time.Local), nil
}

// daysIn returns the number of days in the given month of the given
// year. Day 0 of the next month is the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// parseUint parses an unsigned decimal field such as a month or an hour.
func parseUint(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	return int(n), err
}
