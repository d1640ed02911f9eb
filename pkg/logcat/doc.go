// Package logcat parses Android logcat output into structured messages.
//
// This package allows you to:
//   - Parse "threadtime"-format logcat lines into Message values
//   - Inspect severity, tag, content, timestamp, and process/thread IDs
//   - Filter messages by severity with the Level threshold predicates
//
// # Basic Usage
//
// To parse a single line:
//
//	msg, err := logcat.Threadtime(line)
//	if err != nil {
//	    log.Printf("parse error: %v", err)
//	    return
//	}
//	fmt.Printf("%s/%s: %s\n", msg.Level().Short(), msg.Tag(), msg.Content())
//
// To walk a whole capture, split it into lines first; each line parses
// independently:
//
//	for _, line := range strings.Split(capture, "\n") {
//	    msg, err := logcat.Threadtime(line)
//	    if err != nil {
//	        continue // banner or malformed line
//	    }
//	    if msg.Level().IsWarningOrHigher() {
//	        // ...
//	    }
//	}
//
// # Timestamps
//
// Logcat lines carry no year, so the parser takes the year from the
// current local date. Use [ThreadtimeParser] with its Now field to pin
// the clock in tests:
//
//	p := logcat.ThreadtimeParser{Now: func() time.Time {
//	    return time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
//	}}
//	msg, err := p.Parse(line)
//
// # Errors
//
// Malformed lines fail with a [ParseError] naming the field that broke
// and the offending token. Section banners ("--------- beginning of
// main") fail with a ParseError wrapping [ErrBannerLine]. Both are
// ordinary recoverable errors; skip the line and move on.
package logcat
