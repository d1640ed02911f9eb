package message

import "time"

// Message is one parsed logcat record. It is immutable: construct it
// with a [Builder] and read it through the accessor methods.
//
// Level, tag, and content are always present. The timestamp and the
// process/thread IDs are optional; the threadtime parser populates all
// three, a builder used with only the mandatory fields leaves all three
// absent.
type Message struct {
	level   Level
	tag     string
	content string

	dateTime    time.Time
	hasDateTime bool

	pid    int
	hasPID bool

	tid    int
	hasTID bool
}

// Level returns the severity of the message.
func (m Message) Level() Level { return m.level }

// Tag returns the log tag. It may be empty.
func (m Message) Tag() string { return m.tag }

// Content returns the message text, exactly as it appeared after the
// tag separator. It may be empty.
func (m Message) Content() string { return m.content }

// DateTime returns the date and time the message was logged.
// ok is false if no timestamp is available.
func (m Message) DateTime() (dt time.Time, ok bool) {
	return m.dateTime, m.hasDateTime
}

// Date returns the date the message was logged, in the same form as
// [time.Time.Date]. ok is false if no timestamp is available.
func (m Message) Date() (year int, month time.Month, day int, ok bool) {
	if !m.hasDateTime {
		return 0, 0, 0, false
	}
	year, month, day = m.dateTime.Date()
	return year, month, day, true
}

// Clock returns the time of day the message was logged, in the same
// form as [time.Time.Clock]. ok is false if no timestamp is available.
func (m Message) Clock() (hour, min, sec int, ok bool) {
	if !m.hasDateTime {
		return 0, 0, 0, false
	}
	hour, min, sec = m.dateTime.Clock()
	return hour, min, sec, true
}

// ProcessID returns the ID of the process that logged the message.
// ok is false if the process ID is not available.
func (m Message) ProcessID() (pid int, ok bool) { return m.pid, m.hasPID }

// ThreadID returns the ID of the thread that logged the message.
// ok is false if the thread ID is not available.
func (m Message) ThreadID() (tid int, ok bool) { return m.tid, m.hasTID }
