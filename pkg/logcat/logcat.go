package logcat

import "github.com/ekeranen/logcat/pkg/logcat/message"

// Message is one parsed logcat record. See [message.Message].
type Message = message.Message

// MessageBuilder assembles a [Message] field by field. See
// [message.Builder]; Build fails with a [*FieldError] if the level,
// tag, or content was never set.
type MessageBuilder = message.Builder

// Level is the severity of a logcat message. See [message.Level].
type Level = message.Level

// Severity levels, ordered Verbose < Debug < Info < Warning < Error <
// Fatal. The order matches the single-letter codes V, D, I, W, E, F.
const (
	Verbose = message.Verbose
	Debug   = message.Debug
	Info    = message.Info
	Warning = message.Warning
	Error   = message.Error
	Fatal   = message.Fatal
)

// FieldError reports a mandatory [Message] field that was never set on
// a [MessageBuilder] before Build.
type FieldError = message.FieldError

// LevelFromShort maps a single-letter logcat code to its Level.
// It reports false for any byte outside V, D, I, W, E, F.
func LevelFromShort(c byte) (Level, bool) {
	return message.LevelFromShort(c)
}
