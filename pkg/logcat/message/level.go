package message

// Level is the severity of a logcat message.
//
// Levels are totally ordered: Verbose < Debug < Info < Warning < Error
// < Fatal, matching the single-letter codes V, D, I, W, E, F that
// logcat prints.
type Level int

const (
	Verbose Level = iota
	Debug
	Info
	Warning
	Error
	Fatal
)

// IsDebugOrHigher reports whether l is Debug, Info, Warning, Error, or Fatal.
func (l Level) IsDebugOrHigher() bool { return l >= Debug }

// IsInfoOrHigher reports whether l is Info, Warning, Error, or Fatal.
func (l Level) IsInfoOrHigher() bool { return l >= Info }

// IsWarningOrHigher reports whether l is Warning, Error, or Fatal.
func (l Level) IsWarningOrHigher() bool { return l >= Warning }

// IsErrorOrHigher reports whether l is Error or Fatal.
func (l Level) IsErrorOrHigher() bool { return l >= Error }

// Short returns the single-letter code for l, as used in logcat output.
//
//	message.Verbose.Short() // "V"
//	message.Fatal.Short()   // "F"
func (l Level) Short() string {
	switch l {
	case Verbose:
		return "V"
	case Debug:
		return "D"
	case Info:
		return "I"
	case Warning:
		return "W"
	case Error:
		return "E"
	case Fatal:
		return "F"
	default:
		return "?"
	}
}

// String returns the full name of the level.
func (l Level) String() string {
	switch l {
	case Verbose:
		return "Verbose"
	case Debug:
		return "Debug"
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	case Fatal:
		return "Fatal"
	default:
		return "Unknown"
	}
}

// LevelFromShort maps a single-letter logcat code to its Level.
// It reports false for any byte outside V, D, I, W, E, F.
func LevelFromShort(c byte) (Level, bool) {
	switch c {
	case 'V':
		return Verbose, true
	case 'D':
		return Debug, true
	case 'I':
		return Info, true
	case 'W':
		return Warning, true
	case 'E':
		return Error, true
	case 'F':
		return Fatal, true
	default:
		return Verbose, false
	}
}
