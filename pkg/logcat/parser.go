package logcat

// Parser is the interface for logcat line parsers.
// Implementations include [ThreadtimeParser]; other logcat output
// formats would plug in here.
type Parser interface {
	// Parse parses one line of logcat output.
	// Returns an error if the line is not a record in the parser's
	// format; a malformed line is not fatal, skip it and move on.
	Parse(line string) (Message, error)
}

// ParserFunc is an adapter to allow ordinary functions to be used as
// Parsers.
type ParserFunc func(line string) (Message, error)

// Parse implements the Parser interface.
func (f ParserFunc) Parse(line string) (Message, error) {
	return f(line)
}
