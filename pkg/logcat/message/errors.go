package message

import "fmt"

// FieldError reports a mandatory [Message] field that was never set on
// a [Builder] before Build.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field not set: %s", e.Field)
}
