package message

import "time"

// Builder assembles a [Message] field by field. Setters may be called
// in any order and chain:
//
//	msg, err := new(message.Builder).
//	    Level(message.Info).
//	    Tag("init").
//	    Content("boot complete").
//	    Build()
//
// Build fails with a [*FieldError] if the level, tag, or content was
// never set. The zero value is ready to use.
type Builder struct {
	level      Level
	hasLevel   bool
	tag        string
	hasTag     bool
	content    string
	hasContent bool

	msg Message
}

// Level sets the mandatory severity.
func (b *Builder) Level(value Level) *Builder {
	b.level = value
	b.hasLevel = true
	return b
}

// Tag sets the mandatory tag. An empty tag is valid.
func (b *Builder) Tag(value string) *Builder {
	b.tag = value
	b.hasTag = true
	return b
}

// Content sets the mandatory content. Empty content is valid.
func (b *Builder) Content(value string) *Builder {
	b.content = value
	b.hasContent = true
	return b
}

// DateTime sets the optional timestamp.
func (b *Builder) DateTime(value time.Time) *Builder {
	b.msg.dateTime = value
	b.msg.hasDateTime = true
	return b
}

// ProcessID sets the optional process ID.
func (b *Builder) ProcessID(value int) *Builder {
	b.msg.pid = value
	b.msg.hasPID = true
	return b
}

// ThreadID sets the optional thread ID.
func (b *Builder) ThreadID(value int) *Builder {
	b.msg.tid = value
	b.msg.hasTID = true
	return b
}

// Build validates the accumulated fields and returns the Message.
// It fails with a [*FieldError] naming the first mandatory field that
// was never set, checked in the order level, tag, content.
func (b *Builder) Build() (Message, error) {
	if !b.hasLevel {
		return Message{}, &FieldError{Field: "level"}
	}
	if !b.hasTag {
		return Message{}, &FieldError{Field: "tag"}
	}
	if !b.hasContent {
		return Message{}, &FieldError{Field: "content"}
	}

	msg := b.msg
	msg.level = b.level
	msg.tag = b.tag
	msg.content = b.content
	return msg, nil
}
