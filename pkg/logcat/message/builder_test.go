package message_test

import (
	"testing"
	"time"

	"github.com/ekeranen/logcat/pkg/logcat/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Mandatory(t *testing.T) {
	msg, err := new(message.Builder).
		Level(message.Verbose).
		Tag("tag").
		Content("content").
		Build()
	require.NoError(t, err)

	assert.Equal(t, message.Verbose, msg.Level())
	assert.Equal(t, "tag", msg.Tag())
	assert.Equal(t, "content", msg.Content())

	// The optional fields are all absent.
	_, ok := msg.DateTime()
	assert.False(t, ok)
	_, _, _, ok = msg.Date()
	assert.False(t, ok)
	_, _, _, ok = msg.Clock()
	assert.False(t, ok)
	_, ok = msg.ProcessID()
	assert.False(t, ok)
	_, ok = msg.ThreadID()
	assert.False(t, ok)
}

func TestBuilder_Optional(t *testing.T) {
	dt := time.Date(2017, time.August, 1, 7, 30, 0, 0, time.Local)

	msg, err := new(message.Builder).
		Level(message.Verbose).
		Tag("tag").
		Content("content").
		DateTime(dt).
		ProcessID(1).
		ThreadID(2).
		Build()
	require.NoError(t, err)

	assert.Equal(t, message.Verbose, msg.Level())
	assert.Equal(t, "tag", msg.Tag())
	assert.Equal(t, "content", msg.Content())

	got, ok := msg.DateTime()
	require.True(t, ok)
	assert.True(t, got.Equal(dt))

	year, month, day, ok := msg.Date()
	require.True(t, ok)
	assert.Equal(t, 2017, year)
	assert.Equal(t, time.August, month)
	assert.Equal(t, 1, day)

	hour, min, sec, ok := msg.Clock()
	require.True(t, ok)
	assert.Equal(t, 7, hour)
	assert.Equal(t, 30, min)
	assert.Equal(t, 0, sec)

	pid, ok := msg.ProcessID()
	require.True(t, ok)
	assert.Equal(t, 1, pid)

	tid, ok := msg.ThreadID()
	require.True(t, ok)
	assert.Equal(t, 2, tid)
}

func TestBuilder_EmptyTagAndContent(t *testing.T) {
	// Empty strings are valid values, distinct from never setting
	// the field.
	msg, err := new(message.Builder).
		Level(message.Info).
		Tag("").
		Content("").
		Build()
	require.NoError(t, err)
	assert.Empty(t, msg.Tag())
	assert.Empty(t, msg.Content())
}

func TestBuilder_MissingMandatory(t *testing.T) {
	tests := []struct {
		name    string
		builder *message.Builder
		field   string
	}{
		{
			name:    "nothing set",
			builder: new(message.Builder),
			field:   "level",
		},
		{
			name:    "only level",
			builder: new(message.Builder).Level(message.Debug),
			field:   "tag",
		},
		{
			name:    "level and tag",
			builder: new(message.Builder).Level(message.Debug).Tag("tag"),
			field:   "content",
		},
		{
			name:    "tag and content",
			builder: new(message.Builder).Tag("tag").Content("content"),
			field:   "level",
		},
		{
			name: "optionals only",
			builder: new(message.Builder).
				DateTime(time.Now()).ProcessID(1).ThreadID(2),
			field: "level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			require.Error(t, err)

			var ferr *message.FieldError
			require.ErrorAs(t, err, &ferr)
			assert.Equal(t, tt.field, ferr.Field)
			assert.Equal(t, "field not set: "+tt.field, err.Error())
		})
	}
}
