package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	infos := Describe()
	require.Len(t, infos, 4)

	want := []struct {
		field    Field
		label    string
		input    string
		required bool
	}{
		{FieldName, "Name", "text", true},
		{FieldEmail, "Email", "email", true},
		{FieldSubject, "Subject", "text", false},
		{FieldMessage, "Message", "textarea", true},
	}
	for i, w := range want {
		assert.Equal(t, w.field, infos[i].Field)
		assert.Equal(t, w.label, infos[i].Label)
		assert.Equal(t, w.input, infos[i].Input)
		assert.Equal(t, w.required, infos[i].Required(), "%s required", w.field)
	}
}

func TestLookup(t *testing.T) {
	fi, ok := Lookup(FieldMessage)
	require.True(t, ok)
	assert.Equal(t, "Message", fi.Label)

	_, ok = Lookup(Field("phone"))
	assert.False(t, ok)
}

func TestFieldsGetWith(t *testing.T) {
	var f Fields
	assert.True(t, f.IsZero())

	for _, fi := range Describe() {
		next, ok := f.With(fi.Field, "value of "+string(fi.Field))
		require.True(t, ok)
		f = next
	}

	assert.Equal(t, Fields{
		Name:    "value of name",
		Email:   "value of email",
		Subject: "value of subject",
		Message: "value of message",
	}, f)
	assert.Equal(t, "value of subject", f.Get(FieldSubject))
	assert.Equal(t, "", f.Get(Field("phone")))

	same, ok := f.With(Field("phone"), "555")
	assert.False(t, ok)
	assert.Equal(t, f, same)
	assert.False(t, f.IsZero())
}
