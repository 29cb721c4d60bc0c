package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	errs := Errors{
		{Field: "name", Message: "Name is required."},
		{Field: "message", Message: "Message is required."},
	}

	assert.True(t, errs.Has("name"))
	assert.False(t, errs.Has("email"))
	assert.Equal(t, "", errs.Get("email"))
	assert.Equal(t, "name: Name is required.; message: Message is required.", errs.Error())
	assert.Equal(t, map[string]string{
		"name":    "Name is required.",
		"message": "Message is required.",
	}, errs.Messages())
}

func TestErrorsWith(t *testing.T) {
	order := []string{"name", "email", "message"}
	errs := Errors{
		{Field: "name", Message: "Name is required."},
		{Field: "message", Message: "Message is required."},
	}

	added := errs.With("email", &FieldError{Field: "email", Message: "Email is not valid."}, order)
	assert.Equal(t, []string{"name", "email", "message"}, added.Fields())
	assert.Len(t, errs, 2, "receiver is not modified")

	removed := added.With("name", nil, order)
	assert.Equal(t, []string{"email", "message"}, removed.Fields())

	replaced := removed.With("message", &FieldError{Field: "message", Message: "Message must be at least 10 characters."}, order)
	assert.Equal(t, "Message must be at least 10 characters.", replaced.Get("message"))

	assert.Empty(t, Errors(nil).With("name", nil, order))
}
