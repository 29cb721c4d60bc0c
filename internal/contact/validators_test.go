package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa911/contactus/internal/validation"
)

func message(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", "Name is required."},
		{"too short", "A", "Name must be at least 2 characters."},
		{"minimum length", "Al", ""},
		{"full name", "John Doe", ""},
		{"whitespace counts", "  ", ""},
		// Lengths are counted in code points, so one emoji is one character.
		{"single astral character", "\U0001F600", "Name must be at least 2 characters."},
		{"two astral characters", "\U0001F600\U0001F600", ""},
		{"combining mark counts", "e\u0301", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, message(ValidateName(tt.value)))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", "Email is required."},
		{"no at sign", "invalid-email", "Email is not valid."},
		{"no tld", "john@example", "Email is not valid."},
		{"space", "john doe@example.com", "Email is not valid."},
		{"valid", "john.doe@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, message(ValidateEmail(tt.value)))
		})
	}
}

func TestValidateMessage(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", "Message is required."},
		{"too short", "short", "Message must be at least 10 characters."},
		{"nine characters", "123456789", "Message must be at least 10 characters."},
		{"ten characters", "1234567890", ""},
		{"nine astral characters", strings.Repeat("\U0001F600", 9), "Message must be at least 10 characters."},
		{"sentence", "This is a valid message.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, message(ValidateMessage(tt.value)))
		})
	}
}

func TestValidateFieldReturnsFieldError(t *testing.T) {
	err := ValidateField(FieldEmail, "nope")
	require.Error(t, err)

	fe, ok := err.(*validation.FieldError)
	require.True(t, ok, "got %T", err)
	assert.Equal(t, "email", fe.Field)
	assert.Equal(t, "Email", fe.Label)
	assert.Equal(t, "email", fe.Tag)

	assert.NoError(t, ValidateField(FieldSubject, ""), "subject is optional")
	assert.NoError(t, ValidateField(Field("phone"), ""), "unknown fields have no rules")
}

func TestValidateFields(t *testing.T) {
	errs := ValidateFields(Fields{})
	assert.Equal(t, []string{"name", "email", "message"}, errs.Fields())
	assert.Equal(t, "Name is required.", errs.Get("name"))
	assert.Equal(t, "Email is required.", errs.Get("email"))
	assert.Equal(t, "Message is required.", errs.Get("message"))

	errs = ValidateFields(Fields{
		Name:    "John Doe",
		Email:   "john.doe@example.com",
		Message: "This is a valid message.",
	})
	assert.Nil(t, errs)
}

// The per-field validators and the whole-form pass read the same rules, so
// they must agree on every input.
func TestValidatorsAgreeWithFormPass(t *testing.T) {
	values := []string{"", "A", "Al", "invalid-email", "john.doe@example.com", "short", "This is a valid message."}

	for _, fi := range Describe() {
		for _, v := range values {
			fields, ok := Fields{}.With(fi.Field, v)
			require.True(t, ok)

			single := message(ValidateField(fi.Field, v))
			assert.Equal(t, single, ValidateFields(fields).Get(string(fi.Field)), "%s=%q", fi.Field, v)
		}
	}
}
