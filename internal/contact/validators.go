package contact

import (
	"strings"

	"github.com/osa911/contactus/internal/validation"
)

var validate = validation.New()

// ValidateName checks the name field.
func ValidateName(name string) error {
	return ValidateField(FieldName, name)
}

// ValidateEmail checks the email field.
func ValidateEmail(email string) error {
	return ValidateField(FieldEmail, email)
}

// ValidateMessage checks the message field.
func ValidateMessage(message string) error {
	return ValidateField(FieldMessage, message)
}

// ValidateField checks a single value against the rules of field. It returns
// nil when the value is valid or the field has no rules, and a
// *validation.FieldError otherwise.
func ValidateField(field Field, value string) error {
	fi, ok := Lookup(field)
	if !ok {
		return nil
	}
	if fe := validate.Field(fi.Rule, value); fe != nil {
		return fe
	}
	return nil
}

// ValidateFields checks every field. It returns nil when the form is valid,
// validation.Errors otherwise.
func ValidateFields(f Fields) validation.Errors {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validation.Errors); ok {
		return errs
	}
	// Fields is always a struct, so the engine cannot reject it.
	panic(err)
}

func splitRules(tag string) []string {
	if tag == "" {
		return nil
	}
	parts := strings.Split(tag, ",")
	for i, p := range parts {
		name, _, _ := strings.Cut(p, "=")
		parts[i] = name
	}
	return parts
}
