// Package validation applies declarative struct-tag rules to form values and
// turns failures into display messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// emailRegex accepts the loose local@domain.tld shape. Whitespace covers the
// vertical tab, Unicode separators and the BOM as well as ASCII spacing.
var emailRegex = regexp.MustCompile(`^[^@\s\v\p{Z}\x{FEFF}]+@[^@\s\v\p{Z}\x{FEFF}]+\.[^@\s\v\p{Z}\x{FEFF}]+$`)

// Validator applies struct-tag rules to form values.
type Validator struct {
	validate *validator.Validate

	mu       sync.RWMutex
	messages map[string]string
}

// New creates a Validator with the custom contact rules registered.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)
	RegisterValidators(validate)

	messages := make(map[string]string, len(defaultMessages))
	for tag, format := range defaultMessages {
		messages[tag] = format
	}

	return &Validator{
		validate: validate,
		messages: messages,
	}
}

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	// Overrides the builtin email rule, which is far stricter than the form's.
	if err := v.RegisterValidation("email", validateEmail); err != nil {
		panic(fmt.Sprintf("validation: register email: %v", err))
	}
}

// validateEmail checks if the email has a local@domain.tld shape
func validateEmail(fl validator.FieldLevel) bool {
	return IsEmail(fl.Field().String())
}

// IsEmail reports whether s has the local@domain.tld shape accepted by the
// email rule.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// Struct runs every rule declared on v's fields. It returns nil when all
// fields are valid, Errors in field declaration order otherwise.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("validation: cannot validate %T: %w", s, err)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation: %w", err)
	}

	rules := rulesByField(reflect.TypeOf(s))
	out := make(Errors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		label := fe.StructField()
		if rule, ok := rules[fe.Field()]; ok {
			label = rule.Label
		}
		out = append(out, v.newFieldError(fe.Field(), label, fe.Tag(), fe.Param()))
	}
	return out
}

// Field applies a single rule to value. It returns nil when the value passes.
func (v *Validator) Field(rule Rule, value string) *FieldError {
	if rule.Tag == "" {
		return nil
	}

	err := v.validate.Var(value, rule.Tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return v.newFieldError(rule.Field, rule.Label, fieldErrs[0].Tag(), fieldErrs[0].Param())
	}
	// Only a malformed rule tag lands here.
	return v.newFieldError(rule.Field, rule.Label, "", "")
}

// RegisterMessage sets the message format used when the rule tag fails.
// The format receives the field label and the rule parameter, in that order.
func (v *Validator) RegisterMessage(tag, format string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.messages[tag] = format
}

func (v *Validator) newFieldError(field, label, tag, param string) *FieldError {
	v.mu.RLock()
	format, ok := v.messages[tag]
	v.mu.RUnlock()
	if !ok {
		format = fallbackMessage
	}

	return &FieldError{
		Field:   field,
		Label:   label,
		Tag:     tag,
		Param:   param,
		Message: fmt.Sprintf(format, label, param),
	}
}

// fieldName reports the form key of a struct field. It is the name carried by
// validator.FieldError.Field.
func fieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return strings.ToLower(fld.Name)
	}
	return name
}
