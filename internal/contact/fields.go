package contact

import (
	"github.com/osa911/contactus/internal/validation"
)

// Fields holds the values of one contact form session.
//
// The struct tags are the form's only rule set: `form` names the field,
// `label` is shown in messages, `input` is the rendered input kind and
// `validate` holds the validator rules.
type Fields struct {
	Name    string `form:"name" label:"Name" input:"text" validate:"required,min=2" json:"name" yaml:"name"`
	Email   string `form:"email" label:"Email" input:"email" validate:"required,email" json:"email" yaml:"email"`
	Subject string `form:"subject" label:"Subject" input:"text" json:"subject" yaml:"subject"`
	Message string `form:"message" label:"Message" input:"textarea" validate:"required,min=10" json:"message" yaml:"message"`
}

// Field names one input of the contact form.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// FieldInfo describes how a field is labelled, rendered and validated.
type FieldInfo struct {
	Field Field
	Label string
	Input string
	Rule  validation.Rule
}

// Required reports whether the field has a required rule.
func (fi FieldInfo) Required() bool {
	for _, r := range splitRules(fi.Rule.Tag) {
		if r == "required" {
			return true
		}
	}
	return false
}

var (
	rules      = validation.RulesOf(Fields{})
	fieldOrder = validation.FieldNames(rules)
)

// Describe returns every field of the form in declaration order.
func Describe() []FieldInfo {
	out := make([]FieldInfo, 0, len(rules))
	for _, r := range rules {
		input := r.StructTag.Get("input")
		if input == "" {
			input = "text"
		}
		out = append(out, FieldInfo{
			Field: Field(r.Field),
			Label: r.Label,
			Input: input,
			Rule:  r,
		})
	}
	return out
}

// Lookup returns the description of field.
func Lookup(field Field) (FieldInfo, bool) {
	for _, fi := range Describe() {
		if fi.Field == field {
			return fi, true
		}
	}
	return FieldInfo{}, false
}

// Get returns the value of field, or "" for an unknown field.
func (f Fields) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldSubject:
		return f.Subject
	case FieldMessage:
		return f.Message
	default:
		return ""
	}
}

// With returns a copy of f with field set to value. Unknown fields are
// ignored and ok is false.
func (f Fields) With(field Field, value string) (out Fields, ok bool) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldSubject:
		f.Subject = value
	case FieldMessage:
		f.Message = value
	default:
		return f, false
	}
	return f, true
}

// IsZero reports whether every field is empty.
func (f Fields) IsZero() bool {
	return f == Fields{}
}
