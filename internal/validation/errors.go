package validation

import (
	"strings"
)

// Message formats keyed by rule tag. Each format receives the field label as
// argument 1 and the rule parameter as argument 2.
var defaultMessages = map[string]string{
	"required": "%[1]s is required.",
	"min":      "%[1]s must be at least %[2]s characters.",
	"max":      "%[1]s must be at most %[2]s characters.",
	"email":    "%[1]s is not valid.",
}

const fallbackMessage = "%[1]s is not valid."

// FieldError is a failed rule on a single field.
type FieldError struct {
	Field   string `json:"field"`
	Label   string `json:"label"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Message
}

// Errors holds at most one FieldError per field, in field declaration order.
type Errors []*FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// Get returns the message for field, or "" when the field is valid.
func (e Errors) Get(field string) string {
	if fe := e.Lookup(field); fe != nil {
		return fe.Message
	}
	return ""
}

// Lookup returns the FieldError for field, or nil.
func (e Errors) Lookup(field string) *FieldError {
	for _, fe := range e {
		if fe.Field == field {
			return fe
		}
	}
	return nil
}

// Has reports whether field failed validation.
func (e Errors) Has(field string) bool {
	return e.Lookup(field) != nil
}

// Fields returns the names of the invalid fields, in order.
func (e Errors) Fields() []string {
	out := make([]string, 0, len(e))
	for _, fe := range e {
		out = append(out, fe.Field)
	}
	return out
}

// Messages returns the messages keyed by field.
func (e Errors) Messages() map[string]string {
	out := make(map[string]string, len(e))
	for _, fe := range e {
		out[fe.Field] = fe.Message
	}
	return out
}

// With returns a copy of e where field's entry is replaced by fe, or removed
// when fe is nil. The result follows the field order given by order.
func (e Errors) With(field string, fe *FieldError, order []string) Errors {
	byField := make(map[string]*FieldError, len(e)+1)
	for _, cur := range e {
		byField[cur.Field] = cur
	}
	if fe == nil {
		delete(byField, field)
	} else {
		byField[field] = fe
	}

	out := make(Errors, 0, len(byField))
	for _, name := range order {
		if cur, ok := byField[name]; ok {
			out = append(out, cur)
		}
	}
	return out
}
