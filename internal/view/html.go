// Package view renders the contact form and its confirmation banner as HTML
// or terminal text.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/osa911/contactus/internal/contact"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// renderOrder puts the subject first, the way the form is laid out.
var renderOrder = []contact.Field{
	contact.FieldSubject,
	contact.FieldName,
	contact.FieldEmail,
	contact.FieldMessage,
}

// FieldView is one rendered input.
type FieldView struct {
	ID    string
	Label string
	Input string
	Value string
	Error string
}

// Form is the render model of the contact form.
type Form struct {
	Fields       []FieldView
	Confirmation *contact.Confirmation
}

// NewForm builds the render model from the controller state. conf is shown
// above the fields when not nil.
func NewForm(c *contact.Controller, conf *contact.Confirmation) Form {
	form := Form{
		Fields:       make([]FieldView, 0, len(renderOrder)),
		Confirmation: conf,
	}
	for _, field := range renderOrder {
		fi, ok := contact.Lookup(field)
		if !ok {
			continue
		}
		form.Fields = append(form.Fields, FieldView{
			ID:    string(fi.Field),
			Label: fi.Label,
			Input: fi.Input,
			Value: c.Value(field),
			Error: c.Error(field),
		})
	}
	return form
}

// RenderForm writes the form markup.
func RenderForm(w io.Writer, form Form) error {
	return execute(w, "form", form)
}

// RenderPage writes a complete HTML document holding the form.
func RenderPage(w io.Writer, form Form) error {
	return execute(w, "page", form)
}

// RenderConfirmation writes the confirmation banner.
func RenderConfirmation(w io.Writer, c contact.Confirmation) error {
	return execute(w, "confirmation", c)
}

func execute(w io.Writer, name string, data any) error {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}
