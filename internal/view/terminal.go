package view

import (
	"fmt"
	"io"

	"github.com/osa911/contactus/internal/contact"
	"github.com/osa911/contactus/internal/validation"
)

// ANSI color codes for terminal output
const (
	colorRed   = "\033[97;41m" // White text on red background
	colorGreen = "\033[97;42m" // White text on green background
	colorFg    = "\033[31m"    // Red text
	colorReset = "\033[0m"
)

// Terminal renders the form for a text terminal.
type Terminal struct {
	Color bool
}

// Confirmation writes the banner on its own line.
func (t Terminal) Confirmation(w io.Writer, c contact.Confirmation) error {
	tag := " OK "
	color := colorGreen
	if !c.Success {
		tag = " ERROR "
		color = colorRed
	}
	if t.Color {
		tag = color + tag + colorReset
	}
	_, err := fmt.Fprintf(w, "%s %s\n", tag, c.Message)
	return err
}

// Errors writes one line per invalid field.
func (t Terminal) Errors(w io.Writer, errs validation.Errors) error {
	for _, fe := range errs {
		msg := fe.Message
		if t.Color {
			msg = colorFg + msg + colorReset
		}
		if _, err := fmt.Fprintf(w, "  - %s\n", msg); err != nil {
			return err
		}
	}
	return nil
}

// Prompt returns the input prompt of a field. The current value is shown so
// an empty answer can keep it.
func (t Terminal) Prompt(fi contact.FieldInfo, current string) string {
	label := fi.Label
	if !fi.Required() {
		label += " (optional)"
	}
	if current != "" {
		return fmt.Sprintf("%s [%s]: ", label, current)
	}
	return label + ": "
}
