package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa911/contactus/internal/contact"
	"github.com/osa911/contactus/internal/validation"
)

func TestTerminalConfirmation(t *testing.T) {
	var buf bytes.Buffer
	term := Terminal{}

	require.NoError(t, term.Confirmation(&buf, contact.Confirmation{Success: true, Message: "Sent."}))
	require.NoError(t, term.Confirmation(&buf, contact.Confirmation{Success: false, Message: "Fix it."}))
	assert.Equal(t, " OK  Sent.\n ERROR  Fix it.\n", buf.String())
}

func TestTerminalConfirmationColor(t *testing.T) {
	var buf bytes.Buffer
	term := Terminal{Color: true}

	require.NoError(t, term.Confirmation(&buf, contact.Confirmation{Success: true, Message: "Sent."}))
	assert.Equal(t, colorGreen+" OK "+colorReset+" Sent.\n", buf.String())
}

func TestTerminalErrors(t *testing.T) {
	var buf bytes.Buffer
	errs := validation.Errors{
		{Field: "name", Message: "Name is required."},
		{Field: "email", Message: "Email is not valid."},
	}

	require.NoError(t, Terminal{}.Errors(&buf, errs))
	assert.Equal(t, "  - Name is required.\n  - Email is not valid.\n", buf.String())
}

func TestTerminalPrompt(t *testing.T) {
	name, _ := contact.Lookup(contact.FieldName)
	subject, _ := contact.Lookup(contact.FieldSubject)
	term := Terminal{}

	assert.Equal(t, "Name: ", term.Prompt(name, ""))
	assert.Equal(t, "Name [A]: ", term.Prompt(name, "A"))
	assert.Equal(t, "Subject (optional): ", term.Prompt(subject, ""))
}
