package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osa911/contactus/internal/contact"
	"github.com/osa911/contactus/internal/logging"
	"github.com/osa911/contactus/internal/validation"
)

var errInputClosed = errors.New("input closed before the form was submitted")

// clearAnswer is the interactive answer that empties a field.
const clearAnswer = "-"

// newController wires a controller whose submissions are written to out.
// The returned func reports the first write failure.
func (a *app) newController(out io.Writer) (*contact.Controller, func() error) {
	var (
		ctrl     *contact.Controller
		writeErr error
	)
	ctrl = contact.NewController(func(fields contact.Fields) {
		if err := writeSubmission(out, a.cfg.OutputFormat, newSubmission(ctrl.ID(), fields)); err != nil && writeErr == nil {
			writeErr = logging.WrapError(err, "failed to write submission")
		}
	}, contact.WithLogger(a.logger))
	return ctrl, func() error { return writeErr }
}

// runSession prompts for every field, submits, and prompts again for the
// fields that failed until a submission is accepted.
func (a *app) runSession(cmd *cobra.Command) error {
	ui := cmd.ErrOrStderr()
	reader := bufio.NewReader(cmd.InOrStdin())

	ctrl, writeErr := a.newController(cmd.OutOrStdout())
	a.logger.Debug("[%s] session started", ctrl.ID())

	pending := contact.Describe()
	for {
		for _, fi := range pending {
			fmt.Fprint(ui, a.term.Prompt(fi, ctrl.Value(fi.Field)))

			line, err := reader.ReadString('\n')
			if err != nil && (!errors.Is(err, io.EOF) || line == "") {
				fmt.Fprintln(ui)
				if errors.Is(err, io.EOF) {
					return errInputClosed
				}
				return logging.WrapError(err, "failed to read input")
			}

			// An empty answer keeps the current value.
			switch value := strings.TrimRight(line, "\r\n"); value {
			case "":
			case clearAnswer:
				ctrl.Set(fi.Field, "")
			default:
				ctrl.Set(fi.Field, value)
			}
		}

		err := ctrl.Submit()
		if werr := writeErr(); werr != nil {
			return werr
		}
		if terr := a.term.Confirmation(ui, contact.Confirm(err, a.cfg.SuccessMessage, a.cfg.FailureMessage)); terr != nil {
			return terr
		}
		if err == nil {
			return nil
		}

		var errs validation.Errors
		if !errors.As(err, &errs) {
			return err
		}
		if terr := a.term.Errors(ui, errs); terr != nil {
			return terr
		}
		pending = invalidFields(errs)
	}
}

func invalidFields(errs validation.Errors) []contact.FieldInfo {
	var out []contact.FieldInfo
	for _, fi := range contact.Describe() {
		if errs.Has(string(fi.Field)) {
			out = append(out, fi)
		}
	}
	return out
}
