package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osa911/contactus/internal/config"
	"github.com/osa911/contactus/internal/contact"
	"github.com/osa911/contactus/internal/version"
	"github.com/osa911/contactus/internal/view"
)

// fieldFlags binds one flag per form field.
type fieldFlags map[contact.Field]*string

func addFieldFlags(cmd *cobra.Command) fieldFlags {
	flags := make(fieldFlags)
	for _, fi := range contact.Describe() {
		v := new(string)
		cmd.Flags().StringVar(v, string(fi.Field), "", fi.Label+" field value")
		flags[fi.Field] = v
	}
	return flags
}

// apply sends every flag value through the field's change handler.
func (f fieldFlags) apply(ctrl *contact.Controller) {
	for _, fi := range contact.Describe() {
		ctrl.OnChange(fi.Field)(*f[fi.Field])
	}
}

func newSubmitCmd(a *app) *cobra.Command {
	var flags fieldFlags

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit the form once with values given as flags",
		Long: `Submit fills the form from flags and submits it once. A valid submission is
written to stdout; otherwise the field errors are shown and the command fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, writeErr := a.newController(cmd.OutOrStdout())
			flags.apply(ctrl)

			err := ctrl.Submit()
			if werr := writeErr(); werr != nil {
				return werr
			}

			ui := cmd.ErrOrStderr()
			if terr := a.term.Confirmation(ui, contact.Confirm(err, a.cfg.SuccessMessage, a.cfg.FailureMessage)); terr != nil {
				return terr
			}
			if err != nil {
				if terr := a.term.Errors(ui, ctrl.Errors()); terr != nil {
					return terr
				}
				return fmt.Errorf("submission rejected: %w", err)
			}
			return nil
		},
	}
	flags = addFieldFlags(cmd)
	return cmd
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		flags  fieldFlags
		submit bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the HTML page of the form",
		Long: `Render fills the form from flags and prints it as an HTML page. With --submit
the form is submitted first, so the page shows the confirmation banner and
either the field errors or the cleared form.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := contact.NewController(nil, contact.WithLogger(a.logger))
			flags.apply(ctrl)

			var conf *contact.Confirmation
			if submit {
				c := contact.Confirm(ctrl.Submit(), a.cfg.SuccessMessage, a.cfg.FailureMessage)
				conf = &c
			}
			return view.RenderPage(cmd.OutOrStdout(), view.NewForm(ctrl, conf))
		},
	}
	flags = addFieldFlags(cmd)
	cmd.Flags().BoolVar(&submit, "submit", false, "Submit the form before rendering")
	return cmd
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Version prints the build information in the configured output format
(--output or CONTACTUS_OUTPUT). The text format prints a single line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.OutputFormat == config.OutputText {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "contactus %s\n", version.Info())
				return err
			}
			return writeValue(cmd.OutOrStdout(), a.cfg.OutputFormat, version.GetBuildInfo())
		},
	}
}
