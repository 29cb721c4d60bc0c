package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/osa911/contactus/internal/config"
	"github.com/osa911/contactus/internal/logging"
	"github.com/osa911/contactus/internal/telemetry"
	"github.com/osa911/contactus/internal/version"
	"github.com/osa911/contactus/internal/view"
)

// app carries what every command needs once the config is loaded.
type app struct {
	cfg      *config.Config
	logger   *logging.Logger
	term     view.Terminal
	shutdown telemetry.ShutdownFunc

	envFile string
	output  string
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "contactus",
		Short: "Contact Us - fill in and submit the contact form",
		Long: `Contact Us runs the contact form in the terminal. Each field is prompted in
turn; on submit the form is validated and, when valid, the submission is
written to stdout and the form is cleared.

In the interactive session an empty answer keeps the current value of the
field and "-" clears it.

Example:
  contactus                                   # Interactive session
  contactus submit --name "Jane" --email jane@example.com --message "Hello there!"
  contactus render --submit                   # HTML of the form after an empty submit`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSession(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "Load settings from this .env file")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "Submission output format: json, yaml or text")

	rootCmd.AddCommand(newSubmitCmd(a))
	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	var envFiles []string
	if a.envFile != "" {
		envFiles = append(envFiles, a.envFile)
	}

	cfg, err := config.Load(envFiles...)
	if err != nil {
		return logging.WrapError(err, "error loading config")
	}
	if a.output != "" {
		cfg.OutputFormat = a.output
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	logConfig := cfg.Logging()
	logConfig.Output = cmd.ErrOrStderr()
	logConfig.Color = isTerminal(cmd.ErrOrStderr())
	logger, err := logging.NewLogger(logConfig)
	if err != nil {
		return logging.WrapError(err, "failed to initialize logger")
	}
	a.logger = logger
	a.term = view.Terminal{Color: isTerminal(cmd.ErrOrStderr())}

	shutdown, err := telemetry.Setup(cmd.Context(), telemetry.Config{
		Endpoint:    cfg.OTLPEndpoint,
		ServiceName: cfg.ServiceName,
		Version:     version.Version,
		Insecure:    cfg.OTLPInsecure,
	})
	if err != nil {
		logger.Warn("Tracing disabled: %v", err)
		shutdown = nil
	}
	a.shutdown = shutdown

	logger.Debug("Loaded config for %s environment", cfg.Environment)
	return nil
}

// close flushes traces and closes the log file. It is safe to call when init
// failed or did not run.
func (a *app) close(ctx context.Context) error {
	if a.shutdown != nil {
		if err := a.shutdown(ctx); err != nil && a.logger != nil {
			a.logger.Warn("Failed to flush traces: %v", err)
		}
		a.shutdown = nil
	}
	if a.logger == nil {
		return nil
	}
	err := a.logger.Close()
	a.logger = nil
	return err
}

// execute runs cmd and releases what init acquired whatever the outcome.
// Cobra skips post-run hooks when a command fails, so cleanup lives here.
func execute(cmd *cobra.Command, a *app) error {
	err := cmd.Execute()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if cerr := a.close(ctx); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	a := &app{}
	if err := execute(newRootCmd(a), a); err != nil {
		os.Exit(1)
	}
}
