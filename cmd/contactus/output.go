package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/osa911/contactus/internal/config"
	"github.com/osa911/contactus/internal/contact"
)

// Submission is the record written for every accepted form.
type Submission struct {
	SessionID      string    `json:"session_id" yaml:"session_id"`
	SubmittedAt    time.Time `json:"submitted_at" yaml:"submitted_at"`
	contact.Fields `yaml:",inline"`
}

func newSubmission(id uuid.UUID, fields contact.Fields) Submission {
	return Submission{
		SessionID:   id.String(),
		SubmittedAt: time.Now().UTC(),
		Fields:      fields,
	}
}

// writeSubmission encodes s in the configured output format.
func writeSubmission(w io.Writer, format string, s Submission) error {
	if format != config.OutputText {
		return writeValue(w, format, s)
	}

	_, err := fmt.Fprintf(w, "Session: %s\nSubmitted: %s\n", s.SessionID, s.SubmittedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}
	for _, fi := range contact.Describe() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", fi.Label, s.Fields.Get(fi.Field)); err != nil {
			return err
		}
	}
	return nil
}

// writeValue encodes v as json or yaml. Text falls back to fmt's %v.
func writeValue(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	default:
		_, err := fmt.Fprintf(w, "%v\n", v)
		return err
	}
}
