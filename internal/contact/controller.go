package contact

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/osa911/contactus/internal/logging"
	"github.com/osa911/contactus/internal/validation"
)

const tracerName = "github.com/osa911/contactus/internal/contact"

// SubmitFunc receives the field values of a valid submission.
type SubmitFunc func(Fields)

// Controller owns the state of one contact form session: the current field
// values, the errors of the last submit attempt and the submit lifecycle.
//
// A Controller is not safe for concurrent use. Events of a session are
// handled one at a time; the last write to a field wins.
type Controller struct {
	id        uuid.UUID
	fields    Fields
	errors    validation.Errors
	attempted bool

	onSubmit SubmitFunc
	logger   *logging.Logger
	tracer   trace.Tracer
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for submit and change events.
func WithLogger(l *logging.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracer sets the tracer used for submit spans.
func WithTracer(t trace.Tracer) Option {
	return func(c *Controller) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithSessionID sets the session id instead of a random one.
func WithSessionID(id uuid.UUID) Option {
	return func(c *Controller) {
		c.id = id
	}
}

// NewController creates a Controller with empty fields. onSubmit is called
// once per valid submission; nil means submissions are dropped.
func NewController(onSubmit SubmitFunc, opts ...Option) *Controller {
	c := &Controller{
		id:       uuid.New(),
		onSubmit: onSubmit,
		logger:   logging.Nop(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the session id.
func (c *Controller) ID() uuid.UUID {
	return c.id
}

// Fields returns a copy of the current values.
func (c *Controller) Fields() Fields {
	return c.fields
}

// Value returns the current value of field.
func (c *Controller) Value(field Field) string {
	return c.fields.Get(field)
}

// Set stores value as the new value of field. After a failed submit the field
// is validated again, so its message tracks the edit.
func (c *Controller) Set(field Field, value string) {
	next, ok := c.fields.With(field, value)
	if !ok {
		c.logger.Warn("[%s] ignoring change of unknown field %q", c.id, field)
		return
	}
	c.fields = next

	if !c.attempted {
		return
	}

	var fe *validation.FieldError
	if err := ValidateField(field, value); err != nil {
		fe = err.(*validation.FieldError)
	}
	c.errors = c.errors.With(string(field), fe, fieldOrder)
}

// OnChange returns the change handler of field.
func (c *Controller) OnChange(field Field) func(string) {
	return func(value string) {
		c.Set(field, value)
	}
}

func (c *Controller) SetName(name string) { c.Set(FieldName, name) }
func (c *Controller) SetEmail(email string) { c.Set(FieldEmail, email) }
func (c *Controller) SetSubject(subject string) { c.Set(FieldSubject, subject) }
func (c *Controller) SetMessage(message string) { c.Set(FieldMessage, message) }

// Errors returns the errors of the last submit attempt.
func (c *Controller) Errors() validation.Errors {
	if len(c.errors) == 0 {
		return nil
	}
	out := make(validation.Errors, len(c.errors))
	copy(out, c.errors)
	return out
}

// Error returns the message shown next to field, or "".
func (c *Controller) Error(field Field) string {
	return c.errors.Get(string(field))
}

// HasErrors reports whether any field currently shows a message.
func (c *Controller) HasErrors() bool {
	return len(c.errors) > 0
}

// Attempted reports whether a submit failed since the last reset.
func (c *Controller) Attempted() bool {
	return c.attempted
}

// Submit validates every field. When a field is invalid the errors are kept
// for display, returned as validation.Errors, and the callback is not called.
// Otherwise the callback receives the current values and the fields are
// cleared.
func (c *Controller) Submit() error {
	_, span := c.tracer.Start(context.Background(), "contact.Submit",
		trace.WithAttributes(attribute.String("contact.session_id", c.id.String())))
	defer span.End()

	if errs := ValidateFields(c.fields); len(errs) > 0 {
		c.errors = errs
		c.attempted = true

		span.SetAttributes(attribute.StringSlice("contact.invalid_fields", errs.Fields()))
		span.SetStatus(codes.Error, "validation failed")
		c.logger.Info("[%s] submit rejected: %d invalid field(s)", c.id, len(errs))
		c.logger.Debug("[%s] validation errors: %v", c.id, errs)
		return errs
	}

	submitted := c.fields
	c.errors = nil
	c.attempted = false

	if c.onSubmit != nil {
		c.onSubmit(submitted)
	}
	c.logger.Info("[%s] form submitted", c.id)
	span.SetStatus(codes.Ok, "")

	c.fields = Fields{}
	return nil
}

// Reset clears the values and errors.
func (c *Controller) Reset() {
	c.fields = Fields{}
	c.errors = nil
	c.attempted = false
}
