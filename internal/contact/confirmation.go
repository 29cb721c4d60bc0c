package contact

// Level is the visual state of a confirmation.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

const (
	// DefaultSuccessMessage is shown after a submission went through.
	DefaultSuccessMessage = "Message sent successfully. We'll get back to you shortly."
	// DefaultFailureMessage is shown when a submission was rejected.
	DefaultFailureMessage = "Please correct the errors below and try again."
)

// Confirmation is the banner shown after a submit attempt.
type Confirmation struct {
	Success bool   `json:"success" yaml:"success"`
	Message string `json:"message" yaml:"message"`
}

// Confirm maps the result of Controller.Submit to a banner. Empty messages
// fall back to the defaults.
func Confirm(err error, success, failure string) Confirmation {
	if err == nil {
		if success == "" {
			success = DefaultSuccessMessage
		}
		return Confirmation{Success: true, Message: success}
	}
	if failure == "" {
		failure = DefaultFailureMessage
	}
	return Confirmation{Success: false, Message: failure}
}

// Level returns the visual state of the banner.
func (c Confirmation) Level() Level {
	if c.Success {
		return LevelSuccess
	}
	return LevelError
}

// Class returns the CSS classes of the banner.
func (c Confirmation) Class() string {
	return "alert alert-" + string(c.Level())
}
