package logging

import (
	"fmt"
	"io"
	"strings"
)

// Config holds logging-related configuration
type Config struct {
	Level      string    `json:"level"`       // debug, info, warn, error
	File       string    `json:"file"`        // Path to log file, empty for none
	MaxSize    int       `json:"max_size"`    // Max size in MB
	MaxBackups int       `json:"max_backups"` // Number of backups to keep
	MaxAge     int       `json:"max_age"`     // Max age in days
	Color      bool      `json:"color"`       // Colored level prefixes
	Output     io.Writer `json:"-"`           // Console writer, stderr when nil
}

// Validate checks if the configuration is valid
func (l *Config) Validate() error {
	// Matches NewLogger: case-insensitive, empty means info.
	if level := strings.ToLower(l.Level); level != "" {
		if _, ok := levelRank[level]; !ok {
			return fmt.Errorf("%w: invalid log level: %s", ErrInvalidConfig, l.Level)
		}
	}

	if l.File == "" {
		return nil
	}

	if l.MaxSize <= 0 {
		return fmt.Errorf("%w: max_size must be positive", ErrInvalidConfig)
	}

	if l.MaxBackups < 0 {
		return fmt.Errorf("%w: max_backups must be non-negative", ErrInvalidConfig)
	}

	if l.MaxAge < 0 {
		return fmt.Errorf("%w: max_age must be non-negative", ErrInvalidConfig)
	}

	return nil
}
