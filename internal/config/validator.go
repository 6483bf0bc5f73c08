package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "ui.char_limit")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ConsoleOff disables the stderr log sink.
const ConsoleOff = "off"

// maxCharLimit bounds ui.char_limit; anything longer is not a task title.
const maxCharLimit = 10000

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.validateUI()...)
	errors = append(errors, c.validateLogging()...)
	return errors
}

func (c *Config) validateUI() []ValidationError {
	var errors []ValidationError

	if c.UI.CharLimit < 0 {
		errors = append(errors, ValidationError{
			Field:   "ui.char_limit",
			Value:   c.UI.CharLimit,
			Message: "must be non-negative",
		})
	}
	if c.UI.CharLimit > maxCharLimit {
		errors = append(errors, ValidationError{
			Field:   "ui.char_limit",
			Value:   c.UI.CharLimit,
			Message: fmt.Sprintf("exceeds maximum of %d", maxCharLimit),
		})
	}

	if strings.ContainsAny(c.UI.Title, "\n\r") {
		errors = append(errors, ValidationError{
			Field:   "ui.title",
			Value:   c.UI.Title,
			Message: "must be a single line",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.Console != "" && !slices.Contains(append(ValidLogLevels(), ConsoleOff), strings.ToLower(c.Logging.Console)) {
		errors = append(errors, ValidationError{
			Field:   "logging.console",
			Value:   c.Logging.Console,
			Message: fmt.Sprintf("must be one of: %s, %s", strings.Join(ValidLogLevels(), ", "), ConsoleOff),
		})
	}

	if c.Logging.Enabled && c.Logging.File == "" {
		errors = append(errors, ValidationError{
			Field:   "logging.file",
			Value:   c.Logging.File,
			Message: "must be set when logging is enabled",
		})
	}

	return errors
}
