package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/iw2rmb/notepad/internal/logging"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config key (e.g., "editor.wrap")
	Value   any    // The invalid value
	Message string // Human-readable description
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	switch len(e) {
	case 0:
		return ""
	case 1:
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidWrapModes returns the accepted editor.wrap values
func ValidWrapModes() []string {
	return []string{WrapWord, WrapGrapheme, WrapNone}
}

// ValidClipboardModes returns the accepted clipboard.mode values
func ValidClipboardModes() []string {
	return []string{ClipboardSystem, ClipboardInternal}
}

// Validate checks the configuration and returns every problem found
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors

	if !slices.Contains(ValidWrapModes(), c.Editor.Wrap) {
		errs = append(errs, ValidationError{
			Field:   "editor.wrap",
			Value:   c.Editor.Wrap,
			Message: "must be one of " + strings.Join(ValidWrapModes(), ", "),
		})
	}
	if c.Editor.TabWidth <= 0 {
		errs = append(errs, ValidationError{
			Field:   "editor.tab_width",
			Value:   c.Editor.TabWidth,
			Message: "must be positive",
		})
	}
	if !slices.Contains(ValidClipboardModes(), c.Clipboard.Mode) {
		errs = append(errs, ValidationError{
			Field:   "clipboard.mode",
			Value:   c.Clipboard.Mode,
			Message: "must be one of " + strings.Join(ValidClipboardModes(), ", "),
		})
	}
	if c.UI.StatusTimeoutMs < 0 {
		errs = append(errs, ValidationError{
			Field:   "ui.status_timeout_ms",
			Value:   c.UI.StatusTimeoutMs,
			Message: "must not be negative",
		})
	}
	if !slices.Contains(logging.ValidLevels(), strings.ToUpper(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: "must be one of " + strings.Join(logging.ValidLevels(), ", "),
		})
	}
	if c.Logging.Enabled && c.Logging.Dir == "" {
		errs = append(errs, ValidationError{
			Field:   "logging.dir",
			Value:   c.Logging.Dir,
			Message: "is required when logging is enabled",
		})
	}

	return errs
}
