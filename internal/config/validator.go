package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "editor.canvas_width_px")
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

// ValidRenderFormats returns the list of valid render formats
func ValidRenderFormats() []string {
	return []string{"horizontal", "square", "vertical"}
}

// ValidOverlayTypes returns the list of valid overlay types
func ValidOverlayTypes() []string {
	return []string{"", "video_start", "video_end", "variant_start", "variant_end"}
}

// Validate checks the Config for invalid values and returns all
// validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.validateEditor()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateRender()...)
	errors = append(errors, c.validateLogging()...)
	return errors
}

func (c *Config) validateEditor() []ValidationError {
	var errors []ValidationError
	if c.Editor.CanvasWidthPx <= 0 {
		errors = append(errors, ValidationError{
			Field:   "editor.canvas_width_px",
			Value:   c.Editor.CanvasWidthPx,
			Message: "must be positive",
		})
	}
	if c.Editor.SettleDelayMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "editor.settle_delay_ms",
			Value:   c.Editor.SettleDelayMs,
			Message: "must not be negative",
		})
	}
	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError
	if c.TUI.SidebarWidth < 20 || c.TUI.SidebarWidth > 60 {
		errors = append(errors, ValidationError{
			Field:   "tui.sidebar_width",
			Value:   c.TUI.SidebarWidth,
			Message: "must be between 20 and 60",
		})
	}
	if c.TUI.TickIntervalMs <= 0 {
		errors = append(errors, ValidationError{
			Field:   "tui.tick_interval_ms",
			Value:   c.TUI.TickIntervalMs,
			Message: "must be positive",
		})
	}
	return errors
}

func (c *Config) validateRender() []ValidationError {
	var errors []ValidationError
	if len(c.Render.Formats) == 0 {
		errors = append(errors, ValidationError{
			Field:   "render.formats",
			Value:   c.Render.Formats,
			Message: "at least one format is required",
		})
	}
	for _, f := range c.Render.Formats {
		if !slices.Contains(ValidRenderFormats(), f) {
			errors = append(errors, ValidationError{
				Field:   "render.formats",
				Value:   f,
				Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidRenderFormats(), ", ")),
			})
		}
	}
	if !slices.Contains(ValidOverlayTypes(), c.Render.OverlayType) {
		errors = append(errors, ValidationError{
			Field:   "render.overlay_type",
			Value:   c.Render.OverlayType,
			Message: "unknown overlay type",
		})
	}
	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError
	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}
	return errors
}
