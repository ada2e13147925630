package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ImGajeed76/growgroove/pkg/growgroove/sections"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/tabs"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/theme"
	"golang.org/x/text/encoding/ianaindex"
)

// ValidationError is a single invalid setting.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every invalid setting found by Validate.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidLogLevels returns the accepted logging.level values.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidExportStyles returns the accepted export.style values.
func ValidExportStyles() []string {
	return []string{"auto", "ascii", "dark", "dracula", "light", "notty", "pink", "tokyo-night"}
}

// Validate checks every setting and returns all problems found.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, c.validateUI()...)
	errs = append(errs, c.validateThemes()...)
	errs = append(errs, c.validateLogging()...)
	errs = append(errs, c.validateExport()...)
	errs = append(errs, c.validatePublish()...)
	return errs
}

func (c *Config) validateUI() []ValidationError {
	if _, err := tabs.Lookup(c.UI.DefaultTab); err != nil {
		return []ValidationError{{
			Field:   "ui.default_tab",
			Value:   c.UI.DefaultTab,
			Message: "must be one of " + strings.Join(tabs.IDs(), ", "),
		}}
	}
	return nil
}

func (c *Config) validateThemes() []ValidationError {
	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	slices.Sort(names)

	var errs []ValidationError
	for _, name := range names {
		for _, field := range c.Themes[name].Invalid() {
			errs = append(errs, ValidationError{
				Field:   "themes." + name + "." + field,
				Value:   themeField(c.Themes[name], field),
				Message: "must be a hex colour or an ANSI index (0-255)",
			})
		}
	}
	return errs
}

func (c *Config) validateLogging() []ValidationError {
	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		return []ValidationError{{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: "must be one of " + strings.Join(ValidLogLevels(), ", "),
		}}
	}
	return nil
}

func (c *Config) validateExport() []ValidationError {
	var errs []ValidationError
	if !slices.Contains(ValidExportStyles(), c.Export.Style) {
		errs = append(errs, ValidationError{
			Field:   "export.style",
			Value:   c.Export.Style,
			Message: "must be one of " + strings.Join(ValidExportStyles(), ", "),
		})
	}
	if c.Export.Width < sections.MinWidth {
		errs = append(errs, ValidationError{
			Field:   "export.width",
			Value:   c.Export.Width,
			Message: fmt.Sprintf("must be at least %d", sections.MinWidth),
		})
	}
	return errs
}

func (c *Config) validatePublish() []ValidationError {
	var errs []ValidationError
	if c.Publish.Encoding != "" {
		if _, err := ianaindex.IANA.Encoding(c.Publish.Encoding); err != nil {
			errs = append(errs, ValidationError{
				Field:   "publish.encoding",
				Value:   c.Publish.Encoding,
				Message: "must be an IANA charset name",
			})
		}
	}
	if c.Publish.Timeout <= 0 {
		errs = append(errs, ValidationError{
			Field:   "publish.timeout",
			Value:   c.Publish.Timeout,
			Message: "must be positive",
		})
	}
	return errs
}

func themeField(t theme.Theme, field string) string {
	switch field {
	case "bg":
		return t.Bg
	case "text":
		return t.Text
	case "accent":
		return t.Accent
	case "gradient":
		return t.Gradient
	default:
		return t.Shadow
	}
}
