package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors converts validator.ValidationErrors into a per-field message map
// so that a single 422 response reports every offending field at once.
func FieldErrors(err error) map[string][]string {
	fields := map[string][]string{}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["_"] = []string{err.Error()}
		return fields
	}

	for _, e := range validationErrors {
		name := snakeCase(e.Field())
		fields[name] = append(fields[name], message(e))
	}

	return fields
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "url":
		return "Must be a valid URL"
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("Must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("Must be at least %s", e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("Must not exceed %s characters", e.Param())
		}
		return fmt.Sprintf("Must not exceed %s", e.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", e.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", e.Param())
	default:
		return fmt.Sprintf("Validation failed on rule %q", e.Tag())
	}
}

// snakeCase maps a Go struct field name to its JSON wire name. Runs of
// uppercase (ResumeID) stay a single word.
func snakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && (runes[i-1] < 'A' || runes[i-1] > 'Z') {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
