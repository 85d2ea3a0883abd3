package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors lets a handler render field-level detail instead of
// one flattened message.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, v := range e {
		parts[i] = v.Error()
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const maxFieldLength = 5000

func ValidateContactIntakeInput(input ContactIntakeInput) ValidationErrors {
	var errors ValidationErrors

	if input.Name == "" {
		errors = append(errors, ValidationError{"name", "Name is required"})
	} else if n := utf8.RuneCountInString(input.Name); n < 2 || n > 100 {
		errors = append(errors, ValidationError{"name", "Name must be between 2 and 100 characters"})
	}

	if input.Email == "" {
		errors = append(errors, ValidationError{"email", "Email is required"})
	} else if !emailPattern.MatchString(input.Email) {
		errors = append(errors, ValidationError{"email", "Please enter a valid email address"})
	}

	if input.Message == "" {
		errors = append(errors, ValidationError{"message", "Message is required"})
	} else if n := utf8.RuneCountInString(input.Message); n < 10 || n > maxFieldLength {
		errors = append(errors, ValidationError{"message", "Message must be between 10 and 5000 characters"})
	}

	return errors
}

// Sanitize trims whitespace, strips angle brackets and caps the length
// at maxFieldLength characters, never splitting a multibyte rune. The
// result is safe to interpolate into HTML email bodies, and sanitizing
// it again is a no-op.
func Sanitize(input string) string {
	s := strings.TrimSpace(input)
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	if utf8.RuneCountInString(s) > maxFieldLength {
		runes := []rune(s)
		s = strings.TrimSpace(string(runes[:maxFieldLength]))
	}
	return s
}
