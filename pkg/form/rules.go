package form

import (
	"fmt"
	"regexp"
	"strings"
)

// Validator is an interface for form field validation.
type Validator interface {
	// Validate checks if the value is valid.
	// Returns nil if valid, or an error with a message if invalid.
	Validate(value string) error
}

// ValidatorFunc is a function that implements Validator.
type ValidatorFunc func(value string) error

func (f ValidatorFunc) Validate(value string) error {
	return f(value)
}

// ValidationFailure is the single error kind produced by validation.
// It names the failing field and carries a fixed human-readable message.
// Failures never propagate as errors past the engine; they are recorded
// as field state and rendered by the presenter.
type ValidationFailure struct {
	Field   string
	Message string
}

func (e ValidationFailure) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Fixed messages for the built-in rules.
const (
	MsgRequired     = "This field is required"
	MsgInvalidEmail = "Please enter a valid email address"
	MsgNameTooShort = "Name must be at least 2 characters long"
	MsgMessageShort = "Message must be at least 10 characters long"
)

// emailPattern requires exactly one @, at least one dot after it, and no
// whitespace anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required validates that the trimmed value is non-empty.
func Required(msg string) Validator {
	if msg == "" {
		msg = MsgRequired
	}
	return ValidatorFunc(func(value string) error {
		if strings.TrimSpace(value) == "" {
			return ValidationFailure{Message: msg}
		}
		return nil
	})
}

// Email validates that the value looks like an email address.
// Empty values pass; pair with Required to reject them.
func Email(msg string) Validator {
	if msg == "" {
		msg = MsgInvalidEmail
	}
	return ValidatorFunc(func(value string) error {
		if value == "" {
			return nil
		}
		if !emailPattern.MatchString(value) {
			return ValidationFailure{Message: msg}
		}
		return nil
	})
}

// MinLength validates that the value has at least n characters.
// Empty values pass; pair with Required to reject them.
func MinLength(n int, msg string) Validator {
	if msg == "" {
		msg = fmt.Sprintf("Must be at least %d characters", n)
	}
	return ValidatorFunc(func(value string) error {
		if value == "" {
			return nil
		}
		if len([]rune(value)) < n {
			return ValidationFailure{Message: msg}
		}
		return nil
	})
}

// Pattern validates that the value matches the given regular expression.
// Empty values pass; pair with Required to reject them.
func Pattern(pattern string, msg string) Validator {
	re := regexp.MustCompile(pattern)
	if msg == "" {
		msg = "Invalid format"
	}
	return ValidatorFunc(func(value string) error {
		if value == "" {
			return nil
		}
		if !re.MatchString(value) {
			return ValidationFailure{Message: msg}
		}
		return nil
	})
}

// Custom creates a validator from a custom function.
func Custom(fn func(value string) error) Validator {
	return ValidatorFunc(fn)
}

// DefaultRules returns the rules implied by a field name.
// Field names form a small closed set: "email", "name" and "message" carry
// rules; any other name is generic and only the required flag applies.
func DefaultRules(name string) []Validator {
	switch name {
	case "email":
		return []Validator{Email(MsgInvalidEmail)}
	case "name":
		return []Validator{MinLength(2, MsgNameTooShort)}
	case "message":
		return []Validator{MinLength(10, MsgMessageShort)}
	default:
		return nil
	}
}
