package check

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks a nil actual issue or expected descriptor.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrValidationMismatch marks the first field that disagreed.
	ErrValidationMismatch = errors.New("validation mismatch")
)

// InvalidArgumentError names the parameter that was nil.
type InvalidArgumentError struct {
	Param string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s must not be nil", e.Param)
}

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// MismatchError describes the first field on which the actual issue
// disagreed with the expectation. Expected and Actual are already rendered
// to text, with absence shown as null.
type MismatchError struct {
	Field    string `json:"field"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	// NotRelative is set when the texts matched but the actual path is
	// rooted.
	NotRelative bool `json:"not_relative,omitempty"`
}

func (e *MismatchError) Error() string {
	if e.NotRelative {
		return fmt.Sprintf("Expected issue.%s to be a relative path", e.Field)
	}
	return fmt.Sprintf("Expected issue.%s to be '%s' but was '%s'.", e.Field, e.Expected, e.Actual)
}

func (e *MismatchError) Unwrap() error { return ErrValidationMismatch }

// AsMismatch returns the MismatchError wrapped in err, if any.
func AsMismatch(err error) (*MismatchError, bool) {
	var m *MismatchError
	if errors.As(err, &m) {
		return m, true
	}
	return nil, false
}

func mismatch(field string, expected, actual fmt.Stringer) error {
	return &MismatchError{Field: field, Expected: expected.String(), Actual: actual.String()}
}

func textMismatch(field, expected, actual string) error {
	return &MismatchError{Field: field, Expected: expected, Actual: actual}
}

func notRelative(field, path string) error {
	return &MismatchError{Field: field, Expected: path, Actual: path, NotRelative: true}
}
