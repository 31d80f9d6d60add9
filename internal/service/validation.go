package service

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports invalid form input. The message names the offending
// fields and is safe to return to the client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func missingFieldsError(fields []string) error {
	return &ValidationError{Message: fmt.Sprintf("Missing required fields: %s", strings.Join(fields, ", "))}
}
