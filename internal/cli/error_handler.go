package cli

import (
	"fmt"
	"io"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/errors"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct {
	out io.Writer
}

// NewErrorHandler creates a new error handler writing warnings to out
func NewErrorHandler(out io.Writer) *ErrorHandler {
	return &ErrorHandler{out: out}
}

// Handle maps an operation failure to what the user sees. Validation
// errors render one line per field. Warning-class storage failures are
// printed and swallowed: the mutation is applied in memory and the
// command itself succeeded.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}

	if validationErr, ok := err.(*validation.ValidationError); ok {
		return fmt.Errorf("failed to %s:\n%s", operation, eh.renderFieldErrors(validationErr))
	}

	if appErr, ok := errors.AsAppError(err); ok {
		if appErr.Severity() == errors.SeverityWarning {
			fmt.Fprintf(eh.out, "Warning: %s\n", errors.GetUserMessage(err))
			return nil
		}
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// renderFieldErrors formats field-level validation failures one per line
func (eh *ErrorHandler) renderFieldErrors(ve *validation.ValidationError) string {
	out := ""
	for _, fieldErr := range ve.Errors {
		out += fmt.Sprintf("  %s: %s\n", fieldErr.Field, fieldErr.Message)
	}
	return out
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}
