package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/thequad/api/internal/app/models/dto"
)

// BindingErrorDetail turns a request binding failure into a structured
// error detail, listing each failed field when the validator produced them
func BindingErrorDetail(err error) *dto.ErrorDetail {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, formatValidationError(fe))
		}
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(details)
	}

	return dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
