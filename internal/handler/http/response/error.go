package response

import (
	"errors"
	"net/http"

	"github.com/accelor-hrms/hrms-backend-go/internal/domain/access"
	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Access domain errors
	case errors.Is(err, access.ErrCallerMissing):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, access.ErrUnknownRole):
		Forbidden(w, "Role is not allowed to view attendance")

	// Storage and anything unexpected
	default:
		InternalServerError(w, "Server error", map[string]string{"error": err.Error()})
	}
}
