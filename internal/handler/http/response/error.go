package response

import (
	"errors"
	"net/http"

	"github.com/ess-tools/attendance-report-go/internal/domain/report"
	"github.com/ess-tools/attendance-report-go/internal/domain/session"
	"github.com/ess-tools/attendance-report-go/internal/domain/task"
	"github.com/ess-tools/attendance-report-go/internal/pkg/ess"
	"github.com/ess-tools/attendance-report-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Upstream ESS failures
	var apiErr *ess.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusUnauthorized {
			Unauthorized(w, "Upstream rejected the bearer token")
			return
		}
		BadGateway(w, apiErr.Error())
		return
	}

	switch {
	// Session domain errors
	case errors.Is(err, session.ErrSessionNotFound):
		NotFound(w, "Report session not found or expired")

	// Task board errors
	case errors.Is(err, task.ErrWeekNotFound):
		NotFound(w, "Week does not exist in this report")
	case errors.Is(err, task.ErrEntryNotFound):
		NotFound(w, "Task entry does not exist in this week")
	case errors.Is(err, task.ErrUnknownField):
		BadRequest(w, "Unknown task entry field", nil)

	// Report domain errors
	case errors.Is(err, report.ErrInvalidRecordDate):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
