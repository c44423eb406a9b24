package task

import (
	"github.com/ess-tools/attendance-report-go/internal/pkg/validator"
)

// Editable entry fields accepted by UpdateEntryRequest.
const (
	FieldName         = "name"
	FieldFrequency    = "frequency"
	FieldTimeRequired = "time_required"
	FieldDailyHours   = "daily_hours"
)

var editableFields = []string{FieldName, FieldFrequency, FieldTimeRequired, FieldDailyHours}

type UpdateEntryRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Field, editableFields) {
		errs = append(errs, validator.ValidationError{
			Field:   "field",
			Message: "field must be one of name, frequency, time_required, daily_hours",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
