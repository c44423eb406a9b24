package session

import (
	"github.com/ess-tools/attendance-report-go/internal/domain/profile"
	"github.com/ess-tools/attendance-report-go/internal/domain/report"
	"github.com/ess-tools/attendance-report-go/internal/domain/task"
	"github.com/ess-tools/attendance-report-go/internal/pkg/validator"
)

// ========================================
// SESSION DTOs
// ========================================

type CreateSessionRequest struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
	Size     int    `json:"size"`

	// Token is the upstream ESS bearer token, forwarded verbatim.
	Token string `json:"-"`
}

func (r *CreateSessionRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.FromDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be a valid YYYY-MM-DD date",
		})
	}

	if _, ok := validator.IsValidDate(r.ToDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be a valid YYYY-MM-DD date",
		})
	}

	if r.Size < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "size",
			Message: "size must not be negative",
		})
	}

	if validator.IsEmpty(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "authorization",
			Message: "an upstream bearer token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UploadSessionRequest creates a session from an exported attendance JSON
// file instead of the upstream API. The profile is optional display
// metadata entered by the user.
type UploadSessionRequest struct {
	FromDate string                  `json:"from_date"`
	ToDate   string                  `json:"to_date"`
	Profile  profile.Profile         `json:"profile"`
	Records  []report.UpstreamRecord `json:"-"`
}

func (r *UploadSessionRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.FromDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be a valid YYYY-MM-DD date",
		})
	}

	if _, ok := validator.IsValidDate(r.ToDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be a valid YYYY-MM-DD date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRangeRequest struct {
	SessionID string `json:"-"`
	FromDate  string `json:"from_date"`
	ToDate    string `json:"to_date"`
}

func (r *UpdateRangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.FromDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be a valid YYYY-MM-DD date",
		})
	}

	if _, ok := validator.IsValidDate(r.ToDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be a valid YYYY-MM-DD date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddTaskEntryRequest struct {
	SessionID string
	WeekIndex int
}

type UpdateTaskEntryRequest struct {
	SessionID  string
	WeekIndex  int
	EntryIndex int
	Patch      task.UpdateEntryRequest
}

type SessionResponse struct {
	SessionID string       `json:"session_id"`
	FromDate  string       `json:"from_date"`
	ToDate    string       `json:"to_date"`
	Report    report.Views `json:"report"`
}
