package report

import "errors"

// Report domain errors
var (
	ErrInvalidRecordDate = errors.New("attendance record has an invalid date")
)
