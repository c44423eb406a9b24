package session

import (
	"time"

	"github.com/ess-tools/attendance-report-go/internal/domain/profile"
	"github.com/ess-tools/attendance-report-go/internal/domain/report"
	"github.com/ess-tools/attendance-report-go/internal/domain/task"
)

// Session is one loaded report: the raw inputs, the live task board and the
// report computed from them. The computed views are replaced wholesale on
// every input change; they are never patched incrementally.
type Session struct {
	ID        string
	FromDate  time.Time
	ToDate    time.Time
	Records   []report.AttendanceRecord
	Profile   profile.Profile
	Board     task.Board
	Views     report.Views
	CreatedAt time.Time
	UpdatedAt time.Time
}
