package report

import (
	"time"

	"github.com/ess-tools/attendance-report-go/internal/domain/profile"
	"github.com/ess-tools/attendance-report-go/internal/domain/task"
	"github.com/ess-tools/attendance-report-go/internal/pkg/validator"
)

// ========================================
// AGGREGATION REQUEST
// ========================================

type AggregateRequest struct {
	FromDate time.Time
	ToDate   time.Time
	Records  []AttendanceRecord
}

// Aggregation is the attendance-derived half of the report: the computed
// week buckets plus the full per-record detail listing.
type Aggregation struct {
	Weeks      []WeekBucket
	DetailRows []AttendanceDetailRow
}

// ========================================
// ASSEMBLED REPORT VIEWS
// ========================================

type AssembleRequest struct {
	Profile     profile.Profile
	Aggregation Aggregation
	Board       task.Board
}

type Views struct {
	Profile          profile.Profile       `json:"profile"`
	WeeklySummary    WeeklySummaryView     `json:"weekly_summary"`
	WeekDetail       WeekDetailView        `json:"week_detail"`
	AverageWorked    AverageWorkedView     `json:"average_worked"`
	AttendanceDetail []AttendanceDetailRow `json:"attendance_detail"`
}

type WeeklySummaryView struct {
	Rows []WeeklySummaryRow `json:"rows"`
}

type WeeklySummaryRow struct {
	Week        string     `json:"week"`
	WeekIndex   int        `json:"week_index"`
	DailyHours  float64    `json:"daily_hours"`
	WeeklyHours float64    `json:"weekly_hours"`
	Tasks       []TaskCell `json:"tasks"`
}

type TaskCell struct {
	Name         string  `json:"name"`
	Frequency    float64 `json:"frequency"`
	TimeRequired float64 `json:"time_required"`
	TotalTime    string  `json:"total_time"`
}

type WeekDetailView struct {
	Rows            []WeekDetailRow `json:"rows"`
	TotalWorkDays   int             `json:"total_work_days"`
	TotalTaskHours  string          `json:"total_task_hours"`
	AverageHoursDay string          `json:"average_hours_per_day"`
}

type WeekDetailRow struct {
	Week      string `json:"week"`
	DateRange string `json:"date_range"`
	WorkDays  int    `json:"work_days"`
	TaskHours string `json:"weekly_task_hours"`
}

type AverageWorkedView struct {
	Rows []AverageWorkedRow `json:"rows"`

	// RangeAverageDaily is the attendance-derived average worked duration
	// per work day across the whole range, re-derived from the per-week
	// formatted durations.
	RangeAverageDaily string `json:"range_average_daily"`
}

type AverageWorkedRow struct {
	Week              string `json:"week"`
	ActualWeeklyHours string `json:"actual_weekly_hours"`
	AverageDaily      string `json:"average_daily_worked_hours"`
}

// ========================================
// UPSTREAM RECORD SHAPE
// ========================================

// UpstreamRecord is the wire shape of one attendance day as delivered by
// the ESS feed and by uploaded report files.
type UpstreamRecord struct {
	Date     string  `json:"date"`
	CheckIn  *string `json:"checkIn"`
	CheckOut *string `json:"checkOut"`
	Remarks  *string `json:"remarks"`
}

// ToRecord converts the wire shape to the domain record. Records whose date
// does not parse are reported via the second return so that callers can
// reject the whole payload with a field error.
func (u UpstreamRecord) ToRecord() (AttendanceRecord, error) {
	date, err := validator.ParseDate(u.Date)
	if err != nil {
		return AttendanceRecord{}, err
	}

	rec := AttendanceRecord{Date: date}
	if u.CheckIn != nil {
		rec.CheckIn = *u.CheckIn
	}
	if u.CheckOut != nil {
		rec.CheckOut = *u.CheckOut
	}
	if u.Remarks != nil {
		rec.Remarks = *u.Remarks
	}
	return rec, nil
}
