package report

import (
	"strconv"
	"strings"
	"time"
)

// Remark tags recognized by the day classifier. Remarks are matched by
// substring containment, mirroring the upstream attendance feed.
const (
	TagWeekend      = "WEEKEND"
	TagHoliday      = "HOLIDAY"
	TagAppliedLeave = "APPLIED LEAVE"
)

// AttendanceRecord is one raw day of attendance as supplied by the upstream
// feed. Check-in/check-out stay strings: malformed clock values degrade to
// "no duration" instead of failing the whole load.
type AttendanceRecord struct {
	Date     time.Time
	CheckIn  string
	CheckOut string
	Remarks  string
}

// HasRemark reports whether the record's remarks contain the given tag.
func (r AttendanceRecord) HasRemark(tag string) bool {
	return strings.Contains(r.Remarks, tag)
}

// WeekBucket is one 7-day slice of the reporting range, clamped at the
// final boundary. Derived wholesale on every recomputation.
type WeekBucket struct {
	Index              int
	StartDate          time.Time
	EndDate            time.Time
	WorkDays           int
	TotalWorkedSeconds int
	AverageSeconds     int
}

// Label returns the bucket's display name, "Week N".
func (b WeekBucket) Label() string {
	return "Week " + strconv.Itoa(b.Index)
}

// DateRange returns the bucket's display range, e.g. "Jun 1 - Jun 7".
func (b WeekBucket) DateRange() string {
	return b.StartDate.Format("Jan 2") + " - " + b.EndDate.Format("Jan 2")
}

// Contains reports whether the date falls inside the bucket, inclusive.
func (b WeekBucket) Contains(date time.Time) bool {
	return !date.Before(b.StartDate) && !date.After(b.EndDate)
}

// UnmatchedWeekLabel marks detail rows whose date falls outside every bucket.
const UnmatchedWeekLabel = "Unmatched"

// AttendanceDetailRow is one attendance record enriched for the full
// listing. Every input record produces exactly one row, excluded or not.
type AttendanceDetailRow struct {
	Date           string `json:"date"`
	Weekday        string `json:"weekday"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	WorkedDuration string `json:"worked_duration"`
	Remarks        string `json:"remarks"`
	Week           string `json:"week"`
	WeekIndex      int    `json:"week_index"`
}
