package report

import (
	"time"

	"github.com/ess-tools/attendance-report-go/internal/domain/report"
	"github.com/ess-tools/attendance-report-go/internal/pkg/timeofday"
)

// classifier decides whether a day counts toward worked totals. Pure and
// stateless apart from the configured working weekend day.
type classifier struct {
	// workingWeekendDay is the one weekday on which a WEEKEND-tagged
	// record still counts, the institution's working weekend day.
	workingWeekendDay time.Weekday
}

// excluded applies the remark rules in order: WEEKEND (unless the record
// falls on the working weekend day), then HOLIDAY, then APPLIED LEAVE.
func (c classifier) excluded(rec report.AttendanceRecord) bool {
	if rec.HasRemark(report.TagWeekend) && rec.Date.Weekday() != c.workingWeekendDay {
		return true
	}
	if rec.HasRemark(report.TagHoliday) {
		return true
	}
	if rec.HasRemark(report.TagAppliedLeave) {
		return true
	}
	return false
}

// countsAsWorkDay reports whether the record increments the bucket's work
// days: not excluded and carrying a strictly positive worked duration.
func (c classifier) countsAsWorkDay(rec report.AttendanceRecord, d timeofday.Duration) bool {
	return !c.excluded(rec) && d.Positive()
}
