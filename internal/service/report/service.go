package report

import (
	"fmt"
	"time"

	"github.com/ess-tools/attendance-report-go/internal/domain/report"
	"github.com/ess-tools/attendance-report-go/internal/pkg/timeofday"
)

type ReportServiceImpl struct {
	days classifier
}

// NewReportService builds the aggregation engine. workingWeekendDay is the
// single weekday on which WEEKEND-tagged records still count.
func NewReportService(workingWeekendDay time.Weekday) report.Service {
	return &ReportServiceImpl{
		days: classifier{workingWeekendDay: workingWeekendDay},
	}
}

// Aggregate implements report.Service.
func (s *ReportServiceImpl) Aggregate(req report.AggregateRequest) report.Aggregation {
	buckets := partitionWeeks(req.FromDate, req.ToDate)

	for i := range buckets {
		bucket := &buckets[i]
		for _, rec := range req.Records {
			if !bucket.Contains(rec.Date) {
				continue
			}

			duration := timeofday.Between(rec.CheckIn, rec.CheckOut)
			if s.days.countsAsWorkDay(rec, duration) {
				bucket.WorkDays++
				bucket.TotalWorkedSeconds += duration.Seconds()
			}
		}

		if bucket.WorkDays > 0 {
			bucket.AverageSeconds = bucket.TotalWorkedSeconds / bucket.WorkDays
		}
	}

	return report.Aggregation{
		Weeks:      buckets,
		DetailRows: detailRows(req.Records, buckets),
	}
}

// detailRows builds one row per input record in input order, excluded and
// duration-less days included. Rows outside every bucket are labeled
// Unmatched, never dropped.
func detailRows(records []report.AttendanceRecord, buckets []report.WeekBucket) []report.AttendanceDetailRow {
	rows := make([]report.AttendanceDetailRow, 0, len(records))

	for _, rec := range records {
		row := report.AttendanceDetailRow{
			Date:     rec.Date.Format("02/01/2006"),
			Weekday:  rec.Date.Format("Monday"),
			CheckIn:  rec.CheckIn,
			CheckOut: rec.CheckOut,
			Remarks:  rec.Remarks,
			Week:     report.UnmatchedWeekLabel,
		}

		if d := timeofday.Between(rec.CheckIn, rec.CheckOut); d.Valid() {
			row.WorkedDuration = d.String()
		}

		for _, bucket := range buckets {
			if bucket.Contains(rec.Date) {
				row.Week = bucket.Label()
				row.WeekIndex = bucket.Index
				break
			}
		}

		rows = append(rows, row)
	}

	return rows
}

// Assemble implements report.Service.
func (s *ReportServiceImpl) Assemble(req report.AssembleRequest) report.Views {
	agg := req.Aggregation
	board := req.Board

	views := report.Views{
		Profile:          req.Profile,
		AttendanceDetail: agg.DetailRows,
	}

	var totalWorkDays int
	var totalWorkedSeconds int

	for _, bucket := range agg.Weeks {
		dailyHours := board.DailyHours(bucket.Index)

		summaryRow := report.WeeklySummaryRow{
			Week:        bucket.Label(),
			WeekIndex:   bucket.Index,
			DailyHours:  dailyHours,
			WeeklyHours: dailyHours * float64(bucket.WorkDays),
		}
		if entries, err := board.Entries(bucket.Index); err == nil {
			for _, entry := range entries {
				summaryRow.Tasks = append(summaryRow.Tasks, report.TaskCell{
					Name:         entry.Name,
					Frequency:    entry.Frequency,
					TimeRequired: entry.TimeRequired,
					TotalTime:    fmt.Sprintf("%.1f", entry.TotalHours()),
				})
			}
		}
		views.WeeklySummary.Rows = append(views.WeeklySummary.Rows, summaryRow)

		views.WeekDetail.Rows = append(views.WeekDetail.Rows, report.WeekDetailRow{
			Week:      bucket.Label(),
			DateRange: bucket.DateRange(),
			WorkDays:  bucket.WorkDays,
			TaskHours: fmt.Sprintf("%.1f", board.WeekTotalHours(bucket.Index)),
		})

		views.AverageWorked.Rows = append(views.AverageWorked.Rows, report.AverageWorkedRow{
			Week:              bucket.Label(),
			ActualWeeklyHours: timeofday.FormatLabel(bucket.TotalWorkedSeconds),
			AverageDaily:      timeofday.FormatLabel(bucket.AverageSeconds),
		})

		totalWorkDays += bucket.WorkDays
		totalWorkedSeconds += bucket.TotalWorkedSeconds
	}

	views.WeekDetail.TotalWorkDays = totalWorkDays
	views.WeekDetail.TotalTaskHours = fmt.Sprintf("%.1f", board.TotalHours())
	views.WeekDetail.AverageHoursDay = "0.00"
	if totalWorkDays > 0 {
		views.WeekDetail.AverageHoursDay = fmt.Sprintf("%.2f", board.TotalHours()/float64(totalWorkDays))
	}

	views.AverageWorked.RangeAverageDaily = rangeAverageDaily(views.AverageWorked.Rows, totalWorkDays)

	return views
}

// rangeAverageDaily re-derives the range-wide average worked duration per
// work day from the per-week formatted duration strings. It must agree
// with computing the average straight from raw seconds.
func rangeAverageDaily(rows []report.AverageWorkedRow, totalWorkDays int) string {
	if totalWorkDays == 0 {
		return timeofday.FormatLabel(0)
	}

	var totalSeconds int
	for _, row := range rows {
		if seconds, ok := timeofday.ParseLabel(row.ActualWeeklyHours); ok {
			totalSeconds += seconds
		}
	}

	return timeofday.FormatLabel(totalSeconds / totalWorkDays)
}
