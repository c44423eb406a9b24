package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/ess-tools/attendance-report-go/internal/domain/profile"
	"github.com/ess-tools/attendance-report-go/internal/domain/report"
	"github.com/ess-tools/attendance-report-go/internal/domain/task"
	"github.com/ess-tools/attendance-report-go/internal/pkg/timeofday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func record(day, checkIn, checkOut, remarks string) report.AttendanceRecord {
	return report.AttendanceRecord{
		Date:     date(day),
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Remarks:  remarks,
	}
}

func newEngine() report.Service {
	return NewReportService(time.Thursday)
}

func TestPartitionWeeksCoversRangeExactly(t *testing.T) {
	cases := []struct {
		from, to string
		want     int
	}{
		{"2024-06-01", "2024-06-14", 2},
		{"2024-06-01", "2024-06-07", 1},
		{"2024-06-01", "2024-06-08", 2},
		{"2024-06-01", "2024-06-01", 1},
		{"2024-01-01", "2024-03-31", 13},
	}

	for _, c := range cases {
		buckets := partitionWeeks(date(c.from), date(c.to))
		require.Len(t, buckets, c.want, "range %s..%s", c.from, c.to)

		// Contiguous, non-overlapping, union covers the range exactly.
		assert.True(t, buckets[0].StartDate.Equal(date(c.from)))
		assert.True(t, buckets[len(buckets)-1].EndDate.Equal(date(c.to)))
		for i, bucket := range buckets {
			assert.Equal(t, i+1, bucket.Index)
			assert.False(t, bucket.EndDate.Before(bucket.StartDate))
			if i > 0 {
				gap := bucket.StartDate.Sub(buckets[i-1].EndDate)
				assert.Equal(t, 24*time.Hour, gap, "buckets must be contiguous")
			}
			if i < len(buckets)-1 {
				assert.Equal(t, 6*24*time.Hour, bucket.EndDate.Sub(bucket.StartDate))
			}
		}
	}
}

func TestPartitionWeeksInvertedRange(t *testing.T) {
	buckets := partitionWeeks(date("2024-06-14"), date("2024-06-01"))
	assert.Empty(t, buckets)
}

func TestPartitionWeeksIsStable(t *testing.T) {
	first := partitionWeeks(date("2024-06-01"), date("2024-06-30"))
	second := partitionWeeks(date("2024-06-01"), date("2024-06-30"))
	assert.Equal(t, first, second)
}

func TestAggregateTwoWeekRange(t *testing.T) {
	engine := newEngine()

	agg := engine.Aggregate(report.AggregateRequest{
		FromDate: date("2024-06-01"),
		ToDate:   date("2024-06-14"),
		Records: []report.AttendanceRecord{
			record("2024-06-03", "09:00:00", "17:30:00", ""),
			record("2024-06-06", "09:00:00", "17:00:00", "HOLIDAY"),
		},
	})

	require.Len(t, agg.Weeks, 2)
	assert.True(t, agg.Weeks[0].StartDate.Equal(date("2024-06-01")))
	assert.True(t, agg.Weeks[0].EndDate.Equal(date("2024-06-07")))
	assert.True(t, agg.Weeks[1].StartDate.Equal(date("2024-06-08")))
	assert.True(t, agg.Weeks[1].EndDate.Equal(date("2024-06-14")))

	// The holiday contributes nothing despite its valid clock pair.
	assert.Equal(t, 1, agg.Weeks[0].WorkDays)
	assert.Equal(t, 30600, agg.Weeks[0].TotalWorkedSeconds)
	assert.Equal(t, 30600, agg.Weeks[0].AverageSeconds)
	assert.Equal(t, 0, agg.Weeks[1].WorkDays)
	assert.Equal(t, 0, agg.Weeks[1].AverageSeconds)
}

func TestAggregateExclusionRules(t *testing.T) {
	engine := newEngine()

	// 2024-06-06 is a Thursday, 2024-06-07 a Friday.
	agg := engine.Aggregate(report.AggregateRequest{
		FromDate: date("2024-06-01"),
		ToDate:   date("2024-06-07"),
		Records: []report.AttendanceRecord{
			record("2024-06-06", "09:00:00", "17:00:00", "WEEKEND"),
			record("2024-06-07", "09:00:00", "17:00:00", "WEEKEND"),
			record("2024-06-03", "09:00:00", "17:00:00", "APPLIED LEAVE"),
		},
	})

	// Only the Thursday WEEKEND record counts.
	require.Len(t, agg.Weeks, 1)
	assert.Equal(t, 1, agg.Weeks[0].WorkDays)
	assert.Equal(t, 8*3600, agg.Weeks[0].TotalWorkedSeconds)
}

func TestAggregateZeroAndInvertedDurations(t *testing.T) {
	engine := newEngine()

	agg := engine.Aggregate(report.AggregateRequest{
		FromDate: date("2024-06-01"),
		ToDate:   date("2024-06-07"),
		Records: []report.AttendanceRecord{
			record("2024-06-03", "17:00:00", "09:00:00", ""), // inverted
			record("2024-06-04", "09:00:00", "09:00:00", ""), // zero length
			record("2024-06-05", "09:00:00", "", ""),         // missing check-out
		},
	})

	require.Len(t, agg.Weeks, 1)
	assert.Equal(t, 0, agg.Weeks[0].WorkDays)
	assert.Equal(t, 0, agg.Weeks[0].TotalWorkedSeconds)
	assert.Equal(t, 0, agg.Weeks[0].AverageSeconds, "average must stay defined with zero work days")

	// All three records still appear in the detail listing.
	require.Len(t, agg.DetailRows, 3)
	assert.Empty(t, agg.DetailRows[0].WorkedDuration)
	assert.Equal(t, "00:00:00", agg.DetailRows[1].WorkedDuration)
	assert.Empty(t, agg.DetailRows[2].WorkedDuration)
}

func TestAggregateDuplicateDatesBothContribute(t *testing.T) {
	engine := newEngine()

	agg := engine.Aggregate(report.AggregateRequest{
		FromDate: date("2024-06-01"),
		ToDate:   date("2024-06-07"),
		Records: []report.AttendanceRecord{
			record("2024-06-03", "09:00:00", "13:00:00", ""),
			record("2024-06-03", "14:00:00", "17:00:00", ""),
		},
	})

	require.Len(t, agg.Weeks, 1)
	assert.Equal(t, 2, agg.Weeks[0].WorkDays)
	assert.Equal(t, 7*3600, agg.Weeks[0].TotalWorkedSeconds)
}

func TestDetailRowsPreserveOrderAndLabelUnmatched(t *testing.T) {
	engine := newEngine()

	agg := engine.Aggregate(report.AggregateRequest{
		FromDate: date("2024-06-01"),
		ToDate:   date("2024-06-07"),
		Records: []report.AttendanceRecord{
			record("2024-06-20", "09:00:00", "17:00:00", ""),
			record("2024-06-03", "09:00:00", "17:30:00", ""),
		},
	})

	require.Len(t, agg.DetailRows, 2)
	assert.Equal(t, "Unmatched", agg.DetailRows[0].Week)
	assert.Equal(t, 0, agg.DetailRows[0].WeekIndex)
	assert.Equal(t, "20/06/2024", agg.DetailRows[0].Date)
	assert.Equal(t, "Week 1", agg.DetailRows[1].Week)
	assert.Equal(t, "Monday", agg.DetailRows[1].Weekday)
	assert.Equal(t, "08:30:00", agg.DetailRows[1].WorkedDuration)
}

func TestAssembleJoinsTaskBoard(t *testing.T) {
	engine := newEngine()

	agg := engine.Aggregate(report.AggregateRequest{
		FromDate: date("2024-06-01"),
		ToDate:   date("2024-06-14"),
		Records: []report.AttendanceRecord{
			record("2024-06-03", "09:00:00", "17:30:00", ""),
			record("2024-06-10", "09:00:00", "17:30:00", ""),
			record("2024-06-11", "09:00:00", "13:00:00", ""),
		},
	})

	board := task.NewBoard(len(agg.Weeks))
	board.Weeks[0][0].Name = "Code review"
	board.Weeks[0][0].Frequency = 5
	board.Weeks[0][0].TimeRequired = 0.5
	board.Weeks[1] = append(board.Weeks[1], task.Entry{
		Name: "Standup", Frequency: 3, TimeRequired: 0.25, DailyHours: 8,
	})

	views := engine.Assemble(report.AssembleRequest{
		Profile:     profile.Profile{EmployeeID: "710003676", FullName: "Md. Shakil Khan"},
		Aggregation: agg,
		Board:       board,
	})

	require.Len(t, views.WeeklySummary.Rows, 2)
	assert.Equal(t, "710003676", views.Profile.EmployeeID)
	assert.Equal(t, float64(8), views.WeeklySummary.Rows[0].DailyHours)
	assert.Equal(t, float64(8), views.WeeklySummary.Rows[0].WeeklyHours)
	assert.Equal(t, float64(16), views.WeeklySummary.Rows[1].WeeklyHours)
	assert.Equal(t, "2.5", views.WeeklySummary.Rows[0].Tasks[0].TotalTime)

	// The matrix stays ragged; the model does not pad short weeks.
	assert.Len(t, views.WeeklySummary.Rows[0].Tasks, 1)
	assert.Len(t, views.WeeklySummary.Rows[1].Tasks, 2)

	require.Len(t, views.WeekDetail.Rows, 2)
	assert.Equal(t, "Jun 1 - Jun 7", views.WeekDetail.Rows[0].DateRange)
	assert.Equal(t, "2.5", views.WeekDetail.Rows[0].TaskHours)
	assert.Equal(t, "0.8", views.WeekDetail.Rows[1].TaskHours)
	assert.Equal(t, 3, views.WeekDetail.TotalWorkDays)
	assert.Equal(t, "3.2", views.WeekDetail.TotalTaskHours)
	assert.Equal(t, fmt.Sprintf("%.2f", 3.25/3.0), views.WeekDetail.AverageHoursDay)
}

func TestAssembleAverageHoursDayZeroWhenNoWorkDays(t *testing.T) {
	engine := newEngine()

	agg := engine.Aggregate(report.AggregateRequest{
		FromDate: date("2024-06-01"),
		ToDate:   date("2024-06-07"),
	})

	views := engine.Assemble(report.AssembleRequest{
		Aggregation: agg,
		Board:       task.NewBoard(len(agg.Weeks)),
	})

	assert.Equal(t, "0.00", views.WeekDetail.AverageHoursDay)
	assert.Equal(t, "0h 0m 0s", views.AverageWorked.RangeAverageDaily)
}

func TestAssembleRangeAverageReconciles(t *testing.T) {
	engine := newEngine()

	records := []report.AttendanceRecord{
		record("2024-06-03", "09:00:00", "17:30:00", ""),
		record("2024-06-04", "08:45:00", "16:10:05", ""),
		record("2024-06-10", "10:00:00", "18:20:30", ""),
		record("2024-06-12", "09:15:00", "17:00:45", ""),
	}

	agg := engine.Aggregate(report.AggregateRequest{
		FromDate: date("2024-06-01"),
		ToDate:   date("2024-06-14"),
		Records:  records,
	})

	views := engine.Assemble(report.AssembleRequest{
		Aggregation: agg,
		Board:       task.NewBoard(len(agg.Weeks)),
	})

	// Deriving the range average from the formatted per-week strings must
	// match computing it directly from raw seconds.
	var totalSeconds, totalWorkDays int
	for _, bucket := range agg.Weeks {
		totalSeconds += bucket.TotalWorkedSeconds
		totalWorkDays += bucket.WorkDays
	}
	direct := timeofday.FormatLabel(totalSeconds / totalWorkDays)
	assert.Equal(t, direct, views.AverageWorked.RangeAverageDaily)
}
