package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/ess-tools/attendance-report-go/internal/domain/profile"
	"github.com/ess-tools/attendance-report-go/internal/domain/report"
	"github.com/ess-tools/attendance-report-go/internal/domain/session"
	"github.com/ess-tools/attendance-report-go/internal/domain/task"
	reportService "github.com/ess-tools/attendance-report-go/internal/service/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSession(t *testing.T) session.Session {
	t.Helper()

	engine := reportService.NewReportService(time.Thursday)
	from, _ := time.Parse("2006-01-02", "2024-06-01")
	to, _ := time.Parse("2006-01-02", "2024-06-14")

	records := []report.AttendanceRecord{
		{Date: from.AddDate(0, 0, 2), CheckIn: "09:00:00", CheckOut: "17:30:00"},
		{Date: from.AddDate(0, 0, 9), CheckIn: "09:00:00", CheckOut: "17:00:00"},
	}

	agg := engine.Aggregate(report.AggregateRequest{FromDate: from, ToDate: to, Records: records})
	board := task.NewBoard(len(agg.Weeks))
	views := engine.Assemble(report.AssembleRequest{
		Profile:     profile.Profile{EmployeeID: "710003676", FullName: "Md. Shakil Khan"},
		Aggregation: agg,
		Board:       board,
	})

	return session.Session{
		FromDate: from,
		ToDate:   to,
		Records:  records,
		Board:    board,
		Views:    views,
	}
}

func TestFilenameEmbedsExportDate(t *testing.T) {
	exportedAt, _ := time.Parse("2006-01-02", "2024-06-15")
	assert.Equal(t, "Employee_Report_2024-06-15.xlsx", Filename(exportedAt))
}

func TestBuildMirrorsReportViews(t *testing.T) {
	sess := buildSession(t)
	wb := Build(sess)

	require.NotEmpty(t, wb.Rows)
	assert.Equal(t, "Weekly Report", wb.SheetName)

	// The workbook reproduces assembled values without recomputation.
	var titles []string
	weekDataRows := 0
	for _, row := range wb.Rows {
		switch row.Region {
		case RegionTitle:
			titles = append(titles, row.Cells[0].(string))
		case RegionWeekData:
			weekDataRows++
		}
	}
	assert.Equal(t, []string{
		"Employee Weekly Summary",
		"Week Details",
		"Weekly Average Worked Duration",
		"Full Attendance Sheet",
	}, titles)
	// Two weeks appear in each of the three week-level sections.
	assert.Equal(t, 6, weekDataRows)

	// Profile is attached once, on the first summary data row.
	for i, row := range wb.Rows {
		if row.Region == RegionWeekData {
			assert.Equal(t, "710003676", row.Cells[0])
			assert.Equal(t, "", wb.Rows[i+1].Cells[0], "second week must not repeat the profile")
			break
		}
	}
}

func TestBuildColorIndexFollowsWeekNumber(t *testing.T) {
	sess := buildSession(t)
	wb := Build(sess)

	for _, row := range wb.Rows {
		if row.Region == RegionWeekData || row.Region == RegionData {
			assert.GreaterOrEqual(t, row.ColorIndex, 0)
			assert.Less(t, row.ColorIndex, 10)
		}
	}
	assert.Equal(t, "", PaletteColor(-1))
	assert.NotEqual(t, PaletteColor(1), PaletteColor(2))
}

func TestBuildMarksMissingDurations(t *testing.T) {
	sess := buildSession(t)
	sess.Views.AttendanceDetail = append(sess.Views.AttendanceDetail, report.AttendanceDetailRow{
		Date: "20/06/2024", Weekday: "Thursday", Week: report.UnmatchedWeekLabel,
	})
	wb := Build(sess)

	last := wb.Rows[len(wb.Rows)-1]
	require.Equal(t, RegionData, last.Region)
	assert.Equal(t, "--", last.Cells[4])
	assert.Equal(t, -1, last.ColorIndex, "unmatched rows carry no week color")
}

func TestWriteXLSXProducesWorkbook(t *testing.T) {
	sess := buildSession(t)
	wb := Build(sess)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(wb, &buf))
	// XLSX containers are zip archives.
	assert.Equal(t, []byte{'P', 'K'}, buf.Bytes()[:2])
}
