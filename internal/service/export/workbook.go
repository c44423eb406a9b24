package export

import (
	"fmt"
	"time"

	"github.com/ess-tools/attendance-report-go/internal/domain/report"
	"github.com/ess-tools/attendance-report-go/internal/domain/session"
)

// Region tags a row for styling. The builder decides what to emit and how
// to tag it; the serializer maps tags to actual cell styles.
type Region string

const (
	RegionTitle    Region = "title"
	RegionHeader   Region = "header"
	RegionWeekData Region = "week_data"
	RegionData     Region = "data"
	RegionTotals   Region = "totals"
	RegionAverages Region = "averages"
	RegionBlank    Region = "blank"
)

// Row is one workbook row. ColorIndex selects a palette entry for week
// rows and is -1 everywhere else.
type Row struct {
	Region     Region
	ColorIndex int
	Cells      []any
}

// Workbook is the full description of the exported sheet. It is a pure
// projection of the assembled report: no totals are recomputed here.
type Workbook struct {
	SheetName string
	Rows      []Row
}

// palette holds the week fill colors; the index is bucketIndex mod its size.
var palette = []string{
	"FEF3C7", // amber
	"D1FAE5", // emerald
	"FCE7F3", // pink
	"CFFAFE", // cyan
	"ECFCCB", // lime
	"E0E7FF", // indigo
	"FAE8FF", // fuchsia
	"FFEDD5", // orange
	"CCFBF1", // teal
	"FEF9C3", // yellow
}

// PaletteColor returns the hex fill for a palette index, "" when unstyled.
func PaletteColor(index int) string {
	if index < 0 || index >= len(palette) {
		return ""
	}
	return palette[index]
}

func colorIndex(weekIndex int) int {
	if weekIndex < 1 {
		return -1
	}
	return weekIndex % len(palette)
}

// Filename names the exported workbook after the export date.
func Filename(exportedAt time.Time) string {
	return fmt.Sprintf("Employee_Report_%s.xlsx", exportedAt.Format("2006-01-02"))
}

// Build maps a session's report views into the workbook description.
func Build(sess session.Session) Workbook {
	wb := Workbook{SheetName: "Weekly Report"}
	views := sess.Views

	wb.appendSummary(views)
	wb.blank()
	wb.appendWeekDetail(views)
	wb.blank()
	wb.appendAverageWorked(views)
	wb.blank()
	wb.appendAttendanceDetail(views.AttendanceDetail)

	return wb
}

func (wb *Workbook) add(region Region, color int, cells ...any) {
	wb.Rows = append(wb.Rows, Row{Region: region, ColorIndex: color, Cells: cells})
}

func (wb *Workbook) blank() {
	wb.add(RegionBlank, -1)
}

func (wb *Workbook) appendSummary(views report.Views) {
	wb.add(RegionTitle, -1, "Employee Weekly Summary")

	maxTasks := 0
	for _, row := range views.WeeklySummary.Rows {
		if len(row.Tasks) > maxTasks {
			maxTasks = len(row.Tasks)
		}
	}

	header := []any{"Employee ID", "Name", "Designation", "Department", "Week", "Daily Hours", "Weekly Hours"}
	for i := 0; i < maxTasks; i++ {
		header = append(header,
			fmt.Sprintf("Task %d", i+1), "Frequency", "Time Required", "Total Time")
	}
	wb.add(RegionHeader, -1, header...)

	for i, row := range views.WeeklySummary.Rows {
		cells := make([]any, 0, len(header))
		if i == 0 {
			cells = append(cells,
				views.Profile.EmployeeID,
				views.Profile.FullName,
				views.Profile.Designation,
				views.Profile.Department,
			)
		} else {
			cells = append(cells, "", "", "", "")
		}
		cells = append(cells, row.Week, row.DailyHours, row.WeeklyHours)

		// The model is ragged; the sheet pads short weeks.
		for t := 0; t < maxTasks; t++ {
			if t < len(row.Tasks) {
				cell := row.Tasks[t]
				cells = append(cells, cell.Name, cell.Frequency, cell.TimeRequired, cell.TotalTime)
			} else {
				cells = append(cells, "", "", "", "")
			}
		}
		wb.add(RegionWeekData, colorIndex(row.WeekIndex), cells...)
	}
}

func (wb *Workbook) appendWeekDetail(views report.Views) {
	wb.add(RegionTitle, -1, "Week Details")
	wb.add(RegionHeader, -1, "Week", "Date Range", "Work Days", "Weekly Task Hours")

	for i, row := range views.WeekDetail.Rows {
		wb.add(RegionWeekData, colorIndex(i+1), row.Week, row.DateRange, row.WorkDays, row.TaskHours)
	}

	wb.add(RegionTotals, -1, "Total", "", views.WeekDetail.TotalWorkDays, views.WeekDetail.TotalTaskHours)
	wb.add(RegionAverages, -1, "Average Hours/Day", "", "", views.WeekDetail.AverageHoursDay)
}

func (wb *Workbook) appendAverageWorked(views report.Views) {
	wb.add(RegionTitle, -1, "Weekly Average Worked Duration")
	wb.add(RegionHeader, -1, "Week", "Weekly Hours", "Average Daily Duration")

	for i, row := range views.AverageWorked.Rows {
		wb.add(RegionWeekData, colorIndex(i+1), row.Week, row.ActualWeeklyHours, row.AverageDaily)
	}

	wb.add(RegionAverages, -1, "Average Hours/Day", "", views.AverageWorked.RangeAverageDaily)
}

func (wb *Workbook) appendAttendanceDetail(rows []report.AttendanceDetailRow) {
	wb.add(RegionTitle, -1, "Full Attendance Sheet")
	wb.add(RegionHeader, -1, "Date", "Weekday", "Check In", "Check Out", "Worked Duration", "Remarks", "Week")

	for _, row := range rows {
		duration := row.WorkedDuration
		if duration == "" {
			duration = "--"
		}
		wb.add(RegionData, colorIndex(row.WeekIndex),
			row.Date, row.Weekday, row.CheckIn, row.CheckOut, duration, row.Remarks, row.Week)
	}
}
