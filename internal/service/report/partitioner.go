package report

import (
	"time"

	"github.com/ess-tools/attendance-report-go/internal/domain/report"
)

// partitionWeeks splits [from, to] into consecutive 7-day buckets aligned
// to the range start, clamping the final bucket to the range end. An
// inverted range yields no buckets. Numbering starts at 1 and is a pure
// function of the range.
func partitionWeeks(from, to time.Time) []report.WeekBucket {
	var buckets []report.WeekBucket

	index := 1
	for cursor := from; !cursor.After(to); cursor = cursor.AddDate(0, 0, 7) {
		end := cursor.AddDate(0, 0, 6)
		if end.After(to) {
			end = to
		}
		buckets = append(buckets, report.WeekBucket{
			Index:     index,
			StartDate: cursor,
			EndDate:   end,
		})
		index++
	}

	return buckets
}
