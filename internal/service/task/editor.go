package task

import (
	"math"
	"strconv"

	"github.com/ess-tools/attendance-report-go/internal/domain/task"
)

// Editor applies user edits to a task board. Edits are last-write-wins on a
// single (week, entry, field) triple and never touch any other entry.
type Editor struct{}

func NewEditor() *Editor {
	return &Editor{}
}

// Reset returns a fresh board for a new bucket list: one default entry per
// week. Prior edits are deliberately discarded, not merged.
func (e *Editor) Reset(weekCount int) task.Board {
	return task.NewBoard(weekCount)
}

// AddEntry appends a default blank entry to the given 1-based week.
func (e *Editor) AddEntry(board task.Board, weekIndex int) (task.Board, error) {
	if weekIndex < 1 || weekIndex > len(board.Weeks) {
		return task.Board{}, task.ErrWeekNotFound
	}

	next := cloneBoard(board)
	next.Weeks[weekIndex-1] = append(next.Weeks[weekIndex-1], task.NewEntry())
	return next, nil
}

// UpdateEntry replaces one field of one entry, immutably. Unknown indexes
// are precondition violations and fail loudly.
func (e *Editor) UpdateEntry(board task.Board, weekIndex, entryIndex int, patch task.UpdateEntryRequest) (task.Board, error) {
	if err := patch.Validate(); err != nil {
		return task.Board{}, err
	}
	if weekIndex < 1 || weekIndex > len(board.Weeks) {
		return task.Board{}, task.ErrWeekNotFound
	}
	week := board.Weeks[weekIndex-1]
	if entryIndex < 0 || entryIndex >= len(week) {
		return task.Board{}, task.ErrEntryNotFound
	}

	entry := week[entryIndex]
	switch patch.Field {
	case task.FieldName:
		entry.Name = patch.Value
	case task.FieldFrequency:
		entry.Frequency = parseNumber(patch.Value)
	case task.FieldTimeRequired:
		entry.TimeRequired = parseNumber(patch.Value)
	case task.FieldDailyHours:
		entry.DailyHours = parseNumber(patch.Value)
	default:
		return task.Board{}, task.ErrUnknownField
	}

	next := cloneBoard(board)
	next.Weeks[weekIndex-1][entryIndex] = entry
	return next, nil
}

// parseNumber coerces an edited value to a finite float, 0 when the input
// is unparsable, non-finite or negative.
func parseNumber(value string) float64 {
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return n
}

func cloneBoard(board task.Board) task.Board {
	weeks := make([][]task.Entry, len(board.Weeks))
	for i, week := range board.Weeks {
		weeks[i] = append([]task.Entry(nil), week...)
	}
	return task.Board{Weeks: weeks}
}
