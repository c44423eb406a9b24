package task

import "errors"

// Task board errors. Unknown indexes are caller bugs, surfaced loudly
// instead of silently producing wrong totals.
var (
	ErrWeekNotFound  = errors.New("week index does not exist on the task board")
	ErrEntryNotFound = errors.New("task entry index does not exist in this week")
	ErrUnknownField  = errors.New("unknown task entry field")
)
