package task

// DefaultDailyHours is the expected daily working time in hours, used when
// an entry does not override it.
const DefaultDailyHours = 8

// Entry is one user-declared recurring activity for a given week.
// Frequency and TimeRequired are kept as entered; TotalHours applies the
// coercion rules so a stored value can never desync from its factors.
type Entry struct {
	Name         string  `json:"name"`
	Frequency    float64 `json:"frequency"`
	TimeRequired float64 `json:"time_required"`
	DailyHours   float64 `json:"daily_hours"`
}

// NewEntry returns the default blank entry every week starts with.
func NewEntry() Entry {
	return Entry{DailyHours: DefaultDailyHours}
}

// TotalHours is frequency × timeRequired, with non-finite or negative
// factors coerced to 0 so NaN never propagates into totals.
func (e Entry) TotalHours() float64 {
	freq := coerce(e.Frequency)
	req := coerce(e.TimeRequired)
	return freq * req
}

// EffectiveDailyHours returns the entry's daily-hours override, falling
// back to the default when the stored value is not a positive finite number.
func (e Entry) EffectiveDailyHours() float64 {
	if !isFinite(e.DailyHours) || e.DailyHours <= 0 {
		return DefaultDailyHours
	}
	return e.DailyHours
}

func coerce(v float64) float64 {
	if !isFinite(v) || v < 0 {
		return 0
	}
	return v
}

func isFinite(v float64) bool {
	return v == v && v > -1e308 && v < 1e308
}

// Board holds one ordered entry list per week bucket, indexed 1-based by
// bucket number. It is reset wholesale whenever the bucket list changes.
type Board struct {
	Weeks [][]Entry `json:"weeks"`
}

// NewBoard returns a board with one default entry per week.
func NewBoard(weekCount int) Board {
	weeks := make([][]Entry, weekCount)
	for i := range weeks {
		weeks[i] = []Entry{NewEntry()}
	}
	return Board{Weeks: weeks}
}

// Entries returns the entry list for a 1-based week index.
func (b Board) Entries(weekIndex int) ([]Entry, error) {
	if weekIndex < 1 || weekIndex > len(b.Weeks) {
		return nil, ErrWeekNotFound
	}
	return b.Weeks[weekIndex-1], nil
}

// WeekTotalHours sums entry totals for a 1-based week index. Out-of-range
// indexes contribute nothing; totals never fault.
func (b Board) WeekTotalHours(weekIndex int) float64 {
	if weekIndex < 1 || weekIndex > len(b.Weeks) {
		return 0
	}
	var total float64
	for _, entry := range b.Weeks[weekIndex-1] {
		total += entry.TotalHours()
	}
	return total
}

// TotalHours sums entry totals across every week.
func (b Board) TotalHours() float64 {
	var total float64
	for i := range b.Weeks {
		total += b.WeekTotalHours(i + 1)
	}
	return total
}

// DailyHours returns the effective daily-hours override for a week, taken
// from its first entry as the editing surface does.
func (b Board) DailyHours(weekIndex int) float64 {
	if weekIndex < 1 || weekIndex > len(b.Weeks) || len(b.Weeks[weekIndex-1]) == 0 {
		return DefaultDailyHours
	}
	return b.Weeks[weekIndex-1][0].EffectiveDailyHours()
}
