package session

import "context"

// Service owns the live report sessions and drives full recomputation on
// every input change.
type Service interface {
	// CreateFromAPI fetches attendance and profile data from the upstream
	// ESS API and opens a session over them.
	CreateFromAPI(ctx context.Context, req CreateSessionRequest) (SessionResponse, error)

	// CreateFromUpload opens a session over an uploaded attendance report
	// payload.
	CreateFromUpload(ctx context.Context, req UploadSessionRequest) (SessionResponse, error)

	// Get returns the session's current report views.
	Get(ctx context.Context, sessionID string) (SessionResponse, error)

	// UpdateRange changes the reporting range, recomputes the report and
	// resets the task board.
	UpdateRange(ctx context.Context, req UpdateRangeRequest) (SessionResponse, error)

	// AddTaskEntry appends a default task entry to one week.
	AddTaskEntry(ctx context.Context, req AddTaskEntryRequest) (SessionResponse, error)

	// UpdateTaskEntry replaces one field of one task entry.
	UpdateTaskEntry(ctx context.Context, req UpdateTaskEntryRequest) (SessionResponse, error)

	// Snapshot returns the full session for exporting.
	Snapshot(ctx context.Context, sessionID string) (Session, error)
}
