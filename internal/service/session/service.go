package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ess-tools/attendance-report-go/internal/domain/profile"
	"github.com/ess-tools/attendance-report-go/internal/domain/report"
	"github.com/ess-tools/attendance-report-go/internal/domain/session"
	"github.com/ess-tools/attendance-report-go/internal/pkg/validator"
	taskService "github.com/ess-tools/attendance-report-go/internal/service/task"
	"github.com/google/uuid"
)

// Fetcher retrieves attendance and profile data from the upstream ESS API.
type Fetcher interface {
	FetchAttendance(ctx context.Context, token, fromDate, toDate string, size int) ([]report.UpstreamRecord, error)
	FetchProfile(ctx context.Context, token string) (profile.Profile, error)
}

const defaultFetchSize = 100

type SessionServiceImpl struct {
	fetcher Fetcher
	engine  report.Service
	editor  *taskService.Editor
	ttl     time.Duration

	mu       sync.RWMutex
	sessions map[string]*session.Session
}

// NewSessionService builds the session store. ttl bounds how long an
// untouched session survives before the sweeper removes it.
func NewSessionService(fetcher Fetcher, engine report.Service, editor *taskService.Editor, ttl time.Duration) *SessionServiceImpl {
	return &SessionServiceImpl{
		fetcher:  fetcher,
		engine:   engine,
		editor:   editor,
		ttl:      ttl,
		sessions: make(map[string]*session.Session),
	}
}

// CreateFromAPI implements session.Service.
func (s *SessionServiceImpl) CreateFromAPI(ctx context.Context, req session.CreateSessionRequest) (session.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return session.SessionResponse{}, err
	}

	size := req.Size
	if size == 0 {
		size = defaultFetchSize
	}

	upstream, err := s.fetcher.FetchAttendance(ctx, req.Token, req.FromDate, req.ToDate, size)
	if err != nil {
		return session.SessionResponse{}, fmt.Errorf("failed to fetch attendance report: %w", err)
	}

	prof, err := s.fetcher.FetchProfile(ctx, req.Token)
	if err != nil {
		return session.SessionResponse{}, fmt.Errorf("failed to fetch employee profile: %w", err)
	}

	records, err := convertRecords(upstream)
	if err != nil {
		return session.SessionResponse{}, err
	}

	return s.create(req.FromDate, req.ToDate, records, prof)
}

// CreateFromUpload implements session.Service.
func (s *SessionServiceImpl) CreateFromUpload(ctx context.Context, req session.UploadSessionRequest) (session.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return session.SessionResponse{}, err
	}

	records, err := convertRecords(req.Records)
	if err != nil {
		return session.SessionResponse{}, err
	}

	return s.create(req.FromDate, req.ToDate, records, req.Profile)
}

// Get implements session.Service.
func (s *SessionServiceImpl) Get(ctx context.Context, sessionID string) (session.SessionResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return session.SessionResponse{}, session.ErrSessionNotFound
	}
	return response(sess), nil
}

// UpdateRange implements session.Service. Changing the range recomputes the
// whole report and resets the task board to one default entry per week.
func (s *SessionServiceImpl) UpdateRange(ctx context.Context, req session.UpdateRangeRequest) (session.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return session.SessionResponse{}, err
	}

	fromDate, _ := validator.ParseDate(req.FromDate)
	toDate, _ := validator.ParseDate(req.ToDate)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[req.SessionID]
	if !ok {
		return session.SessionResponse{}, session.ErrSessionNotFound
	}

	sess.FromDate = fromDate
	sess.ToDate = toDate

	agg := s.engine.Aggregate(report.AggregateRequest{
		FromDate: sess.FromDate,
		ToDate:   sess.ToDate,
		Records:  sess.Records,
	})
	sess.Board = s.editor.Reset(len(agg.Weeks))
	sess.Views = s.engine.Assemble(report.AssembleRequest{
		Profile:     sess.Profile,
		Aggregation: agg,
		Board:       sess.Board,
	})
	sess.UpdatedAt = time.Now()

	return response(sess), nil
}

// AddTaskEntry implements session.Service.
func (s *SessionServiceImpl) AddTaskEntry(ctx context.Context, req session.AddTaskEntryRequest) (session.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[req.SessionID]
	if !ok {
		return session.SessionResponse{}, session.ErrSessionNotFound
	}

	board, err := s.editor.AddEntry(sess.Board, req.WeekIndex)
	if err != nil {
		return session.SessionResponse{}, err
	}
	sess.Board = board
	s.recompute(sess)

	return response(sess), nil
}

// UpdateTaskEntry implements session.Service.
func (s *SessionServiceImpl) UpdateTaskEntry(ctx context.Context, req session.UpdateTaskEntryRequest) (session.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[req.SessionID]
	if !ok {
		return session.SessionResponse{}, session.ErrSessionNotFound
	}

	board, err := s.editor.UpdateEntry(sess.Board, req.WeekIndex, req.EntryIndex, req.Patch)
	if err != nil {
		return session.SessionResponse{}, err
	}
	sess.Board = board
	s.recompute(sess)

	return response(sess), nil
}

// Snapshot implements session.Service.
func (s *SessionServiceImpl) Snapshot(ctx context.Context, sessionID string) (session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return session.Session{}, session.ErrSessionNotFound
	}
	return *sess, nil
}

// SweepExpired removes sessions untouched for longer than the TTL. Wired
// into the cron scheduler.
func (s *SessionServiceImpl) SweepExpired(ctx context.Context) error {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
	return nil
}

// Len reports the number of live sessions.
func (s *SessionServiceImpl) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionServiceImpl) create(fromDate, toDate string, records []report.AttendanceRecord, prof profile.Profile) (session.SessionResponse, error) {
	from, _ := validator.ParseDate(fromDate)
	to, _ := validator.ParseDate(toDate)

	now := time.Now()
	sess := &session.Session{
		ID:        uuid.NewString(),
		FromDate:  from,
		ToDate:    to,
		Records:   records,
		Profile:   prof,
		CreatedAt: now,
		UpdatedAt: now,
	}

	agg := s.engine.Aggregate(report.AggregateRequest{
		FromDate: sess.FromDate,
		ToDate:   sess.ToDate,
		Records:  sess.Records,
	})
	sess.Board = s.editor.Reset(len(agg.Weeks))
	sess.Views = s.engine.Assemble(report.AssembleRequest{
		Profile:     sess.Profile,
		Aggregation: agg,
		Board:       sess.Board,
	})

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return response(sess), nil
}

// recompute rebuilds the session's views from scratch. There is no
// incremental path.
func (s *SessionServiceImpl) recompute(sess *session.Session) {
	agg := s.engine.Aggregate(report.AggregateRequest{
		FromDate: sess.FromDate,
		ToDate:   sess.ToDate,
		Records:  sess.Records,
	})
	sess.Views = s.engine.Assemble(report.AssembleRequest{
		Profile:     sess.Profile,
		Aggregation: agg,
		Board:       sess.Board,
	})
	sess.UpdatedAt = time.Now()
}

func convertRecords(upstream []report.UpstreamRecord) ([]report.AttendanceRecord, error) {
	records := make([]report.AttendanceRecord, 0, len(upstream))
	for i, u := range upstream {
		rec, err := u.ToRecord()
		if err != nil {
			return nil, fmt.Errorf("%w: record %d (%q)", report.ErrInvalidRecordDate, i, u.Date)
		}
		records = append(records, rec)
	}
	return records, nil
}

func response(sess *session.Session) session.SessionResponse {
	return session.SessionResponse{
		SessionID: sess.ID,
		FromDate:  sess.FromDate.Format("2006-01-02"),
		ToDate:    sess.ToDate.Format("2006-01-02"),
		Report:    sess.Views,
	}
}
