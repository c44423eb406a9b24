package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ess-tools/attendance-report-go/internal/domain/report"
	"github.com/ess-tools/attendance-report-go/internal/domain/session"
	"github.com/ess-tools/attendance-report-go/internal/domain/task"
	"github.com/ess-tools/attendance-report-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SessionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Upload(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateRange(w http.ResponseWriter, r *http.Request)
	AddTaskEntry(w http.ResponseWriter, r *http.Request)
	UpdateTaskEntry(w http.ResponseWriter, r *http.Request)
}

type sessionHandlerImpl struct {
	sessionService session.Service
}

func NewSessionHandler(sessionService session.Service) SessionHandler {
	return &sessionHandlerImpl{
		sessionService: sessionService,
	}
}

// Create implements SessionHandler. The Authorization header is forwarded
// verbatim to the upstream ESS API.
func (h *sessionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req session.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Token = r.Header.Get("Authorization")

	result, err := h.sessionService.CreateFromAPI(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Report session created", result)
}

// Upload implements SessionHandler. It accepts a multipart form with a
// 'data' JSON field and a 'file' field holding an exported attendance
// report (either a bare record array or a {"content": [...]} wrapper).
func (h *sessionHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	var req session.UploadSessionRequest
	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}
	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Attendance report file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	records, err := decodeRecords(file)
	if err != nil {
		response.BadRequest(w, "Invalid attendance report file", nil)
		return
	}
	req.Records = records

	result, err := h.sessionService.CreateFromUpload(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Report session created", result)
}

// Get implements SessionHandler.
func (h *sessionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	result, err := h.sessionService.Get(r.Context(), sessionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateRange implements SessionHandler.
func (h *sessionHandlerImpl) UpdateRange(w http.ResponseWriter, r *http.Request) {
	var req session.UpdateRangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.SessionID = chi.URLParam(r, "sessionID")

	result, err := h.sessionService.UpdateRange(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AddTaskEntry implements SessionHandler.
func (h *sessionHandlerImpl) AddTaskEntry(w http.ResponseWriter, r *http.Request) {
	weekIndex, err := strconv.Atoi(chi.URLParam(r, "weekIndex"))
	if err != nil {
		response.BadRequest(w, "invalid week index", nil)
		return
	}

	result, err := h.sessionService.AddTaskEntry(r.Context(), session.AddTaskEntryRequest{
		SessionID: chi.URLParam(r, "sessionID"),
		WeekIndex: weekIndex,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateTaskEntry implements SessionHandler.
func (h *sessionHandlerImpl) UpdateTaskEntry(w http.ResponseWriter, r *http.Request) {
	weekIndex, err := strconv.Atoi(chi.URLParam(r, "weekIndex"))
	if err != nil {
		response.BadRequest(w, "invalid week index", nil)
		return
	}
	entryIndex, err := strconv.Atoi(chi.URLParam(r, "entryIndex"))
	if err != nil {
		response.BadRequest(w, "invalid entry index", nil)
		return
	}

	var patch task.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.sessionService.UpdateTaskEntry(r.Context(), session.UpdateTaskEntryRequest{
		SessionID:  chi.URLParam(r, "sessionID"),
		WeekIndex:  weekIndex,
		EntryIndex: entryIndex,
		Patch:      patch,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// decodeRecords reads an uploaded report payload. Exported files wrap the
// records in a "content" array; bare arrays are accepted too.
func decodeRecords(file io.Reader) ([]report.UpstreamRecord, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return nil, err
	}

	var records []report.UpstreamRecord
	if err := json.Unmarshal(raw, &records); err == nil {
		return records, nil
	}

	var wrapper struct {
		Content []report.UpstreamRecord `json:"content"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Content, nil
}
