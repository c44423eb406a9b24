package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ess-tools/attendance-report-go/internal/domain/session"
	"github.com/ess-tools/attendance-report-go/internal/handler/http/response"
	"github.com/ess-tools/attendance-report-go/internal/service/export"
	"github.com/go-chi/chi/v5"
)

type ExportHandler interface {
	Download(w http.ResponseWriter, r *http.Request)
}

type exportHandlerImpl struct {
	sessionService session.Service
}

func NewExportHandler(sessionService session.Service) ExportHandler {
	return &exportHandlerImpl{
		sessionService: sessionService,
	}
}

// Download implements ExportHandler. It streams the session's report as a
// styled XLSX workbook.
func (h *exportHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	snapshot, err := h.sessionService.Snapshot(r.Context(), sessionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	workbook := export.Build(snapshot)

	// Serialize into memory first so a late failure still yields a clean
	// JSON error instead of a truncated download.
	var buf bytes.Buffer
	if err := export.WriteXLSX(workbook, &buf); err != nil {
		slog.Error("Failed to serialize workbook", "session_id", sessionID, "error", err)
		response.InternalServerError(w, "Failed to build workbook")
		return
	}

	filename := export.Filename(time.Now())
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to stream workbook", "session_id", sessionID, "error", err)
	}
}
