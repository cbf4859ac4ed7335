package research

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/CybrFarhvn06/Codex/internal/cache"
	"github.com/CybrFarhvn06/Codex/internal/models"
	"github.com/CybrFarhvn06/Codex/internal/synth"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// StudentStore defines the PostgreSQL surface for students and their history.
type StudentStore interface {
	UpsertStudent(ctx context.Context, name, email, institution string) (*models.Student, error)
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	InsertLog(ctx context.Context, log *models.ResearchLog) error
	ListLogsByStudent(ctx context.Context, studentID string) ([]models.ResearchLog, error)
	DeleteLog(ctx context.Context, id string) error
}

// ReportStore defines the interface for report document persistence.
type ReportStore interface {
	Insert(ctx context.Context, doc *models.ReportDocument) error
	GetByResearchID(ctx context.Context, researchID string) (*models.ReportDocument, error)
	DeleteByResearchID(ctx context.Context, researchID string) error
}

// FileStore defines the interface for markdown export storage.
type FileStore interface {
	SaveMarkdown(ctx context.Context, studentID, researchID string, data []byte) error
	GetMarkdown(ctx context.Context, studentID, researchID string) ([]byte, error)
	RemoveMarkdown(ctx context.Context, studentID, researchID string) error
}

// Synthesizer produces a report and names the generator that built it.
type Synthesizer interface {
	Synthesize(ctx context.Context, topic, query string) (*models.Report, string)
}

// ReportCache short-circuits synthesis for repeated topic/query pairs.
type ReportCache interface {
	Get(ctx context.Context, topic, query string) (*cache.Entry, bool)
	Set(ctx context.Context, topic, query string, entry *cache.Entry)
}

// Handler holds the research HTTP handlers.
type Handler struct {
	students StudentStore
	reports  ReportStore
	files    FileStore
	engine   Synthesizer
	cache    ReportCache
	logger   *zap.Logger
}

func NewHandler(students StudentStore, reports ReportStore, files FileStore,
	engine Synthesizer, reportCache ReportCache, logger *zap.Logger) *Handler {
	return &Handler{
		students: students,
		reports:  reports,
		files:    files,
		engine:   engine,
		cache:    reportCache,
		logger:   logger,
	}
}

// ResearchResponse is the body returned by POST /api/research.
type ResearchResponse struct {
	Message    string         `json:"message"`
	ResearchID string         `json:"research_id"`
	StudentID  string         `json:"student_id"`
	Generator  string         `json:"generator"`
	Report     *models.Report `json:"report"`
}

// HistoryResponse is the body returned by GET /api/history/{studentID}.
type HistoryResponse struct {
	Student *models.Student      `json:"student"`
	History []models.ResearchLog `json:"history"`
}

// Generate runs the full pipeline: validate, synthesize, archive, persist.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var raw models.ResearchRequest
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req, err := normalizeRequest(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, generator := h.synthesize(r.Context(), req.Topic, req.Query)

	student, err := h.students.UpsertStudent(r.Context(), req.StudentName, req.StudentEmail, req.Institution)
	if err != nil {
		h.logger.Error("student upsert failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to save student")
		return
	}

	researchID := uuid.NewString()
	logRow := &models.ResearchLog{
		ID:        researchID,
		StudentID: student.ID,
		Topic:     req.Topic,
		Query:     req.Query,
		Generator: generator,
	}
	if err := h.students.InsertLog(r.Context(), logRow); err != nil {
		h.logger.Error("research log insert failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to save research")
		return
	}

	doc := &models.ReportDocument{
		ResearchID: researchID,
		StudentID:  student.ID,
		Topic:      req.Topic,
		Query:      req.Query,
		Generator:  generator,
		Report:     *report,
	}
	if err := h.reports.Insert(r.Context(), doc); err != nil {
		h.logger.Error("report document insert failed", zap.Error(err))
		// Roll the history row back so history never points at a missing report.
		if derr := h.students.DeleteLog(r.Context(), researchID); derr != nil {
			h.logger.Error("research log rollback failed", zap.Error(derr))
		}
		writeError(w, http.StatusInternalServerError, "failed to save research")
		return
	}

	// The export is a convenience copy; losing it never fails the request.
	if h.files != nil {
		markdown := synth.RenderMarkdown(req.Topic, report)
		if err := h.files.SaveMarkdown(r.Context(), student.ID, researchID, []byte(markdown)); err != nil {
			h.logger.Warn("markdown export failed", zap.Error(err))
		}
	}

	writeJSON(w, http.StatusCreated, ResearchResponse{
		Message:    "Research report generated successfully.",
		ResearchID: researchID,
		StudentID:  student.ID,
		Generator:  generator,
		Report:     report,
	})
}

func (h *Handler) synthesize(ctx context.Context, topic, query string) (*models.Report, string) {
	if h.cache != nil {
		if entry, ok := h.cache.Get(ctx, topic, query); ok {
			return entry.Report, entry.Generator
		}
	}
	report, generator := h.engine.Synthesize(ctx, topic, query)
	if h.cache != nil {
		h.cache.Set(ctx, topic, query, &cache.Entry{Generator: generator, Report: report})
	}
	return report, generator
}

// History returns a student's profile and their past research, newest first.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "studentID")
	student, err := h.students.GetStudent(r.Context(), studentID)
	if err != nil {
		writeError(w, http.StatusNotFound, "student not found")
		return
	}

	logs, err := h.students.ListLogsByStudent(r.Context(), studentID)
	if err != nil {
		h.logger.Error("history query failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	if logs == nil {
		logs = []models.ResearchLog{}
	}
	writeJSON(w, http.StatusOK, HistoryResponse{Student: student, History: logs})
}

// Detail returns one stored report with its request context.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	researchID := chi.URLParam(r, "researchID")
	doc, err := h.reports.GetByResearchID(r.Context(), researchID)
	if err != nil {
		writeError(w, http.StatusNotFound, "research not found")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// DownloadMarkdown streams the markdown export of a stored report. When the
// archive copy is missing the export is re-rendered from the stored report,
// which yields identical bytes.
func (h *Handler) DownloadMarkdown(w http.ResponseWriter, r *http.Request) {
	researchID := chi.URLParam(r, "researchID")
	doc, err := h.reports.GetByResearchID(r.Context(), researchID)
	if err != nil {
		writeError(w, http.StatusNotFound, "research not found")
		return
	}

	var data []byte
	if h.files != nil {
		data, err = h.files.GetMarkdown(r.Context(), doc.StudentID, doc.ResearchID)
		if err != nil {
			h.logger.Warn("markdown fetch failed, re-rendering", zap.Error(err))
			data = nil
		}
	}
	if data == nil {
		data = []byte(synth.RenderMarkdown(doc.Topic, &doc.Report))
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=report.md")
	w.Write(data)
}

// Delete removes a research entry: its document, export, and history row.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	researchID := chi.URLParam(r, "researchID")
	doc, err := h.reports.GetByResearchID(r.Context(), researchID)
	if err != nil {
		writeError(w, http.StatusNotFound, "research not found")
		return
	}

	if h.files != nil {
		if err := h.files.RemoveMarkdown(r.Context(), doc.StudentID, doc.ResearchID); err != nil {
			h.logger.Warn("markdown removal failed", zap.Error(err))
		}
	}
	if err := h.reports.DeleteByResearchID(r.Context(), researchID); err != nil {
		h.logger.Error("report document delete failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "delete failed")
		return
	}
	if err := h.students.DeleteLog(r.Context(), researchID); err != nil {
		h.logger.Error("research log delete failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "delete failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

// Health reports service liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
