package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripdesk/quotation-parser/internal/common"
	"github.com/tripdesk/quotation-parser/internal/export"
	"github.com/tripdesk/quotation-parser/internal/pipeline"
)

// Server exposes the extraction pipeline over HTTP: one multipart upload
// in, one structured quotation out.
type Server struct {
	processor *pipeline.Processor
	exporter  *export.Service
	maxBytes  int64
	logger    *slog.Logger
}

func New(proc *pipeline.Processor, exp *export.Service, maxBytes int64, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{processor: proc, exporter: exp, maxBytes: maxBytes, logger: logger}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(Logging(s.logger))
	r.Get("/health", s.handleHealth)
	r.Post("/extract", s.handleExtract)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "service": "quotation-parser"})
}

// handleExtract accepts a multipart form with a single "file" part plus its
// declared content type, runs the pipeline, and returns the record as JSON
// (or as an XLSX workbook with ?format=xlsx).
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBytes)
	if err := r.ParseMultipartForm(s.maxBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, r, http.StatusRequestEntityTooLarge, "file exceeds the upload size limit")
			return
		}
		s.writeError(w, r, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, "could not read uploaded file")
		return
	}

	mediaType := header.Header.Get("Content-Type")
	rec, err := s.processor.Process(r.Context(), data, mediaType, header.Filename)
	if err != nil {
		s.writeProcessError(w, r, err)
		return
	}

	if r.URL.Query().Get("format") == "xlsx" {
		book, err := s.exporter.QuotationXLSX(rec)
		if err != nil {
			s.writeError(w, r, http.StatusInternalServerError, "could not build workbook")
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="quotation.xlsx"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(book)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// writeProcessError maps pipeline errors to client-facing statuses.
// Model-service failures never reach here; the pipeline absorbs them.
func (s *Server) writeProcessError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrNoFile):
		s.writeError(w, r, http.StatusBadRequest, "no file provided")
	case errors.Is(err, common.ErrUnsupportedMediaType):
		s.writeError(w, r, http.StatusBadRequest, "unsupported file type; upload a PDF, DOCX, or plain-text document")
	case errors.Is(err, common.ErrInsufficientContent):
		s.writeError(w, r, http.StatusUnprocessableEntity, "could not extract enough text from the document")
	default:
		var appErr *common.AppError
		msg := "failed to process document"
		if errors.As(err, &appErr) {
			msg = appErr.Message
		}
		s.logger.Error("http.extract.processing_failure", "request_id", RequestID(r.Context()), "error", err)
		s.writeError(w, r, http.StatusInternalServerError, msg)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if status >= 500 {
		s.logger.Error("http.error", "request_id", RequestID(r.Context()), "status", status, "message", message)
	} else {
		s.logger.Warn("http.error", "request_id", RequestID(r.Context()), "status", status, "message", message)
	}
	writeJSON(w, status, map[string]any{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
