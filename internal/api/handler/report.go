package handler

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/smarthire/backend/internal/api/response"
	"github.com/smarthire/backend/internal/report"
	"github.com/smarthire/backend/internal/store"
	"github.com/smarthire/backend/pkg/models"
)

// PredictionGetter fetches one stored prediction by id.
type PredictionGetter interface {
	GetPrediction(ctx context.Context, id uuid.UUID) (*models.PredictionRecord, error)
}

// ReportRenderer writes the PDF for a record and returns the file path.
type ReportRenderer interface {
	Render(rec *models.PredictionRecord) (string, error)
}

// NewGeneratePDFHandler returns the handler for GET /api/generate_pdf/{id}:
// fetch the record, render its report, and stream the PDF as an attachment.
// An unparseable or unknown id maps to 404; render failures map to 400.
func NewGeneratePDFHandler(getter PredictionGetter, renderer ReportRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			response.Error(w, http.StatusNotFound, "Prediction not found")
			return
		}

		rec, err := getter.GetPrediction(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Prediction not found")
			return
		}
		if err != nil {
			response.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		path, err := renderer.Render(rec)
		if err != nil {
			response.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename="+report.Filename(rec.ID))
		http.ServeFile(w, r, path)
	}
}

// NewServeReportHandler returns the handler for GET /reports/{filename},
// serving a previously generated report file by name.
func NewServeReportHandler(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := chi.URLParam(r, "filename")
		if filename == "" || strings.ContainsAny(filename, `/\`) || strings.Contains(filename, "..") {
			response.Error(w, http.StatusNotFound, "File not found")
			return
		}

		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err != nil {
			response.Error(w, http.StatusNotFound, "File not found")
			return
		}

		http.ServeFile(w, r, path)
	}
}
