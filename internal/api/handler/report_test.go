package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/smarthire/backend/internal/api/handler"
	"github.com/smarthire/backend/internal/report"
	"github.com/smarthire/backend/internal/store"
	"github.com/smarthire/backend/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockGetter struct {
	rec *models.PredictionRecord
	err error
}

func (m *mockGetter) GetPrediction(_ context.Context, id uuid.UUID) (*models.PredictionRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.rec, nil
}

// mockRenderer writes a stand-in PDF file into dir.
type mockRenderer struct {
	dir string
	err error
}

func (m *mockRenderer) Render(rec *models.PredictionRecord) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	path := filepath.Join(m.dir, report.Filename(rec.ID))
	if err := os.WriteFile(path, []byte("%PDF-1.7 test"), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// --- helpers ---

func pdfReq(t *testing.T, id string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/api/generate_pdf/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func storedRecord() *models.PredictionRecord {
	return &models.PredictionRecord{
		ID:          uuid.New(),
		Input:       map[string]any{"age": 30.0},
		Prediction:  1,
		Probability: 0.75,
		CreatedAt:   time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}
}

// --- generate_pdf tests ---

func TestGeneratePDFHandler_Success(t *testing.T) {
	rec := storedRecord()
	h := handler.NewGeneratePDFHandler(
		&mockGetter{rec: rec},
		&mockRenderer{dir: t.TempDir()},
	)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, pdfReq(t, rec.ID.String()))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename="+report.Filename(rec.ID),
		w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "%PDF")
}

func TestGeneratePDFHandler_UnknownID(t *testing.T) {
	h := handler.NewGeneratePDFHandler(
		&mockGetter{err: store.ErrNotFound},
		&mockRenderer{dir: t.TempDir()},
	)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, pdfReq(t, uuid.NewString()))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Prediction not found", errorMessage(t, w))
}

func TestGeneratePDFHandler_MalformedID(t *testing.T) {
	h := handler.NewGeneratePDFHandler(
		&mockGetter{rec: storedRecord()},
		&mockRenderer{dir: t.TempDir()},
	)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, pdfReq(t, "not-a-uuid"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Prediction not found", errorMessage(t, w))
}

func TestGeneratePDFHandler_StoreFailure(t *testing.T) {
	h := handler.NewGeneratePDFHandler(
		&mockGetter{err: errors.New("get prediction: connection refused")},
		&mockRenderer{dir: t.TempDir()},
	)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, pdfReq(t, uuid.NewString()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMessage(t, w), "connection refused")
}

func TestGeneratePDFHandler_RenderFailure(t *testing.T) {
	h := handler.NewGeneratePDFHandler(
		&mockGetter{rec: storedRecord()},
		&mockRenderer{err: errors.New("write report: permission denied")},
	)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, pdfReq(t, uuid.NewString()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMessage(t, w), "permission denied")
}

// --- reports file-serving tests ---

func reportReq(t *testing.T, filename string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/reports/"+filename, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("filename", filename)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestServeReportHandler_Success(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prediction_abc.pdf"), []byte("%PDF-1.7 test"), 0o644))

	h := handler.NewServeReportHandler(dir)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, reportReq(t, "prediction_abc.pdf"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "%PDF")
}

func TestServeReportHandler_Absent(t *testing.T) {
	h := handler.NewServeReportHandler(t.TempDir())
	w := httptest.NewRecorder()
	h.ServeHTTP(w, reportReq(t, "missing.pdf"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "File not found", errorMessage(t, w))
}

func TestServeReportHandler_TraversalRejected(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "secret"), []byte("x"), 0o644))

	h := handler.NewServeReportHandler(filepath.Join(dir, "reports"))

	for _, name := range []string{"../secret", "..", "a/b.pdf"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, reportReq(t, name))
		assert.Equal(t, http.StatusNotFound, w.Code, "filename %q", name)
	}
}
