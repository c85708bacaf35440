package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	mw "github.com/smarthire/backend/internal/api/middleware"
	"github.com/smarthire/backend/internal/api/response"
)

// Dependencies holds all handler and middleware dependencies for the router.
type Dependencies struct {
	RateLimit *mw.RateLimit

	HealthHandler      http.HandlerFunc
	PredictHandler     http.HandlerFunc
	HistoryHandler     http.HandlerFunc
	GeneratePDFHandler http.HandlerFunc
	ServeReportHandler http.HandlerFunc
	ContactHandler     http.HandlerFunc
}

// NewRouter builds the Chi router with middleware stack and all routes.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Logger)
	r.Use(mw.Recovery)

	r.Get("/api/health", orNotImplemented(deps.HealthHandler))

	// Rate-limited API routes
	r.Group(func(r chi.Router) {
		if deps.RateLimit != nil {
			r.Use(deps.RateLimit.Limit)
		}

		r.Post("/api/predict", orNotImplemented(deps.PredictHandler))
		r.Get("/api/history", orNotImplemented(deps.HistoryHandler))
		r.Get("/api/generate_pdf/{id}", orNotImplemented(deps.GeneratePDFHandler))
		r.Post("/api/contact", orNotImplemented(deps.ContactHandler))
	})

	// Generated report files are served without rate limiting
	r.Get("/reports/{filename}", orNotImplemented(deps.ServeReportHandler))

	return r
}

// orNotImplemented returns the handler if non-nil, or a 501 placeholder.
func orNotImplemented(h http.HandlerFunc) http.HandlerFunc {
	if h != nil {
		return h
	}
	return func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotImplemented, "endpoint not implemented")
	}
}
