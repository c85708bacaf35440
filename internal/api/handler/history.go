package handler

import (
	"context"
	"net/http"

	"github.com/smarthire/backend/internal/api/response"
	"github.com/smarthire/backend/pkg/models"
)

// PredictionLister returns every stored prediction, most recent first.
type PredictionLister interface {
	ListPredictions(ctx context.Context) ([]*models.PredictionRecord, error)
}

// NewHistoryHandler returns the handler for GET /api/history. The full
// history is returned in one response; there is no pagination.
func NewHistoryHandler(lister PredictionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := lister.ListPredictions(r.Context())
		if err != nil {
			response.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		if records == nil {
			records = []*models.PredictionRecord{}
		}
		response.JSON(w, records)
	}
}
