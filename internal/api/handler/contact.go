package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/smarthire/backend/internal/api/response"
)

// ContactSaver persists one contact-form submission.
type ContactSaver interface {
	SaveContact(ctx context.Context, name, email, message string, ts time.Time) error
}

const contactSuccessMessage = "Contact information submitted successfully"

// NewContactHandler returns the handler for POST /api/contact.
func NewContactHandler(saver ContactSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		required := []struct{ name, value string }{
			{"name", req.Name},
			{"email", req.Email},
			{"message", req.Message},
		}
		for _, f := range required {
			if f.value == "" {
				response.Error(w, http.StatusBadRequest, fmt.Sprintf("missing field %q", f.name))
				return
			}
		}

		if err := saver.SaveContact(r.Context(), req.Name, req.Email, req.Message, time.Now().UTC()); err != nil {
			response.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		response.JSON(w, map[string]string{"message": contactSuccessMessage})
	}
}
