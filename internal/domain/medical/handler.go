package medical

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"my-pets-api/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/medical", func(mr chi.Router) {
		mr.Post("/", createHandler(svc))
		mr.Delete("/{id}", deleteHandler(svc))
	})
}

type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	PetID       string `json:"petId"`
}

type recordResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	PetID       string    `json:"petId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		var date time.Time
		if strings.TrimSpace(req.Date) != "" {
			t, err := parseDate(req.Date)
			if err != nil {
				writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
				return
			}
			date = t
		}

		rec, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			PetID:       req.PetID,
			Title:       req.Title,
			Description: req.Description,
			Date:        date,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrForbidden):
				writeError(w, http.StatusForbidden, "not your pet")
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "invalid medical record data")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, toResponse(rec))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "medical record not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "medical record deleted"})
	}
}

func toResponse(rec Record) recordResponse {
	return recordResponse{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Date:        rec.Date,
		PetID:       rec.PetID,
		CreatedAt:   rec.CreatedAt,
	}
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
