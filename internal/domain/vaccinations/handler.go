package vaccinations

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
	r.Route("/vaccines", func(vr chi.Router) {
		vr.Post("/", createHandler(svc))
		vr.Delete("/{id}", deleteHandler(svc))
	})
}

type createRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	NextDueDate string `json:"nextDueDate"`
	PetID       string `json:"petId"`
}

type vaccinationResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	DateApplied time.Time  `json:"dateApplied"`
	NextDueDate *time.Time `json:"nextDueDate,omitempty"`
	PetID       string     `json:"petId"`
	CreatedAt   time.Time  `json:"createdAt"`
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

		date, err := parseDate(req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		var nextDue *time.Time
		if strings.TrimSpace(req.NextDueDate) != "" {
			t, err := parseDate(req.NextDueDate)
			if err != nil {
				writeError(w, http.StatusBadRequest, "nextDueDate must be YYYY-MM-DD")
				return
			}
			nextDue = &t
		}

		v, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			PetID:       req.PetID,
			Name:        req.Name,
			DateApplied: date,
			NextDueDate: nextDue,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrForbidden):
				writeError(w, http.StatusForbidden, "not your pet")
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "invalid vaccination data")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, toResponse(v))
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
				writeError(w, http.StatusNotFound, "vaccination not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "vaccination deleted"})
	}
}

func toResponse(v Vaccination) vaccinationResponse {
	return vaccinationResponse{
		ID:          v.ID,
		Name:        v.Name,
		DateApplied: v.DateApplied,
		NextDueDate: v.NextDueDate,
		PetID:       v.PetID,
		CreatedAt:   v.CreatedAt,
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
