package pets

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"my-pets-api/internal/domain/attachments"
	"my-pets-api/internal/domain/dewormings"
	"my-pets-api/internal/domain/medical"
	"my-pets-api/internal/domain/vaccinations"
	"my-pets-api/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// HandlerOptions agrupa los colaboradores del detalle de mascota.
type HandlerOptions struct {
	Vaccinations *vaccinations.Service
	Dewormings   *dewormings.Service
	Medical      *medical.Service
	Attachments  *attachments.Service

	MaxUploadBytes int64
}

func RegisterRoutes(r chi.Router, svc *Service, opts HandlerOptions) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listHandler(svc))
		pr.Post("/", createHandler(svc, opts))
		pr.Get("/{petID}", getHandler(svc, opts))
		pr.Put("/{petID}", updateHandler(svc, opts))
		pr.Delete("/{petID}", deleteHandler(svc))
	})
}

type createRequest struct {
	Name         string   `json:"name"`
	Species      string   `json:"species"`
	Breed        string   `json:"breed"`
	Gender       string   `json:"gender"`
	BirthDate    string   `json:"birthDate"`
	Weight       *float64 `json:"weight"`
	IsCastrated  bool     `json:"isCastrated"`
	SpecialNeeds string   `json:"specialNeeds"`
}

type petResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Species         string     `json:"species"`
	Breed           string     `json:"breed"`
	Gender          string     `json:"gender"`
	BirthDate       *time.Time `json:"birthDate,omitempty"`
	Weight          *float64   `json:"weight,omitempty"`
	IsCastrated     bool       `json:"isCastrated"`
	SpecialNeeds    string     `json:"specialNeeds"`
	ProfileImageURL string     `json:"profileImageUrl,omitempty"`
	BannerImageURL  string     `json:"bannerImageUrl,omitempty"`
	OwnerID         string     `json:"ownerId"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Tipos anidados del detalle (los nombres de campo son los que el SPA espera).
type vaccinationItem struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	DateApplied time.Time  `json:"dateApplied"`
	NextDueDate *time.Time `json:"nextDueDate,omitempty"`
	PetID       string     `json:"petId"`
}

type dewormingItem struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	DateApplied time.Time  `json:"dateApplied"`
	NextDueDate *time.Time `json:"nextDueDate,omitempty"`
	PetID       string     `json:"petId"`
}

type medicalItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	PetID       string    `json:"petId"`
}

type attachmentItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	PetID     string    `json:"petId"`
	CreatedAt time.Time `json:"createdAt"`
}

type petDetailResponse struct {
	petResponse
	Vaccinations   []vaccinationItem `json:"vaccinations"`
	MedicalHistory []medicalItem     `json:"medicalHistory"`
	Dewormings     []dewormingItem   `json:"dewormings"`
	Attachments    []attachmentItem  `json:"attachments"`
}

// listHandler maneja GET /pets.
// @Summary Mascotas del usuario autenticado
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} petResponse
// @Router /pets [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		items, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createHandler maneja POST /pets. Acepta JSON o multipart (el SPA manda
// multipart cuando incluye imágenes).
func createHandler(svc *Service, opts HandlerOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var in CreateInput
		if isMultipart(r) {
			form, files, err := parseMultipart(w, r, opts.MaxUploadBytes)
			if err != nil {
				writeMultipartError(w, err)
				return
			}
			in, err = createFromForm(form)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}

			urls, err := uploadImages(r, svc, files)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "image upload failed")
				return
			}
			if u, ok := urls["profileImage"]; ok {
				in.ProfileImageURL = u
			}
			if u, ok := urls["bannerImage"]; ok {
				in.BannerImageURL = u
			}
		} else {
			var req createRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, "invalid json")
				return
			}
			var bd *time.Time
			if strings.TrimSpace(req.BirthDate) != "" {
				t, err := parseDate(strings.TrimSpace(req.BirthDate))
				if err != nil {
					writeError(w, http.StatusBadRequest, "birthDate must be YYYY-MM-DD")
					return
				}
				bd = &t
			}
			in = CreateInput{
				Name:         req.Name,
				Species:      req.Species,
				Breed:        req.Breed,
				Gender:       req.Gender,
				BirthDate:    bd,
				Weight:       req.Weight,
				IsCastrated:  req.IsCastrated,
				SpecialNeeds: req.SpecialNeeds,
			}
		}

		p, err := svc.Create(r.Context(), claims.UserID, in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "invalid pet data")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, toResponse(p))
	}
}

// getHandler maneja GET /pets/{petID}: perfil + historial anidado.
// 404 tanto si no existe como si es de otro usuario.
func getHandler(svc *Service, opts HandlerOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		petID := chi.URLParam(r, "petID")
		p, err := svc.Get(r.Context(), claims.UserID, petID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "pet not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		detail := petDetailResponse{
			petResponse:    toResponse(p),
			Vaccinations:   []vaccinationItem{},
			MedicalHistory: []medicalItem{},
			Dewormings:     []dewormingItem{},
			Attachments:    []attachmentItem{},
		}

		// Si algún listado falla, el detalle completo falla: un historial
		// vacío por error se leería como "sin registros".
		if opts.Vaccinations != nil {
			items, err := opts.Vaccinations.ListByPet(r.Context(), petID)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			for _, v := range items {
				detail.Vaccinations = append(detail.Vaccinations, vaccinationItem{
					ID: v.ID, Name: v.Name, DateApplied: v.DateApplied,
					NextDueDate: v.NextDueDate, PetID: v.PetID,
				})
			}
		}
		if opts.Medical != nil {
			items, err := opts.Medical.ListByPet(r.Context(), petID)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			for _, m := range items {
				detail.MedicalHistory = append(detail.MedicalHistory, medicalItem{
					ID: m.ID, Title: m.Title, Description: m.Description,
					Date: m.Date, PetID: m.PetID,
				})
			}
		}
		if opts.Dewormings != nil {
			items, err := opts.Dewormings.ListByPet(r.Context(), petID)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			for _, d := range items {
				detail.Dewormings = append(detail.Dewormings, dewormingItem{
					ID: d.ID, Name: d.Name, Type: string(d.Type),
					DateApplied: d.DateApplied, NextDueDate: d.NextDueDate, PetID: d.PetID,
				})
			}
		}
		if opts.Attachments != nil {
			items, err := opts.Attachments.ListByPet(r.Context(), petID)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			for _, a := range items {
				detail.Attachments = append(detail.Attachments, attachmentItem{
					ID: a.ID, Name: a.Name, URL: a.URL, Type: a.Type,
					PetID: a.PetID, CreatedAt: a.CreatedAt,
				})
			}
		}

		writeJSON(w, http.StatusOK, detail)
	}
}

// updateHandler maneja PUT /pets/{petID} (multipart: el SPA manda booleanos
// y fechas como string; la coerción vive en ParseForm).
func updateHandler(svc *Service, opts HandlerOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		if !isMultipart(r) {
			writeError(w, http.StatusBadRequest, "expected multipart/form-data")
			return
		}

		form, files, err := parseMultipart(w, r, opts.MaxUploadBytes)
		if err != nil {
			writeMultipartError(w, err)
			return
		}

		in, err := ParseForm(form)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		// Resolver propiedad antes de subir: si la mascota es ajena (o no
		// existe) no queremos objetos huérfanos en el store.
		petID := chi.URLParam(r, "petID")
		if _, err := svc.Get(r.Context(), claims.UserID, petID); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "pet not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		urls, err := uploadImages(r, svc, files)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "image upload failed")
			return
		}
		if u, ok := urls["profileImage"]; ok {
			in.ProfileImageURL = &u
		}
		if u, ok := urls["bannerImage"]; ok {
			in.BannerImageURL = &u
		}

		p, err := svc.Update(r.Context(), claims.UserID, petID, in)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				writeError(w, http.StatusNotFound, "pet not found")
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "invalid pet data")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toResponse(p))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "pet not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "pet deleted"})
	}
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// parseMultipart parsea el form respetando el límite de tamaño.
// Devuelve los campos de texto y los file headers.
func parseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64) (url.Values, map[string]*multipart.FileHeader, error) {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	// los archivos grandes igual caen a disco (temp) vía ParseMultipartForm
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		return nil, nil, err
	}

	files := map[string]*multipart.FileHeader{}
	for _, name := range []string{"profileImage", "bannerImage"} {
		if fhs := r.MultipartForm.File[name]; len(fhs) > 0 {
			files[name] = fhs[0]
		}
	}

	return url.Values(r.MultipartForm.Value), files, nil
}

// uploadImages sube las imágenes recibidas y devuelve sus locators.
func uploadImages(r *http.Request, svc *Service, files map[string]*multipart.FileHeader) (map[string]string, error) {
	urls := map[string]string{}
	for name, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		u, err := svc.UploadImage(r.Context(), fh.Filename, fh.Header.Get("Content-Type"), f)
		f.Close()
		if err != nil {
			return nil, err
		}
		urls[name] = u
	}
	return urls, nil
}

func writeMultipartError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		writeError(w, http.StatusRequestEntityTooLarge, "file too large")
		return
	}
	writeError(w, http.StatusBadRequest, "malformed multipart body")
}

func toResponse(p Pet) petResponse {
	return petResponse{
		ID:              p.ID,
		Name:            p.Name,
		Species:         string(p.Species),
		Breed:           p.Breed,
		Gender:          p.Gender,
		BirthDate:       p.BirthDate,
		Weight:          p.Weight,
		IsCastrated:     p.IsCastrated,
		SpecialNeeds:    p.SpecialNeeds,
		ProfileImageURL: p.ProfileImageURL,
		BannerImageURL:  p.BannerImageURL,
		OwnerID:         p.OwnerID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func createFromForm(values url.Values) (CreateInput, error) {
	// la coerción fina la hace ParseForm; acá solo trasladamos
	u, err := ParseForm(values)
	if err != nil {
		return CreateInput{}, err
	}

	in := CreateInput{
		Name:         strings.TrimSpace(values.Get("name")),
		Species:      strings.TrimSpace(values.Get("species")),
		Breed:        strings.TrimSpace(values.Get("breed")),
		Gender:       strings.TrimSpace(values.Get("gender")),
		SpecialNeeds: strings.TrimSpace(values.Get("specialNeeds")),
		BirthDate:    u.BirthDate,
		Weight:       u.Weight,
	}
	if u.IsCastrated != nil {
		in.IsCastrated = *u.IsCastrated
	}
	return in, nil
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
