package attachments

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"my-pets-api/internal/middleware"
	"my-pets-api/internal/ports/media"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, maxUploadBytes int64) {
	r.Route("/attachments", func(ar chi.Router) {
		ar.Post("/", createHandler(svc, maxUploadBytes))
		ar.Delete("/{id}", deleteHandler(svc))
	})

	// Path secundario de subida (querystring petId, sin chequeo de dueño).
	r.Post("/upload", uploadHandler(svc, maxUploadBytes))
}

type attachmentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	PetID     string    `json:"petId"`
	CreatedAt time.Time `json:"createdAt"`
}

// createHandler maneja POST /attachments: multipart con un part de archivo
// y el campo petId.
func createHandler(svc *Service, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		fields, staged, err := stageUpload(w, r, maxUploadBytes)
		if staged != nil {
			// el archivo staged se borra siempre, salga bien o mal
			defer staged.cleanup()
		}
		if err != nil {
			writeStageError(w, err)
			return
		}

		petID := fields["petId"]
		if petID == "" || staged == nil {
			writeError(w, http.StatusBadRequest, "missing file or petId")
			return
		}

		obj, err := storeStaged(r, svc.Store(), staged)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "upload failed")
			return
		}

		a, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			PetID: petID,
			Name:  staged.filename,
			URL:   obj.URL,
			Type:  obj.Format,
		})
		if err != nil {
			// alta rechazada: el objeto ya subido queda huérfano, descartarlo
			svc.DiscardObject(r.Context(), obj.URL)
			switch {
			case errors.Is(err, ErrForbidden):
				writeError(w, http.StatusForbidden, "not your pet")
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "invalid attachment data")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, toResponse(a))
	}
}

// uploadHandler maneja POST /upload?petId=...
func uploadHandler(svc *Service, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		petID := strings.TrimSpace(r.URL.Query().Get("petId"))
		if petID == "" {
			writeError(w, http.StatusBadRequest, "missing petId in query")
			return
		}

		_, staged, err := stageUpload(w, r, maxUploadBytes)
		if staged != nil {
			defer staged.cleanup()
		}
		if err != nil {
			writeStageError(w, err)
			return
		}
		if staged == nil {
			writeError(w, http.StatusBadRequest, "no file sent")
			return
		}

		obj, err := storeStaged(r, svc.Store(), staged)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "upload failed")
			return
		}

		a, err := svc.CreateUnchecked(r.Context(), CreateInput{
			PetID: petID,
			Name:  staged.filename,
			URL:   obj.URL,
			Type:  obj.Format,
		})
		if err != nil {
			svc.DiscardObject(r.Context(), obj.URL)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, toResponse(a))
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
				writeError(w, http.StatusNotFound, "attachment not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "attachment deleted"})
	}
}

// stagedFile es un archivo ya bajado a disco, pendiente de subir al store.
type stagedFile struct {
	path        string
	filename    string
	contentType string
}

func (f *stagedFile) cleanup() {
	_ = os.Remove(f.path)
}

var errNotMultipart = errors.New("expected multipart/form-data")

// stageUpload recorre el multipart parte por parte: los campos de texto se
// acumulan y el primer part de archivo se baja a un archivo temporal.
// El límite de tamaño aplica acá, antes de tocar el store remoto.
func stageUpload(w http.ResponseWriter, r *http.Request, maxBytes int64) (map[string]string, *stagedFile, error) {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	mr, err := r.MultipartReader()
	if err != nil {
		return nil, nil, errNotMultipart
	}

	fields := map[string]string{}
	var staged *stagedFile

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fields, staged, err
		}

		if part.FileName() == "" {
			val, err := readField(part)
			if err != nil {
				return fields, staged, err
			}
			fields[part.FormName()] = val
			continue
		}

		// solo el primer archivo; el resto se drena y descarta
		if staged != nil {
			_, _ = io.Copy(io.Discard, part)
			continue
		}

		tmp, err := os.CreateTemp("", "upload-*")
		if err != nil {
			return fields, nil, err
		}
		if _, err := io.Copy(tmp, part); err != nil {
			tmp.Close()
			_ = os.Remove(tmp.Name())
			return fields, nil, err
		}
		if err := tmp.Close(); err != nil {
			_ = os.Remove(tmp.Name())
			return fields, nil, err
		}

		staged = &stagedFile{
			path:        tmp.Name(),
			filename:    part.FileName(),
			contentType: part.Header.Get("Content-Type"),
		}
	}

	return fields, staged, nil
}

func readField(part *multipart.Part) (string, error) {
	b, err := io.ReadAll(io.LimitReader(part, 1<<20))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// storeStaged sube el archivo staged al object store.
func storeStaged(r *http.Request, store media.Store, staged *stagedFile) (media.Object, error) {
	if store == nil {
		return media.Object{}, errors.New("media store not configured")
	}

	f, err := os.Open(staged.path)
	if err != nil {
		return media.Object{}, err
	}
	defer f.Close()

	return store.Upload(r.Context(), media.UploadInput{
		Folder:      media.FolderFiles,
		Filename:    staged.filename,
		ContentType: staged.contentType,
		Body:        f,
	})
}

func writeStageError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		writeError(w, http.StatusRequestEntityTooLarge, "file too large")
	case errors.Is(err, errNotMultipart):
		writeError(w, http.StatusBadRequest, "expected multipart/form-data")
	default:
		writeError(w, http.StatusBadRequest, "malformed multipart body")
	}
}

func toResponse(a Attachment) attachmentResponse {
	return attachmentResponse{
		ID:        a.ID,
		Name:      a.Name,
		URL:       a.URL,
		Type:      a.Type,
		PetID:     a.PetID,
		CreatedAt: a.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
