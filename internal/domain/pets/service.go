package pets

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"my-pets-api/internal/platform/logger"
	"my-pets-api/internal/ports/media"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound se devuelve igual para "no existe" y "es de otro usuario".
	ErrNotFound = errors.New("not found")
)

// AttachmentSource expone los locators de los adjuntos de una mascota.
// Interface local para no acoplar pets -> attachments.
type AttachmentSource interface {
	URLsByPet(ctx context.Context, petID string) ([]string, error)
}

type Service struct {
	repo        Repository
	store       media.Store
	attachments AttachmentSource
	log         logger.Logger
	now         func() time.Time
}

type ServiceOptions struct {
	Store       media.Store
	Attachments AttachmentSource
	Logger      logger.Logger
}

func NewService(repo Repository, opts ServiceOptions) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:        repo,
		store:       opts.Store,
		attachments: opts.Attachments,
		log:         log,
		now:         time.Now,
	}
}

type CreateInput struct {
	Name         string
	Species      string
	Breed        string
	Gender       string
	BirthDate    *time.Time
	Weight       *float64
	IsCastrated  bool
	SpecialNeeds string

	ProfileImageURL string
	BannerImageURL  string
}

func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if len(strings.TrimSpace(in.Name)) < 2 {
		return Pet{}, ErrInvalidInput
	}
	if !ValidSpecies(in.Species) {
		return Pet{}, ErrInvalidInput
	}
	if in.Weight != nil && *in.Weight < 0 {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:              uuid.NewString(),
		OwnerID:         ownerID,
		Name:            strings.TrimSpace(in.Name),
		Species:         Species(in.Species),
		Breed:           strings.TrimSpace(in.Breed),
		Gender:          strings.TrimSpace(in.Gender),
		BirthDate:       in.BirthDate,
		Weight:          in.Weight,
		IsCastrated:     in.IsCastrated,
		SpecialNeeds:    strings.TrimSpace(in.SpecialNeeds),
		ProfileImageURL: in.ProfileImageURL,
		BannerImageURL:  in.BannerImageURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Get devuelve la mascota solo si pertenece a ownerID.
func (s *Service) Get(ctx context.Context, ownerID, id string) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	if p.OwnerID != ownerID {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, ownerID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// UpdateInput usa punteros: nil = campo no enviado.
type UpdateInput struct {
	Name         *string
	Species      *string
	Breed        *string
	Gender       *string
	BirthDate    *time.Time
	Weight       *float64
	IsCastrated  *bool
	SpecialNeeds *string

	ProfileImageURL *string
	BannerImageURL  *string
}

func (s *Service) Update(ctx context.Context, ownerID, id string, in UpdateInput) (Pet, error) {
	p, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		if len(strings.TrimSpace(*in.Name)) < 2 {
			return Pet{}, ErrInvalidInput
		}
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		if !ValidSpecies(*in.Species) {
			return Pet{}, ErrInvalidInput
		}
		p.Species = Species(*in.Species)
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Gender != nil {
		p.Gender = strings.TrimSpace(*in.Gender)
	}
	if in.BirthDate != nil {
		p.BirthDate = in.BirthDate
	}
	if in.Weight != nil {
		if *in.Weight < 0 {
			return Pet{}, ErrInvalidInput
		}
		p.Weight = in.Weight
	}
	if in.IsCastrated != nil {
		p.IsCastrated = *in.IsCastrated
	}
	if in.SpecialNeeds != nil {
		p.SpecialNeeds = strings.TrimSpace(*in.SpecialNeeds)
	}

	// Imagen reemplazada => la anterior se borra best-effort.
	if in.ProfileImageURL != nil && *in.ProfileImageURL != p.ProfileImageURL {
		s.deleteObject(ctx, p.ProfileImageURL)
		p.ProfileImageURL = *in.ProfileImageURL
	}
	if in.BannerImageURL != nil && *in.BannerImageURL != p.BannerImageURL {
		s.deleteObject(ctx, p.BannerImageURL)
		p.BannerImageURL = *in.BannerImageURL
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// UploadImage sube una imagen de perfil/banner y devuelve su locator.
func (s *Service) UploadImage(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	if s.store == nil {
		return "", errors.New("media store not configured")
	}
	obj, err := s.store.Upload(ctx, media.UploadInput{
		Folder:      media.FolderPets,
		Filename:    filename,
		ContentType: contentType,
		Body:        body,
	})
	if err != nil {
		return "", err
	}
	return obj.URL, nil
}

// Delete borra la mascota. Antes intenta borrar del store las imágenes y los
// objetos de todos sus adjuntos; cada falla se loguea y se sigue — el borrado
// del registro nunca queda bloqueado por el store.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	p, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return err
	}

	locators := make([]string, 0, 2)
	if p.ProfileImageURL != "" {
		locators = append(locators, p.ProfileImageURL)
	}
	if p.BannerImageURL != "" {
		locators = append(locators, p.BannerImageURL)
	}
	if s.attachments != nil {
		urls, err := s.attachments.URLsByPet(ctx, id)
		if err != nil {
			s.log.Warn("listing attachment locators failed, skipping store cleanup", map[string]any{
				"pet_id": id, "error": err.Error(),
			})
		} else {
			locators = append(locators, urls...)
		}
	}

	for _, loc := range locators {
		s.deleteObject(ctx, loc)
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) deleteObject(ctx context.Context, locator string) {
	if s.store == nil || locator == "" {
		return
	}
	if err := s.store.Delete(ctx, locator); err != nil {
		s.log.Warn("store delete failed", map[string]any{
			"locator": locator, "error": err.Error(),
		})
	}
}

// OwnerOf expone el dueño de una mascota sin pasar por el chequeo de ownership.
func (s *Service) OwnerOf(ctx context.Context, petID string) (string, error) {
	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.OwnerID, nil
}
