package attachments

import (
	"context"
	"errors"
	"strings"
	"time"

	"my-pets-api/internal/domain/ownership"
	"my-pets-api/internal/platform/logger"
	"my-pets-api/internal/ports/media"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
)

type Service struct {
	repo     Repository
	resolver ownership.Resolver
	store    media.Store
	log      logger.Logger
	now      func() time.Time
}

type ServiceOptions struct {
	Store  media.Store
	Logger logger.Logger
}

func NewService(repo Repository, resolver ownership.Resolver, opts ServiceOptions) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:     repo,
		resolver: resolver,
		store:    opts.Store,
		log:      log,
		now:      time.Now,
	}
}

// Store expone el media store para que el handler suba el archivo staged.
func (s *Service) Store() media.Store {
	return s.store
}

type CreateInput struct {
	PetID string
	Name  string
	URL   string
	Type  string
}

// Create registra un adjunto ya subido al store. Chequea que la mascota
// sea del caller.
func (s *Service) Create(ctx context.Context, callerID string, in CreateInput) (Attachment, error) {
	if err := ownership.Check(ctx, s.resolver, ownership.KindPet, in.PetID, callerID); err != nil {
		if errors.Is(err, ownership.ErrNotFound) {
			return Attachment{}, ErrForbidden
		}
		return Attachment{}, err
	}
	return s.record(ctx, in)
}

// CreateUnchecked registra el adjunto sin verificar dueño de la mascota.
// Solo lo usa el path secundario POST /upload.
func (s *Service) CreateUnchecked(ctx context.Context, in CreateInput) (Attachment, error) {
	return s.record(ctx, in)
}

func (s *Service) record(ctx context.Context, in CreateInput) (Attachment, error) {
	if strings.TrimSpace(in.PetID) == "" || strings.TrimSpace(in.URL) == "" {
		return Attachment{}, ErrInvalidInput
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = "Archivo sin nombre"
	}
	typ := strings.TrimSpace(in.Type)
	if typ == "" {
		typ = "file"
	}

	a := Attachment{
		ID:        uuid.NewString(),
		PetID:     in.PetID,
		Name:      name,
		URL:       in.URL,
		Type:      typ,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Attachment{}, err
	}
	return a, nil
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Attachment, error) {
	return s.repo.ListByPet(ctx, petID)
}

// URLsByPet implementa pets.AttachmentSource.
func (s *Service) URLsByPet(ctx context.Context, petID string) ([]string, error) {
	items, err := s.repo.ListByPet(ctx, petID)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(items))
	for _, a := range items {
		if a.URL != "" {
			urls = append(urls, a.URL)
		}
	}
	return urls, nil
}

// Delete revierte el pipeline: primero borra el objeto del store (best
// effort; falla => log y seguimos) y después el row. Preferimos un objeto
// huérfano en el store antes que un registro imposible de borrar.
func (s *Service) Delete(ctx context.Context, callerID, id string) error {
	if err := ownership.Check(ctx, s.resolver, ownership.KindAttachment, id, callerID); err != nil {
		if errors.Is(err, ownership.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if s.store != nil && a.URL != "" {
		if err := s.store.Delete(ctx, a.URL); err != nil {
			s.log.Warn("store delete failed", map[string]any{
				"attachment_id": id, "locator": a.URL, "error": err.Error(),
			})
		}
	}

	return s.repo.Delete(ctx, id)
}

// DiscardObject borra best-effort un objeto ya subido cuyo registro nunca se
// creó (alta rechazada después de subir). Cada falla se loguea y se sigue.
func (s *Service) DiscardObject(ctx context.Context, locator string) {
	if s.store == nil || locator == "" {
		return
	}
	if err := s.store.Delete(ctx, locator); err != nil {
		s.log.Warn("store delete failed", map[string]any{
			"locator": locator, "error": err.Error(),
		})
	}
}
