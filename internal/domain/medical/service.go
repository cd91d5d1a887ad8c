package medical

import (
	"context"
	"errors"
	"strings"
	"time"

	"my-pets-api/internal/domain/ownership"

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
	now      func() time.Time
}

func NewService(repo Repository, resolver ownership.Resolver) *Service {
	return &Service{
		repo:     repo,
		resolver: resolver,
		now:      time.Now,
	}
}

type CreateInput struct {
	PetID       string
	Title       string
	Description string
	// Date opcional; zero => ahora.
	Date time.Time
}

func (s *Service) Create(ctx context.Context, callerID string, in CreateInput) (Record, error) {
	if strings.TrimSpace(in.PetID) == "" {
		return Record{}, ErrInvalidInput
	}
	if len(strings.TrimSpace(in.Title)) < 3 {
		return Record{}, ErrInvalidInput
	}
	if len(strings.TrimSpace(in.Description)) < 3 {
		return Record{}, ErrInvalidInput
	}

	if err := ownership.Check(ctx, s.resolver, ownership.KindPet, in.PetID, callerID); err != nil {
		if errors.Is(err, ownership.ErrNotFound) {
			return Record{}, ErrForbidden
		}
		return Record{}, err
	}

	now := s.now()
	date := in.Date
	if date.IsZero() {
		date = now
	}

	rec := Record{
		ID:          uuid.NewString(),
		PetID:       in.PetID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Date:        date,
		CreatedAt:   now,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Record, error) {
	return s.repo.ListByPet(ctx, petID)
}

func (s *Service) Delete(ctx context.Context, callerID, id string) error {
	if err := ownership.Check(ctx, s.resolver, ownership.KindMedicalRecord, id, callerID); err != nil {
		if errors.Is(err, ownership.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
