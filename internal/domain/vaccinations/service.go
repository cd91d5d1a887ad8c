package vaccinations

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
	// ErrForbidden: la mascota referenciada existe pero es de otro usuario
	// (o no existe; al caller no se le distingue).
	ErrForbidden = errors.New("forbidden")
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
	Name        string
	DateApplied time.Time
	NextDueDate *time.Time
}

func (s *Service) Create(ctx context.Context, callerID string, in CreateInput) (Vaccination, error) {
	if strings.TrimSpace(in.PetID) == "" {
		return Vaccination{}, ErrInvalidInput
	}
	if len(strings.TrimSpace(in.Name)) < 2 {
		return Vaccination{}, ErrInvalidInput
	}
	if in.DateApplied.IsZero() {
		return Vaccination{}, ErrInvalidInput
	}

	if err := ownership.Check(ctx, s.resolver, ownership.KindPet, in.PetID, callerID); err != nil {
		if errors.Is(err, ownership.ErrNotFound) {
			return Vaccination{}, ErrForbidden
		}
		return Vaccination{}, err
	}

	v := Vaccination{
		ID:          uuid.NewString(),
		PetID:       in.PetID,
		Name:        strings.TrimSpace(in.Name),
		DateApplied: in.DateApplied,
		NextDueDate: in.NextDueDate,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return Vaccination{}, err
	}
	return v, nil
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Vaccination, error) {
	return s.repo.ListByPet(ctx, petID)
}

// Delete borra la vacuna solo si la cadena de dueño llega a callerID.
func (s *Service) Delete(ctx context.Context, callerID, id string) error {
	if err := ownership.Check(ctx, s.resolver, ownership.KindVaccination, id, callerID); err != nil {
		if errors.Is(err, ownership.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
