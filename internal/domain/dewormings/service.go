package dewormings

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
	Name        string
	Type        string
	DateApplied time.Time
	NextDueDate *time.Time
}

func (s *Service) Create(ctx context.Context, callerID string, in CreateInput) (Deworming, error) {
	if strings.TrimSpace(in.PetID) == "" {
		return Deworming{}, ErrInvalidInput
	}
	if len(strings.TrimSpace(in.Name)) < 2 {
		return Deworming{}, ErrInvalidInput
	}
	if !ValidType(in.Type) {
		return Deworming{}, ErrInvalidInput
	}
	if in.DateApplied.IsZero() {
		return Deworming{}, ErrInvalidInput
	}

	if err := ownership.Check(ctx, s.resolver, ownership.KindPet, in.PetID, callerID); err != nil {
		if errors.Is(err, ownership.ErrNotFound) {
			return Deworming{}, ErrForbidden
		}
		return Deworming{}, err
	}

	d := Deworming{
		ID:          uuid.NewString(),
		PetID:       in.PetID,
		Name:        strings.TrimSpace(in.Name),
		Type:        Type(in.Type),
		DateApplied: in.DateApplied,
		NextDueDate: in.NextDueDate,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return Deworming{}, err
	}
	return d, nil
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Deworming, error) {
	return s.repo.ListByPet(ctx, petID)
}

func (s *Service) Delete(ctx context.Context, callerID, id string) error {
	if err := ownership.Check(ctx, s.resolver, ownership.KindDeworming, id, callerID); err != nil {
		if errors.Is(err, ownership.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
