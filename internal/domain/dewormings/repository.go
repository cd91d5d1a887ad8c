package dewormings

import "context"

type Repository interface {
	Create(ctx context.Context, d Deworming) error
	GetByID(ctx context.Context, id string) (Deworming, error)
	ListByPet(ctx context.Context, petID string) ([]Deworming, error)
	Delete(ctx context.Context, id string) error
}
