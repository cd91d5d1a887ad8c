package medical

import "context"

type Repository interface {
	Create(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	ListByPet(ctx context.Context, petID string) ([]Record, error)
	Delete(ctx context.Context, id string) error
}
