package vaccinations

import "context"

type Repository interface {
	Create(ctx context.Context, v Vaccination) error
	GetByID(ctx context.Context, id string) (Vaccination, error)
	// ListByPet devuelve las vacunas de la mascota, más recientes primero.
	ListByPet(ctx context.Context, petID string) ([]Vaccination, error)
	Delete(ctx context.Context, id string) error
}
