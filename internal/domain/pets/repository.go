package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	// ListByOwner devuelve las mascotas del dueño, más recientes primero.
	ListByOwner(ctx context.Context, ownerID string) ([]Pet, error)
	Update(ctx context.Context, p Pet) error
	// Delete borra la mascota; los registros hijos caen en cascada.
	Delete(ctx context.Context, id string) error
}
