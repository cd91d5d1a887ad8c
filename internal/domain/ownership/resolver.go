package ownership

import (
	"context"
	"errors"
)

var (
	// ErrNotFound cubre tanto "no existe" como "existe pero es de otro":
	// al caller nunca se le revela la diferencia.
	ErrNotFound = errors.New("not found")
)

// Kind identifica el tipo de entidad cuya cadena de dueño se resuelve.
type Kind string

const (
	KindPet           Kind = "pet"
	KindVaccination   Kind = "vaccination"
	KindDeworming     Kind = "deworming"
	KindMedicalRecord Kind = "medical_record"
	KindAttachment    Kind = "attachment"
)

// Resolver resuelve el user id dueño de una entidad siguiendo la cadena
// entidad -> pet -> owner. Reemplaza el chequeo copiado por recurso:
// un solo punto sabe hacer el join por kind.
type Resolver interface {
	OwnerOf(ctx context.Context, kind Kind, entityID string) (string, error)
}

// Check valida que callerID sea el dueño de la entidad.
// Entidad inexistente y entidad ajena devuelven el mismo ErrNotFound.
func Check(ctx context.Context, r Resolver, kind Kind, entityID, callerID string) error {
	owner, err := r.OwnerOf(ctx, kind, entityID)
	if err != nil {
		return err
	}
	if owner != callerID {
		return ErrNotFound
	}
	return nil
}
