package memory

import (
	"context"
	"fmt"

	"my-pets-api/internal/domain/ownership"
)

type ownershipResolver struct {
	s *Store
}

// Ownership devuelve el resolver de dueños sobre este Store.
func (s *Store) Ownership() ownership.Resolver {
	return &ownershipResolver{s: s}
}

// OwnerOf sigue la cadena entidad -> pet -> owner sobre los mapas.
// Cualquier eslabón ausente devuelve ownership.ErrNotFound.
func (r *ownershipResolver) OwnerOf(ctx context.Context, kind ownership.Kind, entityID string) (string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	petID := entityID
	switch kind {
	case ownership.KindPet:
		// directo
	case ownership.KindVaccination:
		v, ok := r.s.vaccinations[entityID]
		if !ok {
			return "", ownership.ErrNotFound
		}
		petID = v.PetID
	case ownership.KindDeworming:
		d, ok := r.s.dewormings[entityID]
		if !ok {
			return "", ownership.ErrNotFound
		}
		petID = d.PetID
	case ownership.KindMedicalRecord:
		m, ok := r.s.medical[entityID]
		if !ok {
			return "", ownership.ErrNotFound
		}
		petID = m.PetID
	case ownership.KindAttachment:
		a, ok := r.s.attachments[entityID]
		if !ok {
			return "", ownership.ErrNotFound
		}
		petID = a.PetID
	default:
		return "", fmt.Errorf("unknown ownership kind %q", kind)
	}

	p, ok := r.s.pets[petID]
	if !ok {
		return "", ownership.ErrNotFound
	}
	return p.OwnerID, nil
}
