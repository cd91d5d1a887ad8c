package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"my-pets-api/internal/domain/ownership"
)

type OwnershipResolver struct {
	db *sql.DB
}

func NewOwnershipResolver(db *sql.DB) *OwnershipResolver {
	return &OwnershipResolver{db: db}
}

// OwnerOf resuelve el dueño con un join por kind. Una sola query por chequeo.
func (r *OwnershipResolver) OwnerOf(ctx context.Context, kind ownership.Kind, entityID string) (string, error) {
	var query string
	switch kind {
	case ownership.KindPet:
		query = `SELECT owner_id FROM pets WHERE id = $1`
	case ownership.KindVaccination:
		query = `
			SELECT p.owner_id FROM vaccinations v
			JOIN pets p ON p.id = v.pet_id
			WHERE v.id = $1`
	case ownership.KindDeworming:
		query = `
			SELECT p.owner_id FROM dewormings d
			JOIN pets p ON p.id = d.pet_id
			WHERE d.id = $1`
	case ownership.KindMedicalRecord:
		query = `
			SELECT p.owner_id FROM medical_records m
			JOIN pets p ON p.id = m.pet_id
			WHERE m.id = $1`
	case ownership.KindAttachment:
		query = `
			SELECT p.owner_id FROM attachments a
			JOIN pets p ON p.id = a.pet_id
			WHERE a.id = $1`
	default:
		return "", fmt.Errorf("unknown ownership kind %q", kind)
	}

	var owner string
	if err := r.db.QueryRowContext(ctx, query, entityID).Scan(&owner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ownership.ErrNotFound
		}
		return "", err
	}
	return owner, nil
}
