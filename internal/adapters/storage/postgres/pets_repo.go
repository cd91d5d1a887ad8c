package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"my-pets-api/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, owner_id,
			name, species, breed, gender,
			birth_date, weight, is_castrated, special_needs,
			profile_image_url, banner_image_url,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		p.ID,
		p.OwnerID,
		p.Name,
		string(p.Species),
		p.Breed,
		p.Gender,
		toNullTime(p.BirthDate),
		toNullFloat(p.Weight),
		p.IsCastrated,
		p.SpecialNeeds,
		p.ProfileImageURL,
		p.BannerImageURL,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

const petColumns = `
	id, owner_id,
	name, species, breed, gender,
	birth_date, weight, is_castrated, special_needs,
	profile_image_url, banner_image_url,
	created_at, updated_at
`

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT `+petColumns+` FROM pets WHERE id = $1`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+petColumns+` FROM pets WHERE owner_id = $1 ORDER BY created_at DESC, id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			species = $3,
			breed = $4,
			gender = $5,
			birth_date = $6,
			weight = $7,
			is_castrated = $8,
			special_needs = $9,
			profile_image_url = $10,
			banner_image_url = $11,
			updated_at = $12
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		string(p.Species),
		p.Breed,
		p.Gender,
		toNullTime(p.BirthDate),
		toNullFloat(p.Weight),
		p.IsCastrated,
		p.SpecialNeeds,
		p.ProfileImageURL,
		p.BannerImageURL,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

// Delete borra la mascota; los hijos caen por ON DELETE CASCADE.
func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var species string
	var bd sql.NullTime
	var weight sql.NullFloat64
	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&species,
		&p.Breed,
		&p.Gender,
		&bd,
		&weight,
		&p.IsCastrated,
		&p.SpecialNeeds,
		&p.ProfileImageURL,
		&p.BannerImageURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return pets.Pet{}, err
	}
	p.Species = pets.Species(species)
	p.BirthDate = fromNullTime(bd)
	p.Weight = fromNullFloat(weight)
	return p, nil
}
