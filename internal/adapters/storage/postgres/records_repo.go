package postgres

import (
	"context"
	"database/sql"
	"errors"

	"my-pets-api/internal/domain/dewormings"
	"my-pets-api/internal/domain/medical"
	"my-pets-api/internal/domain/vaccinations"
)

type VaccinationsRepo struct {
	db *sql.DB
}

func NewVaccinationsRepo(db *sql.DB) *VaccinationsRepo {
	return &VaccinationsRepo{db: db}
}

func (r *VaccinationsRepo) Create(ctx context.Context, v vaccinations.Vaccination) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vaccinations (id, pet_id, name, date_applied, next_due_date, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		v.ID,
		v.PetID,
		v.Name,
		v.DateApplied,
		toNullTime(v.NextDueDate),
		v.CreatedAt,
	)
	return err
}

func (r *VaccinationsRepo) GetByID(ctx context.Context, id string) (vaccinations.Vaccination, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, name, date_applied, next_due_date, created_at
		FROM vaccinations
		WHERE id = $1
	`, id)

	var v vaccinations.Vaccination
	var next sql.NullTime
	err := row.Scan(&v.ID, &v.PetID, &v.Name, &v.DateApplied, &next, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return vaccinations.Vaccination{}, vaccinations.ErrNotFound
		}
		return vaccinations.Vaccination{}, err
	}
	v.NextDueDate = fromNullTime(next)
	return v, nil
}

func (r *VaccinationsRepo) ListByPet(ctx context.Context, petID string) ([]vaccinations.Vaccination, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, name, date_applied, next_due_date, created_at
		FROM vaccinations
		WHERE pet_id = $1
		ORDER BY date_applied DESC, id
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vaccinations.Vaccination, 0)
	for rows.Next() {
		var v vaccinations.Vaccination
		var next sql.NullTime
		if err := rows.Scan(&v.ID, &v.PetID, &v.Name, &v.DateApplied, &next, &v.CreatedAt); err != nil {
			return nil, err
		}
		v.NextDueDate = fromNullTime(next)
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VaccinationsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vaccinations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return vaccinations.ErrNotFound
	}
	return nil
}

type DewormingsRepo struct {
	db *sql.DB
}

func NewDewormingsRepo(db *sql.DB) *DewormingsRepo {
	return &DewormingsRepo{db: db}
}

func (r *DewormingsRepo) Create(ctx context.Context, d dewormings.Deworming) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO dewormings (id, pet_id, name, type, date_applied, next_due_date, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		d.ID,
		d.PetID,
		d.Name,
		string(d.Type),
		d.DateApplied,
		toNullTime(d.NextDueDate),
		d.CreatedAt,
	)
	return err
}

func (r *DewormingsRepo) GetByID(ctx context.Context, id string) (dewormings.Deworming, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, name, type, date_applied, next_due_date, created_at
		FROM dewormings
		WHERE id = $1
	`, id)

	var d dewormings.Deworming
	var typ string
	var next sql.NullTime
	err := row.Scan(&d.ID, &d.PetID, &d.Name, &typ, &d.DateApplied, &next, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dewormings.Deworming{}, dewormings.ErrNotFound
		}
		return dewormings.Deworming{}, err
	}
	d.Type = dewormings.Type(typ)
	d.NextDueDate = fromNullTime(next)
	return d, nil
}

func (r *DewormingsRepo) ListByPet(ctx context.Context, petID string) ([]dewormings.Deworming, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, name, type, date_applied, next_due_date, created_at
		FROM dewormings
		WHERE pet_id = $1
		ORDER BY date_applied DESC, id
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dewormings.Deworming, 0)
	for rows.Next() {
		var d dewormings.Deworming
		var typ string
		var next sql.NullTime
		if err := rows.Scan(&d.ID, &d.PetID, &d.Name, &typ, &d.DateApplied, &next, &d.CreatedAt); err != nil {
			return nil, err
		}
		d.Type = dewormings.Type(typ)
		d.NextDueDate = fromNullTime(next)
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DewormingsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dewormings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return dewormings.ErrNotFound
	}
	return nil
}

type MedicalRepo struct {
	db *sql.DB
}

func NewMedicalRepo(db *sql.DB) *MedicalRepo {
	return &MedicalRepo{db: db}
}

func (r *MedicalRepo) Create(ctx context.Context, rec medical.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medical_records (id, pet_id, title, description, date, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		rec.ID,
		rec.PetID,
		rec.Title,
		rec.Description,
		rec.Date,
		rec.CreatedAt,
	)
	return err
}

func (r *MedicalRepo) GetByID(ctx context.Context, id string) (medical.Record, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, title, description, date, created_at
		FROM medical_records
		WHERE id = $1
	`, id)

	var rec medical.Record
	err := row.Scan(&rec.ID, &rec.PetID, &rec.Title, &rec.Description, &rec.Date, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return medical.Record{}, medical.ErrNotFound
		}
		return medical.Record{}, err
	}
	return rec, nil
}

func (r *MedicalRepo) ListByPet(ctx context.Context, petID string) ([]medical.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, title, description, date, created_at
		FROM medical_records
		WHERE pet_id = $1
		ORDER BY date DESC, id
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medical.Record, 0)
	for rows.Next() {
		var rec medical.Record
		if err := rows.Scan(&rec.ID, &rec.PetID, &rec.Title, &rec.Description, &rec.Date, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *MedicalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medical_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return medical.ErrNotFound
	}
	return nil
}
