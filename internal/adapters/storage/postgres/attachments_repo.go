package postgres

import (
	"context"
	"database/sql"
	"errors"

	"my-pets-api/internal/domain/attachments"
)

type AttachmentsRepo struct {
	db *sql.DB
}

func NewAttachmentsRepo(db *sql.DB) *AttachmentsRepo {
	return &AttachmentsRepo{db: db}
}

func (r *AttachmentsRepo) Create(ctx context.Context, a attachments.Attachment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attachments (id, pet_id, name, url, type, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		a.ID,
		a.PetID,
		a.Name,
		a.URL,
		a.Type,
		a.CreatedAt,
	)
	return err
}

func (r *AttachmentsRepo) GetByID(ctx context.Context, id string) (attachments.Attachment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, name, url, type, created_at
		FROM attachments
		WHERE id = $1
	`, id)

	var a attachments.Attachment
	err := row.Scan(&a.ID, &a.PetID, &a.Name, &a.URL, &a.Type, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return attachments.Attachment{}, attachments.ErrNotFound
		}
		return attachments.Attachment{}, err
	}
	return a, nil
}

func (r *AttachmentsRepo) ListByPet(ctx context.Context, petID string) ([]attachments.Attachment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, name, url, type, created_at
		FROM attachments
		WHERE pet_id = $1
		ORDER BY created_at DESC, id
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]attachments.Attachment, 0)
	for rows.Next() {
		var a attachments.Attachment
		if err := rows.Scan(&a.ID, &a.PetID, &a.Name, &a.URL, &a.Type, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AttachmentsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM attachments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return attachments.ErrNotFound
	}
	return nil
}
