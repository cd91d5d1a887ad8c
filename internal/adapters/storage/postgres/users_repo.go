package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"my-pets-api/internal/domain/users"
	"my-pets-api/internal/ports/auth"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, email, password_hash, name, lastname, role,
			reset_token_hash, reset_token_expires, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		u.ID,
		strings.ToLower(u.Email),
		u.PasswordHash,
		u.Name,
		u.Lastname,
		string(u.Role),
		u.ResetTokenHash,
		toNullTime(u.ResetTokenExpires),
		u.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return users.ErrEmailTaken
		}
		return err
	}
	return nil
}

const userColumns = `
	id, email, password_hash, name, lastname, role,
	reset_token_hash, reset_token_expires, created_at
`

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		strings.ToLower(strings.TrimSpace(email)))
	return scanUser(row)
}

func (r *UsersRepo) SetResetToken(ctx context.Context, userID, tokenHash string, expires time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET reset_token_hash = $2, reset_token_expires = $3
		WHERE id = $1
	`, userID, tokenHash, expires)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) GetByResetTokenHash(ctx context.Context, tokenHash string) (users.User, error) {
	if tokenHash == "" {
		return users.User{}, users.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE reset_token_hash = $1`, tokenHash)
	return scanUser(row)
}

func (r *UsersRepo) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET password_hash = $2, reset_token_hash = '', reset_token_expires = NULL
		WHERE id = $1
	`, userID, passwordHash)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func scanUser(row *sql.Row) (users.User, error) {
	var u users.User
	var role string
	var expires sql.NullTime
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.Lastname,
		&role,
		&u.ResetTokenHash,
		&expires,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	u.Role = auth.Role(role)
	u.ResetTokenExpires = fromNullTime(expires)
	return u, nil
}
