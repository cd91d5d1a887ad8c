package users

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	SetResetToken(ctx context.Context, userID, tokenHash string, expires time.Time) error
	GetByResetTokenHash(ctx context.Context, tokenHash string) (User, error)
	// UpdatePassword reemplaza el hash y limpia el token de reset.
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}
