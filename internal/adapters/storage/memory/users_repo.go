package memory

import (
	"context"
	"errors"
	"strings"
	"time"

	"my-pets-api/internal/domain/users"
)

type userRepo struct {
	s *Store
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if u.ID == "" {
		return errors.New("user id required")
	}
	for _, existing := range r.s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return users.ErrEmailTaken
		}
	}
	r.s.users[u.ID] = u
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *userRepo) SetResetToken(ctx context.Context, userID, tokenHash string, expires time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[userID]
	if !ok {
		return users.ErrNotFound
	}
	u.ResetTokenHash = tokenHash
	u.ResetTokenExpires = &expires
	r.s.users[userID] = u
	return nil
}

func (r *userRepo) GetByResetTokenHash(ctx context.Context, tokenHash string) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if tokenHash == "" {
		return users.User{}, users.ErrNotFound
	}
	for _, u := range r.s.users {
		if u.ResetTokenHash == tokenHash {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *userRepo) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[userID]
	if !ok {
		return users.ErrNotFound
	}
	u.PasswordHash = passwordHash
	u.ResetTokenHash = ""
	u.ResetTokenExpires = nil
	r.s.users[userID] = u
	return nil
}
