package memory

import (
	"context"
	"errors"
	"sort"

	"my-pets-api/internal/domain/attachments"
)

type attachmentRepo struct {
	s *Store
}

func (r *attachmentRepo) Create(ctx context.Context, a attachments.Attachment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if a.ID == "" {
		return errors.New("attachment id required")
	}
	r.s.attachments[a.ID] = a
	return nil
}

func (r *attachmentRepo) GetByID(ctx context.Context, id string) (attachments.Attachment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.attachments[id]
	if !ok {
		return attachments.Attachment{}, attachments.ErrNotFound
	}
	return a, nil
}

func (r *attachmentRepo) ListByPet(ctx context.Context, petID string) ([]attachments.Attachment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]attachments.Attachment, 0)
	for _, a := range r.s.attachments {
		if a.PetID == petID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *attachmentRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.attachments[id]; !ok {
		return attachments.ErrNotFound
	}
	delete(r.s.attachments, id)
	return nil
}
