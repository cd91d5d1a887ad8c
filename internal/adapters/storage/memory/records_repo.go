package memory

import (
	"context"
	"errors"
	"sort"

	"my-pets-api/internal/domain/dewormings"
	"my-pets-api/internal/domain/medical"
	"my-pets-api/internal/domain/vaccinations"
)

// Los tres repos de historial son iguales salvo el tipo; se mantienen
// separados para devolver cada sentinel de su dominio.

type vaccinationRepo struct {
	s *Store
}

func (r *vaccinationRepo) Create(ctx context.Context, v vaccinations.Vaccination) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if v.ID == "" {
		return errors.New("vaccination id required")
	}
	r.s.vaccinations[v.ID] = v
	return nil
}

func (r *vaccinationRepo) GetByID(ctx context.Context, id string) (vaccinations.Vaccination, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.vaccinations[id]
	if !ok {
		return vaccinations.Vaccination{}, vaccinations.ErrNotFound
	}
	return v, nil
}

func (r *vaccinationRepo) ListByPet(ctx context.Context, petID string) ([]vaccinations.Vaccination, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]vaccinations.Vaccination, 0)
	for _, v := range r.s.vaccinations {
		if v.PetID == petID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DateApplied.Equal(out[j].DateApplied) {
			return out[i].DateApplied.After(out[j].DateApplied)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *vaccinationRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vaccinations[id]; !ok {
		return vaccinations.ErrNotFound
	}
	delete(r.s.vaccinations, id)
	return nil
}

type dewormingRepo struct {
	s *Store
}

func (r *dewormingRepo) Create(ctx context.Context, d dewormings.Deworming) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if d.ID == "" {
		return errors.New("deworming id required")
	}
	r.s.dewormings[d.ID] = d
	return nil
}

func (r *dewormingRepo) GetByID(ctx context.Context, id string) (dewormings.Deworming, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.dewormings[id]
	if !ok {
		return dewormings.Deworming{}, dewormings.ErrNotFound
	}
	return d, nil
}

func (r *dewormingRepo) ListByPet(ctx context.Context, petID string) ([]dewormings.Deworming, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]dewormings.Deworming, 0)
	for _, d := range r.s.dewormings {
		if d.PetID == petID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DateApplied.Equal(out[j].DateApplied) {
			return out[i].DateApplied.After(out[j].DateApplied)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *dewormingRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.dewormings[id]; !ok {
		return dewormings.ErrNotFound
	}
	delete(r.s.dewormings, id)
	return nil
}

type medicalRepo struct {
	s *Store
}

func (r *medicalRepo) Create(ctx context.Context, rec medical.Record) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if rec.ID == "" {
		return errors.New("medical record id required")
	}
	r.s.medical[rec.ID] = rec
	return nil
}

func (r *medicalRepo) GetByID(ctx context.Context, id string) (medical.Record, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.medical[id]
	if !ok {
		return medical.Record{}, medical.ErrNotFound
	}
	return rec, nil
}

func (r *medicalRepo) ListByPet(ctx context.Context, petID string) ([]medical.Record, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]medical.Record, 0)
	for _, rec := range r.s.medical {
		if rec.PetID == petID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *medicalRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.medical[id]; !ok {
		return medical.ErrNotFound
	}
	delete(r.s.medical, id)
	return nil
}
