package pets

import (
	"context"
	"errors"
	"sort"
	"testing"

	"my-pets-api/internal/ports/media"
)

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// testStore cuenta uploads y deletes y puede fallar los primeros N deletes.
type testStore struct {
	uploads     int
	deleted     []string
	attempts    int
	failDeletes int
}

func (s *testStore) Upload(ctx context.Context, in media.UploadInput) (media.Object, error) {
	s.uploads++
	return media.Object{URL: "https://store.local/pet-health/pets/" + in.Filename}, nil
}

func (s *testStore) Delete(ctx context.Context, locator string) error {
	s.attempts++
	if s.failDeletes > 0 {
		s.failDeletes--
		return errors.New("store unavailable")
	}
	s.deleted = append(s.deleted, locator)
	return nil
}

type testAttachmentSource struct {
	urls map[string][]string
}

func (a *testAttachmentSource) URLsByPet(ctx context.Context, petID string) ([]string, error) {
	return a.urls[petID], nil
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newTestRepo(), ServiceOptions{})
	ctx := context.Background()

	if _, err := svc.Create(ctx, "owner-1", CreateInput{Name: "M", Species: "DOG"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("short name: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Milo", Species: "HAMSTER"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad species: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(ctx, "", CreateInput{Name: "Milo", Species: "DOG"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty owner: expected ErrInvalidInput, got %v", err)
	}
	badWeight := -3.5
	if _, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Milo", Species: "DOG", Weight: &badWeight}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative weight: expected ErrInvalidInput, got %v", err)
	}

	p, err := svc.Create(ctx, "owner-1", CreateInput{Name: "  Milo  ", Species: "DOG"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Name != "Milo" || p.ID == "" {
		t.Fatalf("unexpected pet: %+v", p)
	}
}

func TestGet_OwnerScoped(t *testing.T) {
	svc := NewService(newTestRepo(), ServiceOptions{})
	ctx := context.Background()

	p, err := svc.Create(ctx, "alice", CreateInput{Name: "Luna", Species: "CAT"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get(ctx, "alice", p.ID); err != nil {
		t.Fatalf("owner get: %v", err)
	}

	// ajena e inexistente devuelven el mismo error
	if _, err := svc.Get(ctx, "bob", p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign get: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Get(ctx, "alice", "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing get: expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_RejectsNegativeWeight(t *testing.T) {
	svc := NewService(newTestRepo(), ServiceOptions{})
	ctx := context.Background()

	okWeight := 12.5
	p, err := svc.Create(ctx, "alice", CreateInput{Name: "Luna", Species: "CAT", Weight: &okWeight})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	badWeight := -1.0
	if _, err := svc.Update(ctx, "alice", p.ID, UpdateInput{Weight: &badWeight}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative weight: expected ErrInvalidInput, got %v", err)
	}
	got, err := svc.Get(ctx, "alice", p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Weight == nil || *got.Weight != okWeight {
		t.Fatalf("weight must stay unchanged, got %v", got.Weight)
	}
}

func TestUpdate_ReplacedImageIsDeleted(t *testing.T) {
	store := &testStore{}
	svc := NewService(newTestRepo(), ServiceOptions{Store: store})
	ctx := context.Background()

	p, err := svc.Create(ctx, "alice", CreateInput{
		Name: "Luna", Species: "CAT",
		ProfileImageURL: "https://store.local/pet-health/pets/old.jpg",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newURL := "https://store.local/pet-health/pets/new.jpg"
	updated, err := svc.Update(ctx, "alice", p.ID, UpdateInput{ProfileImageURL: &newURL})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ProfileImageURL != newURL {
		t.Fatalf("image not replaced: %q", updated.ProfileImageURL)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "https://store.local/pet-health/pets/old.jpg" {
		t.Fatalf("old image not deleted: %v", store.deleted)
	}
}

func TestDelete_BestEffortStoreCleanup(t *testing.T) {
	store := &testStore{failDeletes: 1}
	repo := newTestRepo()
	att := &testAttachmentSource{urls: map[string][]string{}}
	svc := NewService(repo, ServiceOptions{Store: store, Attachments: att})
	ctx := context.Background()

	p, err := svc.Create(ctx, "alice", CreateInput{
		Name: "Rocky", Species: "DOG",
		ProfileImageURL: "https://store.local/pet-health/pets/profile.jpg",
		BannerImageURL:  "https://store.local/pet-health/pets/banner.jpg",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	att.urls[p.ID] = []string{
		"https://store.local/pet-health/files/a.pdf",
		"https://store.local/pet-health/files/b.jpg",
	}

	// el primer delete del store falla; igual se intentan los 4 y el
	// registro se borra
	if err := svc.Delete(ctx, "alice", p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if store.attempts != 4 {
		t.Fatalf("expected 4 delete attempts, got %d", store.attempts)
	}
	if len(store.deleted) != 3 {
		t.Fatalf("expected 3 successful deletes, got %d", len(store.deleted))
	}
	if _, err := repo.GetByID(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("pet row must be gone, got %v", err)
	}
}
