package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"my-pets-api/internal/domain/attachments"
	"my-pets-api/internal/domain/ownership"
	"my-pets-api/internal/domain/pets"
	"my-pets-api/internal/domain/vaccinations"
)

func TestPetDelete_CascadesChildren(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Now()

	if err := s.Pets().Create(ctx, pets.Pet{ID: "pet-1", OwnerID: "alice", Name: "Milo", CreatedAt: now}); err != nil {
		t.Fatalf("create pet: %v", err)
	}
	if err := s.Vaccinations().Create(ctx, vaccinations.Vaccination{ID: "vac-1", PetID: "pet-1", Name: "Rabia", DateApplied: now}); err != nil {
		t.Fatalf("create vaccination: %v", err)
	}
	if err := s.Attachments().Create(ctx, attachments.Attachment{ID: "att-1", PetID: "pet-1", Name: "rx.pdf", URL: "u", Type: "pdf", CreatedAt: now}); err != nil {
		t.Fatalf("create attachment: %v", err)
	}

	if err := s.Pets().Delete(ctx, "pet-1"); err != nil {
		t.Fatalf("delete pet: %v", err)
	}

	if _, err := s.Vaccinations().GetByID(ctx, "vac-1"); !errors.Is(err, vaccinations.ErrNotFound) {
		t.Fatalf("vaccination must cascade, got %v", err)
	}
	if _, err := s.Attachments().GetByID(ctx, "att-1"); !errors.Is(err, attachments.ErrNotFound) {
		t.Fatalf("attachment must cascade, got %v", err)
	}
}

func TestListByOwner_NewestFirst(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	base := time.Now()

	for i, id := range []string{"p-old", "p-mid", "p-new"} {
		err := s.Pets().Create(ctx, pets.Pet{
			ID: id, OwnerID: "alice", Name: "Pet",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	out, err := s.Pets().ListByOwner(ctx, "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 3 || out[0].ID != "p-new" || out[2].ID != "p-old" {
		t.Fatalf("expected newest first, got %v", []string{out[0].ID, out[1].ID, out[2].ID})
	}
}

func TestOwnership_ChainResolution(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Now()

	_ = s.Pets().Create(ctx, pets.Pet{ID: "pet-1", OwnerID: "alice", Name: "Milo", CreatedAt: now})
	_ = s.Vaccinations().Create(ctx, vaccinations.Vaccination{ID: "vac-1", PetID: "pet-1", Name: "Rabia", DateApplied: now})

	resolver := s.Ownership()

	owner, err := resolver.OwnerOf(ctx, ownership.KindPet, "pet-1")
	if err != nil || owner != "alice" {
		t.Fatalf("pet owner: got %q, %v", owner, err)
	}

	owner, err = resolver.OwnerOf(ctx, ownership.KindVaccination, "vac-1")
	if err != nil || owner != "alice" {
		t.Fatalf("vaccination owner: got %q, %v", owner, err)
	}

	if _, err := resolver.OwnerOf(ctx, ownership.KindVaccination, "ghost"); !errors.Is(err, ownership.ErrNotFound) {
		t.Fatalf("missing record: expected ErrNotFound, got %v", err)
	}

	// huérfano: el pet desapareció => la cadena corta en not found
	_ = s.Pets().Delete(ctx, "pet-1")
	_ = s.Vaccinations().Create(ctx, vaccinations.Vaccination{ID: "vac-2", PetID: "pet-1", Name: "Moquillo", DateApplied: now})
	if _, err := resolver.OwnerOf(ctx, ownership.KindVaccination, "vac-2"); !errors.Is(err, ownership.ErrNotFound) {
		t.Fatalf("orphan record: expected ErrNotFound, got %v", err)
	}
}
