package memory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"my-pets-api/internal/ports/media"

	"github.com/google/uuid"
)

// Store es un media.Store in-memory para dev/tests.
// Registra uploads y deletes para poder asertar sobre ellos.
type Store struct {
	mu      sync.Mutex
	objects map[string][]byte // locator => bytes

	Deleted        []string // locators borrados con éxito, en orden
	DeleteAttempts int      // llamadas a Delete, incluidas las que fallaron

	// FailDeletes hace fallar los próximos N deletes (para probar cleanup best-effort).
	FailDeletes int
}

func NewStore() *Store {
	return &Store{
		objects: make(map[string][]byte),
	}
}

func (s *Store) Upload(ctx context.Context, in media.UploadInput) (media.Object, error) {
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return media.Object{}, err
	}

	folder := strings.Trim(in.Folder, "/")
	if folder == "" {
		folder = media.FolderFiles
	}

	ext := strings.ToLower(path.Ext(in.Filename))
	locator := fmt.Sprintf("https://store.local/pet-health/%s/%s%s", folder, uuid.NewString(), ext)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[locator] = b

	format := strings.TrimPrefix(ext, ".")
	if format == "" {
		format = "file"
	}
	return media.Object{URL: locator, Format: format}, nil
}

func (s *Store) Delete(ctx context.Context, locator string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.DeleteAttempts++
	if s.FailDeletes > 0 {
		s.FailDeletes--
		return errors.New("store unavailable")
	}

	// igual que el store real: locator desconocido no es error
	delete(s.objects, locator)
	s.Deleted = append(s.Deleted, locator)
	return nil
}

// Len devuelve cuántos objetos siguen almacenados.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

// DeletedCount devuelve cuántos deletes exitosos hubo.
func (s *Store) DeletedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Deleted)
}
