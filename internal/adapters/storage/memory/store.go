// Package memory implementa los repositorios sobre mapas en memoria.
// Se usa en tests y cuando no hay DATABASE_URL configurada.
package memory

import (
	"sync"

	"my-pets-api/internal/domain/attachments"
	"my-pets-api/internal/domain/dewormings"
	"my-pets-api/internal/domain/medical"
	"my-pets-api/internal/domain/pets"
	"my-pets-api/internal/domain/users"
	"my-pets-api/internal/domain/vaccinations"
)

// Store es la "base" compartida: todos los repos son vistas sobre estas
// tablas, con un único mutex. Así el borrado de una mascota puede arrastrar
// sus registros hijos igual que el ON DELETE CASCADE de postgres.
type Store struct {
	mu sync.RWMutex

	users        map[string]users.User
	pets         map[string]pets.Pet
	vaccinations map[string]vaccinations.Vaccination
	dewormings   map[string]dewormings.Deworming
	medical      map[string]medical.Record
	attachments  map[string]attachments.Attachment
}

func NewStore() *Store {
	return &Store{
		users:        make(map[string]users.User),
		pets:         make(map[string]pets.Pet),
		vaccinations: make(map[string]vaccinations.Vaccination),
		dewormings:   make(map[string]dewormings.Deworming),
		medical:      make(map[string]medical.Record),
		attachments:  make(map[string]attachments.Attachment),
	}
}

func (s *Store) Users() users.Repository               { return &userRepo{s: s} }
func (s *Store) Pets() pets.Repository                 { return &petRepo{s: s} }
func (s *Store) Vaccinations() vaccinations.Repository { return &vaccinationRepo{s: s} }
func (s *Store) Dewormings() dewormings.Repository     { return &dewormingRepo{s: s} }
func (s *Store) Medical() medical.Repository           { return &medicalRepo{s: s} }
func (s *Store) Attachments() attachments.Repository   { return &attachmentRepo{s: s} }
