package vaccinations

import "time"

// Vaccination es un registro de vacuna aplicado a una mascota.
type Vaccination struct {
	ID    string
	PetID string

	Name        string
	DateApplied time.Time
	NextDueDate *time.Time

	CreatedAt time.Time
}
