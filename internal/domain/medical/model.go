package medical

import "time"

// Record es una entrada del historial médico de una mascota.
type Record struct {
	ID    string
	PetID string

	Title       string
	Description string
	// Date es la fecha del evento (puede ser pasada; default: ahora).
	Date time.Time

	CreatedAt time.Time
}
