package attachments

import "time"

// Attachment referencia un archivo (estudio, PDF, imagen) subido al object
// store y asociado a una mascota. URL es el locator del store.
type Attachment struct {
	ID    string
	PetID string

	Name string
	URL  string
	Type string

	CreatedAt time.Time
}
