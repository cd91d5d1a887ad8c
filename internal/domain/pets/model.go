package pets

import "time"

// Species soportadas por el schema original.
// @Enum CAT, DOG
type Species string

const (
	SpeciesCat Species = "CAT"
	SpeciesDog Species = "DOG"
)

func ValidSpecies(s string) bool {
	return Species(s) == SpeciesCat || Species(s) == SpeciesDog
}

// Pet es el perfil de una mascota. Siempre pertenece a un User.
type Pet struct {
	ID      string
	OwnerID string

	Name    string
	Species Species
	Breed   string
	Gender  string

	BirthDate    *time.Time
	Weight       *float64
	IsCastrated  bool
	SpecialNeeds string

	// Locators en el object store (vacío = sin imagen).
	ProfileImageURL string
	BannerImageURL  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
