package dewormings

import "time"

// Type de desparasitación.
// @Enum INTERNA, EXTERNA
type Type string

const (
	TypeInternal Type = "INTERNA"
	TypeExternal Type = "EXTERNA"
)

func ValidType(t string) bool {
	return Type(t) == TypeInternal || Type(t) == TypeExternal
}

type Deworming struct {
	ID    string
	PetID string

	Name        string
	Type        Type
	DateApplied time.Time
	NextDueDate *time.Time

	CreatedAt time.Time
}
