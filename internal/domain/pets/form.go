package pets

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ParseForm normaliza un form multipart en un UpdateInput.
// El frontend manda todo como string: booleanos "true"/"false", fechas
// "YYYY-MM-DD" y el peso como número en texto. Toda la coerción vive acá,
// no repartida por handler.
func ParseForm(values url.Values) (UpdateInput, error) {
	var in UpdateInput

	if v, ok := formValue(values, "name"); ok {
		in.Name = &v
	}
	if v, ok := formValue(values, "species"); ok {
		in.Species = &v
	}
	if v, ok := formValue(values, "breed"); ok {
		in.Breed = &v
	}
	if v, ok := formValue(values, "gender"); ok {
		in.Gender = &v
	}
	if v, ok := formValue(values, "specialNeeds"); ok {
		in.SpecialNeeds = &v
	}

	if v, ok := formValue(values, "birthDate"); ok && v != "" {
		t, err := parseDate(v)
		if err != nil {
			return UpdateInput{}, fmt.Errorf("%w: birthDate must be YYYY-MM-DD", ErrInvalidInput)
		}
		in.BirthDate = &t
	}

	if v, ok := formValue(values, "weight"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return UpdateInput{}, fmt.Errorf("%w: weight must be a number", ErrInvalidInput)
		}
		in.Weight = &f
	}

	if v, ok := formValue(values, "isCastrated"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return UpdateInput{}, fmt.Errorf("%w: isCastrated must be true or false", ErrInvalidInput)
		}
		in.IsCastrated = &b
	}

	return in, nil
}

func formValue(values url.Values, key string) (string, bool) {
	if _, present := values[key]; !present {
		return "", false
	}
	return strings.TrimSpace(values.Get(key)), true
}

// parseDate acepta fecha pelada o RFC3339 (el frontend manda ambas).
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
