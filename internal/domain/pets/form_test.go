package pets

import (
	"errors"
	"net/url"
	"testing"
	"time"
)

func TestParseForm_Coercion(t *testing.T) {
	values := url.Values{}
	values.Set("name", " Mochi ")
	values.Set("species", "CAT")
	values.Set("isCastrated", "true")
	values.Set("birthDate", "2022-03-15")
	values.Set("weight", "5.4")

	in, err := ParseForm(values)
	if err != nil {
		t.Fatalf("ParseForm: %v", err)
	}

	if in.Name == nil || *in.Name != "Mochi" {
		t.Errorf("name = %v", in.Name)
	}
	if in.IsCastrated == nil || !*in.IsCastrated {
		t.Errorf("isCastrated no coercionado: %v", in.IsCastrated)
	}
	if in.BirthDate == nil || !in.BirthDate.Equal(time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("birthDate = %v", in.BirthDate)
	}
	if in.Weight == nil || *in.Weight != 5.4 {
		t.Errorf("weight = %v", in.Weight)
	}
	// campos no enviados quedan nil
	if in.Breed != nil || in.Gender != nil || in.SpecialNeeds != nil {
		t.Errorf("campos ausentes deberían ser nil: %+v", in)
	}
}

func TestParseForm_BadValues(t *testing.T) {
	cases := []struct{ key, val string }{
		{"birthDate", "15/03/2022"},
		{"weight", "heavy"},
		{"weight", "-1"},
		{"isCastrated", "yes"},
	}

	for _, c := range cases {
		values := url.Values{}
		values.Set(c.key, c.val)
		if _, err := ParseForm(values); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseForm(%s=%s): expected ErrInvalidInput, got %v", c.key, c.val, err)
		}
	}
}

func TestParseForm_RFC3339Date(t *testing.T) {
	values := url.Values{}
	values.Set("birthDate", "2022-03-15T00:00:00Z")

	in, err := ParseForm(values)
	if err != nil {
		t.Fatalf("ParseForm: %v", err)
	}
	if in.BirthDate == nil || in.BirthDate.Year() != 2022 {
		t.Errorf("birthDate = %v", in.BirthDate)
	}
}
