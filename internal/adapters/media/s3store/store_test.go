package s3store

import "testing"

func TestKeyFromLocator(t *testing.T) {
	cases := []struct {
		locator string
		want    string
		ok      bool
	}{
		{"https://bucket.s3.us-east-1.amazonaws.com/pet-health/files/abc123.pdf", "pet-health/files/abc123.pdf", true},
		{"https://cdn.example.com/media/pet-health/pets/xyz.jpg", "pet-health/pets/xyz.jpg", true},
		{"http://localhost:9000/my-bucket/pet-health/files/a.png", "pet-health/files/a.png", true},
		// sin namespace conocido => no tocamos nada
		{"https://example.com/other/folder/file.jpg", "", false},
		{"https://example.com/file.jpg", "", false},
		{"", "", false},
		{"::not-a-url::", "", false},
	}

	for _, c := range cases {
		got, ok := KeyFromLocator(c.locator)
		if ok != c.ok || got != c.want {
			t.Errorf("KeyFromLocator(%q) = (%q, %v), want (%q, %v)", c.locator, got, ok, c.want, c.ok)
		}
	}
}

func TestFormatTag(t *testing.T) {
	if got := formatTag(""); got != "file" {
		t.Errorf("formatTag(\"\") = %q, want file", got)
	}
	if got := formatTag(".jpg"); got != "jpg" {
		t.Errorf("formatTag(.jpg) = %q, want jpg", got)
	}
}
