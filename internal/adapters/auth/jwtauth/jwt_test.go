package jwtauth

import (
	"context"
	"testing"
	"time"

	"my-pets-api/internal/ports/auth"
)

func TestIssueAndVerify(t *testing.T) {
	svc := New("test-secret", time.Hour)

	token, err := svc.Issue(auth.Claims{
		UserID: "user-1",
		Email:  "alice@example.com",
		Role:   auth.RoleUser,
	})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	got, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got.UserID != "user-1" || got.Email != "alice@example.com" || got.Role != auth.RoleUser {
		t.Fatalf("claims mismatch: %+v", got)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := New("secret-a", time.Hour).Issue(auth.Claims{UserID: "u1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := New("secret-b", time.Hour).Verify(context.Background(), token); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
}

func TestVerify_Expired(t *testing.T) {
	svc := New("test-secret", time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := svc.Issue(auth.Claims{UserID: "u1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// volvemos al reloj real: el token quedó vencido hace 59 minutos
	svc.now = time.Now
	if _, err := svc.Verify(context.Background(), token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestVerify_Garbage(t *testing.T) {
	svc := New("test-secret", time.Hour)
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.Verify(context.Background(), tok); err == nil {
			t.Fatalf("expected error for token %q", tok)
		}
	}
}
