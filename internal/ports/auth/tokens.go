package auth

import "context"

// Verifier valida un token firmado y devuelve sus claims.
type Verifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// Issuer emite un token firmado para los claims dados.
type Issuer interface {
	Issue(claims Claims) (string, error)
}
