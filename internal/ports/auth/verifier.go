package auth

import "context"

// Verifier valida un token de sesión y devuelve claims o error.
// La emisión de sesiones es de la integración de identidad externa;
// este servicio solo verifica.
type Verifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
