package babies

import (
	"context"
	"errors"
)

// ErrForbidden indica que el usuario de la sesión no es el dueño del perfil.
var ErrForbidden = errors.New("forbidden")

// AssertOwner carga el perfil y verifica que pertenece al usuario.
// Es el paso único de autorización que usan TODAS las rutas anidadas
// (logs incluidos), para que el chequeo no se omita en ninguna:
// ErrNotFound si el perfil no existe, ErrForbidden si el dueño es otro.
func (s *Service) AssertOwner(ctx context.Context, babyID int64, userID string) (Baby, error) {
	b, err := s.repo.GetByID(ctx, babyID)
	if err != nil {
		return Baby{}, err
	}
	if b.UserID != userID {
		return Baby{}, ErrForbidden
	}
	return b, nil
}
