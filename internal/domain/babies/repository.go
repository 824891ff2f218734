package babies

import (
	"context"
	"errors"
)

// ErrNotFound lo devuelven los repos cuando el id no existe.
// No es un fallo de store: los handlers lo mapean a 404.
var ErrNotFound = errors.New("baby not found")

type Repository interface {
	// ListByUser devuelve los perfiles del usuario (slice vacío si no tiene).
	ListByUser(ctx context.Context, userID string) ([]Baby, error)

	// GetByID devuelve el perfil o ErrNotFound.
	GetByID(ctx context.Context, id int64) (Baby, error)

	// Create persiste el perfil y devuelve la fila con el id generado.
	Create(ctx context.Context, b Baby) (Baby, error)

	// Update reescribe los campos mutables. ErrNotFound si el id no existe.
	Update(ctx context.Context, b Baby) error

	// Delete borra el perfil y todos sus logs. Borrar un id inexistente
	// no es error (idempotente).
	Delete(ctx context.Context, id int64) error
}
