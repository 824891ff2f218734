// Package memory implementa los repos en memoria para modo dev y tests e2e.
// Misma semántica que postgres: ids seriales, listados ordenados, deletes
// idempotentes, cascada de logs al borrar un perfil.
package memory

import (
	"context"
	"sort"
	"sync"

	"baby-tracker/internal/domain/babies"
)

type babiesRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]babies.Baby

	// logs para poder cascadear el delete del perfil
	logs *logsRepo
}

// NewBabiesRepo crea el repo de perfiles. Recibe el repo de logs para
// aplicar la cascada de borrado igual que hace postgres en su transacción.
func NewBabiesRepo(logs *logsRepo) babies.Repository {
	return &babiesRepo{
		byID: make(map[int64]babies.Baby),
		logs: logs,
	}
}

func (r *babiesRepo) ListByUser(ctx context.Context, userID string) ([]babies.Baby, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]babies.Baby, 0)
	for _, b := range r.byID {
		if b.UserID == userID {
			out = append(out, b)
		}
	}

	// Orden estable por id asc (orden de creación)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *babiesRepo) GetByID(ctx context.Context, id int64) (babies.Baby, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return babies.Baby{}, babies.ErrNotFound
	}
	return b, nil
}

func (r *babiesRepo) Create(ctx context.Context, b babies.Baby) (babies.Baby, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	b.ID = r.nextID
	r.byID[b.ID] = b
	return b, nil
}

func (r *babiesRepo) Update(ctx context.Context, b babies.Baby) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[b.ID]; !ok {
		return babies.ErrNotFound
	}
	r.byID[b.ID] = b
	return nil
}

func (r *babiesRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	if r.logs != nil {
		r.logs.deleteByBaby(id)
	}
	return nil
}
