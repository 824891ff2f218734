package memory

import (
	"context"
	"sort"
	"sync"

	"baby-tracker/internal/domain/logs"
)

type logsRepo struct {
	mu     sync.RWMutex
	nextID int64

	feedings   map[int64]logs.Feeding
	sleepLogs  map[int64]logs.SleepLog
	diaperLogs map[int64]logs.DiaperLog
	growthLogs map[int64]logs.GrowthLog
	memories   map[int64]logs.Memory
}

// NewLogsRepo crea el repo de logs en memoria. El *logsRepo concreto se pasa
// también a NewBabiesRepo para la cascada de borrado.
func NewLogsRepo() *logsRepo {
	return &logsRepo{
		feedings:   make(map[int64]logs.Feeding),
		sleepLogs:  make(map[int64]logs.SleepLog),
		diaperLogs: make(map[int64]logs.DiaperLog),
		growthLogs: make(map[int64]logs.GrowthLog),
		memories:   make(map[int64]logs.Memory),
	}
}

var _ logs.Repository = (*logsRepo)(nil)

// Un solo contador para los cinco mapas: más simple y los ids igual son
// opacos para el cliente.
func (r *logsRepo) newID() int64 {
	r.nextID++
	return r.nextID
}

// --- Feedings ---

func (r *logsRepo) ListFeedings(ctx context.Context, babyID int64) ([]logs.Feeding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]logs.Feeding, 0)
	for _, f := range r.feedings {
		if f.BabyID == babyID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.After(out[j].Time) })
	return out, nil
}

func (r *logsRepo) CreateFeeding(ctx context.Context, f logs.Feeding) (logs.Feeding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f.ID = r.newID()
	r.feedings[f.ID] = f
	return f, nil
}

func (r *logsRepo) DeleteFeeding(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.feedings, id)
	return nil
}

// --- Sleep logs ---

func (r *logsRepo) ListSleepLogs(ctx context.Context, babyID int64) ([]logs.SleepLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]logs.SleepLog, 0)
	for _, s := range r.sleepLogs {
		if s.BabyID == babyID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.After(out[j].StartTime) })
	return out, nil
}

func (r *logsRepo) CreateSleepLog(ctx context.Context, s logs.SleepLog) (logs.SleepLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.newID()
	r.sleepLogs[s.ID] = s
	return s, nil
}

func (r *logsRepo) DeleteSleepLog(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sleepLogs, id)
	return nil
}

// --- Diaper logs ---

func (r *logsRepo) ListDiaperLogs(ctx context.Context, babyID int64) ([]logs.DiaperLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]logs.DiaperLog, 0)
	for _, d := range r.diaperLogs {
		if d.BabyID == babyID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.After(out[j].Time) })
	return out, nil
}

func (r *logsRepo) CreateDiaperLog(ctx context.Context, d logs.DiaperLog) (logs.DiaperLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d.ID = r.newID()
	r.diaperLogs[d.ID] = d
	return d, nil
}

func (r *logsRepo) DeleteDiaperLog(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.diaperLogs, id)
	return nil
}

// --- Growth logs ---

func (r *logsRepo) ListGrowthLogs(ctx context.Context, babyID int64) ([]logs.GrowthLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]logs.GrowthLog, 0)
	for _, g := range r.growthLogs {
		if g.BabyID == babyID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *logsRepo) CreateGrowthLog(ctx context.Context, g logs.GrowthLog) (logs.GrowthLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g.ID = r.newID()
	r.growthLogs[g.ID] = g
	return g, nil
}

func (r *logsRepo) DeleteGrowthLog(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.growthLogs, id)
	return nil
}

// --- Memories ---

func (r *logsRepo) ListMemories(ctx context.Context, babyID int64) ([]logs.Memory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]logs.Memory, 0)
	for _, m := range r.memories {
		if m.BabyID == babyID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *logsRepo) CreateMemory(ctx context.Context, m logs.Memory) (logs.Memory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.newID()
	r.memories[m.ID] = m
	return m, nil
}

func (r *logsRepo) DeleteMemory(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.memories, id)
	return nil
}

// deleteByBaby borra todos los logs de un perfil. Lo usa babiesRepo.Delete
// bajo su propio lock de perfil, pero los mapas de logs se protegen aquí.
func (r *logsRepo) deleteByBaby(babyID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, f := range r.feedings {
		if f.BabyID == babyID {
			delete(r.feedings, id)
		}
	}
	for id, s := range r.sleepLogs {
		if s.BabyID == babyID {
			delete(r.sleepLogs, id)
		}
	}
	for id, d := range r.diaperLogs {
		if d.BabyID == babyID {
			delete(r.diaperLogs, id)
		}
	}
	for id, g := range r.growthLogs {
		if g.BabyID == babyID {
			delete(r.growthLogs, id)
		}
	}
	for id, m := range r.memories {
		if m.BabyID == babyID {
			delete(r.memories, id)
		}
	}
}
