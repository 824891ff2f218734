package logs

import "context"

// Repository es el único componente que toca las cinco tablas de logs.
// Contratos comunes a todos los tipos:
//   - List* devuelve newest-first por el campo temporal del tipo
//     (time, startTime o date); slice vacío si no hay filas, nunca error.
//   - Create* persiste y devuelve la fila completa con el id generado.
//   - Delete* es idempotente: borrar un id inexistente no es error.
type Repository interface {
	ListFeedings(ctx context.Context, babyID int64) ([]Feeding, error)
	CreateFeeding(ctx context.Context, f Feeding) (Feeding, error)
	DeleteFeeding(ctx context.Context, id int64) error

	ListSleepLogs(ctx context.Context, babyID int64) ([]SleepLog, error)
	CreateSleepLog(ctx context.Context, s SleepLog) (SleepLog, error)
	DeleteSleepLog(ctx context.Context, id int64) error

	ListDiaperLogs(ctx context.Context, babyID int64) ([]DiaperLog, error)
	CreateDiaperLog(ctx context.Context, d DiaperLog) (DiaperLog, error)
	DeleteDiaperLog(ctx context.Context, id int64) error

	ListGrowthLogs(ctx context.Context, babyID int64) ([]GrowthLog, error)
	CreateGrowthLog(ctx context.Context, g GrowthLog) (GrowthLog, error)
	DeleteGrowthLog(ctx context.Context, id int64) error

	ListMemories(ctx context.Context, babyID int64) ([]Memory, error)
	CreateMemory(ctx context.Context, m Memory) (Memory, error)
	DeleteMemory(ctx context.Context, id int64) error
}
