package babies_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "baby-tracker/internal/adapters/storage/memory"
	"baby-tracker/internal/contract"
	"baby-tracker/internal/domain/babies"
	"baby-tracker/internal/domain/logs"
)

func newServices() (*babies.Service, *logs.Service) {
	lr := mem.NewLogsRepo()
	return babies.NewService(mem.NewBabiesRepo(lr)), logs.NewService(lr)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newServices()
	ctx := context.Background()

	_, err := svc.Create(ctx, "user-1", babies.CreateInput{Name: "  "})
	var ve *contract.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)

	_, err = svc.Create(ctx, "user-1", babies.CreateInput{Name: "Luna", Gender: "dragon"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "gender", ve.Field)
}

func TestCreate_SetsServerFields(t *testing.T) {
	svc, _ := newServices()

	b, err := svc.Create(context.Background(), "user-1", babies.CreateInput{Name: "  Luna  "})
	require.NoError(t, err)

	assert.NotZero(t, b.ID)
	assert.Equal(t, "user-1", b.UserID)
	assert.Equal(t, "Luna", b.Name)
	assert.False(t, b.CreatedAt.IsZero())
}

func TestAssertOwner(t *testing.T) {
	svc, _ := newServices()
	ctx := context.Background()

	b, err := svc.Create(ctx, "owner", babies.CreateInput{Name: "Mateo"})
	require.NoError(t, err)

	got, err := svc.AssertOwner(ctx, b.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	_, err = svc.AssertOwner(ctx, b.ID, "stranger")
	assert.ErrorIs(t, err, babies.ErrForbidden)

	_, err = svc.AssertOwner(ctx, 999999, "owner")
	assert.ErrorIs(t, err, babies.ErrNotFound)
}

func TestUpdate_Partial(t *testing.T) {
	svc, _ := newServices()
	ctx := context.Background()

	bd := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	b, err := svc.Create(ctx, "user-1", babies.CreateInput{
		Name:      "Luna",
		Gender:    "girl",
		BirthDate: &bd,
	})
	require.NoError(t, err)

	// Solo name: gender y birthDate quedan igual
	name := "Luna Sofía"
	updated, err := svc.Update(ctx, b.ID, babies.UpdateInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Luna Sofía", updated.Name)
	assert.Equal(t, babies.Gender("girl"), updated.Gender)
	require.NotNil(t, updated.BirthDate)
	assert.True(t, updated.BirthDate.Equal(bd))

	// birthDate presente con nil = limpiar
	updated, err = svc.Update(ctx, b.ID, babies.UpdateInput{
		BirthDate: babies.OptionalTime{Present: true},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.BirthDate)

	// birthDate ausente = no tocar
	g := "other"
	updated, err = svc.Update(ctx, b.ID, babies.UpdateInput{Gender: &g})
	require.NoError(t, err)
	assert.Nil(t, updated.BirthDate)
	assert.Equal(t, babies.Gender("other"), updated.Gender)

	// name vacío es inválido
	empty := "  "
	_, err = svc.Update(ctx, b.ID, babies.UpdateInput{Name: &empty})
	var ve *contract.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)
}

func TestUpdate_Missing(t *testing.T) {
	svc, _ := newServices()

	name := "Nadie"
	_, err := svc.Update(context.Background(), 999999, babies.UpdateInput{Name: &name})
	assert.ErrorIs(t, err, babies.ErrNotFound)
}

func TestDelete_CascadesLogs(t *testing.T) {
	babiesSvc, logsSvc := newServices()
	ctx := context.Background()

	b, err := babiesSvc.Create(ctx, "user-1", babies.CreateInput{Name: "Mateo"})
	require.NoError(t, err)

	_, err = logsSvc.CreateFeeding(ctx, b.ID, logs.FeedingInput{Type: "bottle"})
	require.NoError(t, err)
	_, err = logsSvc.CreateMemory(ctx, b.ID, logs.MemoryInput{Title: "Primer baño"})
	require.NoError(t, err)

	require.NoError(t, babiesSvc.Delete(ctx, b.ID))

	_, err = babiesSvc.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, babies.ErrNotFound)

	feedings, err := logsSvc.ListFeedings(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, feedings)

	memories, err := logsSvc.ListMemories(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, memories)

	// Borrar de nuevo no es error
	require.NoError(t, babiesSvc.Delete(ctx, b.ID))
}
