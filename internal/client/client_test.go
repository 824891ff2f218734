package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baby-tracker/internal/client"
	"baby-tracker/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(router.NewRouter(router.Options{Verifier: nil}))
	t.Cleanup(ts.Close)
	return ts
}

func TestClient_BabyRoundTrip(t *testing.T) {
	ts := newTestServer(t)
	c := client.New(ts.URL, client.WithDebugUser("user-1"))
	ctx := context.Background()

	bd := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	created, err := c.CreateBaby(ctx, client.CreateBabyInput{
		Name:      "Luna",
		Gender:    "girl",
		BirthDate: &bd,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "user-1", created.UserID)

	got, err := c.GetBaby(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Luna", got.Name)
	require.NotNil(t, got.BirthDate)
	assert.True(t, got.BirthDate.Equal(bd))

	list, err := c.ListBabies(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	name := "Luna Sofía"
	updated, err := c.UpdateBaby(ctx, created.ID, client.UpdateBabyInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Luna Sofía", updated.Name)

	require.NoError(t, c.DeleteBaby(ctx, created.ID))

	list, err = c.ListBabies(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestClient_ListCacheInvalidatedByMutations(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	// Dos clientes con caches independientes contra el mismo servidor.
	a := client.New(ts.URL, client.WithDebugUser("user-1"))
	b := client.New(ts.URL, client.WithDebugUser("user-1"))

	_, err := a.CreateBaby(ctx, client.CreateBabyInput{Name: "Luna"})
	require.NoError(t, err)

	listA, err := a.ListBabies(ctx)
	require.NoError(t, err)
	require.Len(t, listA, 1)

	// b muta; la cache de a no se entera y sigue sirviendo la copia vieja
	_, err = b.CreateBaby(ctx, client.CreateBabyInput{Name: "Mateo"})
	require.NoError(t, err)

	listA, err = a.ListBabies(ctx)
	require.NoError(t, err)
	assert.Len(t, listA, 1, "la lista cacheada no refetchea sola")

	// Una mutación propia invalida y la próxima lectura ve todo
	_, err = a.CreateBaby(ctx, client.CreateBabyInput{Name: "Sol"})
	require.NoError(t, err)

	listA, err = a.ListBabies(ctx)
	require.NoError(t, err)
	assert.Len(t, listA, 3)
}

func TestClient_APIErrors(t *testing.T) {
	ts := newTestServer(t)
	c := client.New(ts.URL, client.WithDebugUser("user-1"))
	ctx := context.Background()

	_, err := c.GetBaby(ctx, 999999)
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Baby not found", apiErr.Message)

	_, err = c.CreateBaby(ctx, client.CreateBabyInput{Gender: "girl"})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "name", apiErr.Field)

	// Sin credenciales, cualquier lectura es 401
	anon := client.New(ts.URL)
	_, err = anon.ListBabies(ctx)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestClient_LogsRoundTrip(t *testing.T) {
	ts := newTestServer(t)
	c := client.New(ts.URL, client.WithDebugUser("user-1"))
	ctx := context.Background()

	baby, err := c.CreateBaby(ctx, client.CreateBabyInput{Name: "Mateo"})
	require.NoError(t, err)

	amount := 120
	feeding, err := c.CreateFeeding(ctx, baby.ID, client.CreateFeedingInput{
		Type:   "bottle",
		Amount: &amount,
	})
	require.NoError(t, err)
	require.NotNil(t, feeding.Amount)
	assert.Equal(t, 120, *feeding.Amount)

	feedings, err := c.ListFeedings(ctx, baby.ID)
	require.NoError(t, err)
	require.Len(t, feedings, 1)

	start := time.Date(2026, 1, 10, 13, 0, 0, 0, time.UTC)
	end := start.Add(2*time.Hour + 30*time.Minute)
	sleep, err := c.CreateSleepLog(ctx, baby.ID, client.CreateSleepLogInput{
		StartTime: start,
		EndTime:   &end,
	})
	require.NoError(t, err)
	require.NotNil(t, sleep.Duration)
	assert.Equal(t, 150, *sleep.Duration)

	// El delete invalida la lista: la próxima lectura ya no trae la toma
	require.NoError(t, c.DeleteFeeding(ctx, baby.ID, feeding.ID))

	feedings, err = c.ListFeedings(ctx, baby.ID)
	require.NoError(t, err)
	assert.Empty(t, feedings)

	// Idempotente
	require.NoError(t, c.DeleteFeeding(ctx, baby.ID, feeding.ID))
}
