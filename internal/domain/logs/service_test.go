package logs_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "baby-tracker/internal/adapters/storage/memory"
	"baby-tracker/internal/contract"
	"baby-tracker/internal/domain/logs"
)

func newService() *logs.Service {
	return logs.NewService(mem.NewLogsRepo())
}

func TestCreateSleepLog_DerivesDuration(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	start := time.Date(2026, 1, 10, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"dos horas y media", start.Add(2*time.Hour + 30*time.Minute), 150},
		{"redondea hacia arriba", start.Add(90 * time.Second), 2},
		{"menos de medio minuto", start.Add(20 * time.Second), 0},
		{"exacto", start.Add(45 * time.Minute), 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end := tt.end
			s, err := svc.CreateSleepLog(ctx, 1, logs.SleepInput{
				StartTime: start,
				EndTime:   &end,
			})
			require.NoError(t, err)
			require.NotNil(t, s.Duration)
			assert.Equal(t, tt.want, *s.Duration)
		})
	}
}

func TestCreateSleepLog_OpenSession(t *testing.T) {
	svc := newService()

	s, err := svc.CreateSleepLog(context.Background(), 1, logs.SleepInput{
		StartTime: time.Date(2026, 1, 11, 20, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Nil(t, s.EndTime)
	assert.Nil(t, s.Duration)
}

func TestCreateSleepLog_RequiresStartTime(t *testing.T) {
	svc := newService()

	_, err := svc.CreateSleepLog(context.Background(), 1, logs.SleepInput{})
	var ve *contract.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "startTime", ve.Field)
}

func TestCreateFeeding_Validation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.CreateFeeding(ctx, 1, logs.FeedingInput{Type: "pizza"})
	var ve *contract.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "type", ve.Field)

	_, err = svc.CreateFeeding(ctx, 1, logs.FeedingInput{Type: "breast", Side: "up"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "side", ve.Field)
}

func TestCreateFeeding_DefaultsTimeToNow(t *testing.T) {
	svc := newService()

	before := time.Now()
	f, err := svc.CreateFeeding(context.Background(), 1, logs.FeedingInput{Type: "bottle"})
	require.NoError(t, err)

	assert.False(t, f.Time.Before(before))
	assert.False(t, f.Time.After(time.Now()))
}

func TestCreateDiaperLog_Validation(t *testing.T) {
	svc := newService()

	_, err := svc.CreateDiaperLog(context.Background(), 1, logs.DiaperInput{Type: "soaked"})
	var ve *contract.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "type", ve.Field)
}

func TestCreateMemory_RequiresTitle(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.CreateMemory(ctx, 1, logs.MemoryInput{Title: "   "})
	var ve *contract.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "title", ve.Field)

	m, err := svc.CreateMemory(ctx, 1, logs.MemoryInput{Title: "  Primer diente  "})
	require.NoError(t, err)
	assert.Equal(t, "Primer diente", m.Title)
}

func TestListFeedings_NewestFirst(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	base := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	for _, offset := range []time.Duration{2 * time.Hour, 0, 5 * time.Hour} {
		at := base.Add(offset)
		_, err := svc.CreateFeeding(ctx, 7, logs.FeedingInput{Type: "bottle", Time: &at})
		require.NoError(t, err)
	}

	items, err := svc.ListFeedings(ctx, 7)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.True(t, items[0].Time.After(items[1].Time))
	assert.True(t, items[1].Time.After(items[2].Time))
}

func TestDeleteFeeding_Idempotent(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	f, err := svc.CreateFeeding(ctx, 1, logs.FeedingInput{Type: "solids"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteFeeding(ctx, f.ID))
	require.NoError(t, svc.DeleteFeeding(ctx, f.ID))
	require.NoError(t, svc.DeleteFeeding(ctx, 999999))

	items, err := svc.ListFeedings(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}
