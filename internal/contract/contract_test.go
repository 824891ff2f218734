package contract

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "/api/babies/7/feedings",
		BuildURL(Feedings.List.Path, map[string]any{"babyID": int64(7)}))

	assert.Equal(t, "/api/sleep-logs/42",
		BuildURL(SleepLogs.Delete.Path, map[string]any{"id": int64(42)}))

	// Placeholder sin valor queda intacto: falla recién al hacer el request.
	assert.Equal(t, "/api/babies/{id}", BuildURL(Babies.Get.Path, nil))
}

func TestLogEndpointsShape(t *testing.T) {
	for _, eps := range []LogEndpoints{Feedings, SleepLogs, DiaperLogs, GrowthLogs, Memories} {
		assert.Equal(t, http.MethodGet, eps.List.Method)
		assert.Equal(t, http.StatusOK, eps.List.Success)
		assert.Equal(t, eps.List.Path, eps.Create.Path)
		assert.Equal(t, http.StatusCreated, eps.Create.Success)
		assert.Contains(t, eps.List.Path, "/api/babies/{babyID}/")
		assert.Contains(t, eps.Delete.Path, "{id}")
		assert.Equal(t, http.StatusNoContent, eps.Delete.Success)
	}
}

func TestValidationError(t *testing.T) {
	err := Required("name")
	assert.Equal(t, "name", err.Field)
	assert.Contains(t, err.Error(), "name")
}
