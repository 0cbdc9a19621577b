package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LingoLeap/LingoLeap-backend/internal/lessons"
	model "github.com/LingoLeap/LingoLeap-backend/internal/models"
	"github.com/LingoLeap/LingoLeap-backend/internal/progression"
	"github.com/LingoLeap/LingoLeap-backend/internal/store"
	"github.com/LingoLeap/LingoLeap-backend/internal/utils"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	registry := lessons.NewRegistry()
	registry.Register("spanish", []model.Lesson{
		{ID: 1, Level: "beginner", Title: "Saludos", Questions: []model.Question{
			{ID: 1, Prompt: "hello?", Answer: "hola"},
		}},
	})

	svc := progression.NewService(
		store.NewMemoryProgression(),
		store.NewMemoryDirectory(),
		registry,
		nil,
		nil,
	)

	return New(svc, nil, registry, nil, nil, nil, nil)
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestGetLessonsByLanguage(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/lessons?language=spanish", nil)
	rr := httptest.NewRecorder()
	h.GetLessons(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeResponse(t, rr)
	assert.True(t, resp.Success)

	lessons, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, lessons, 1)
}

func TestGetLessonHidesAnswers(t *testing.T) {
	h := newTestHandler(t)

	req := mux.SetURLVars(
		httptest.NewRequest(http.MethodGet, "/lessons/1", nil),
		map[string]string{"id": "1"},
	)
	rr := httptest.NewRecorder()
	h.GetLesson(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	// La réponse de référence ne doit jamais atteindre le client
	assert.NotContains(t, rr.Body.String(), "hola")
}

func TestGetLessonNotFound(t *testing.T) {
	h := newTestHandler(t)

	req := mux.SetURLVars(
		httptest.NewRequest(http.MethodGet, "/lessons/404", nil),
		map[string]string{"id": "404"},
	)
	rr := httptest.NewRecorder()
	h.GetLesson(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	resp := decodeResponse(t, rr)
	assert.False(t, resp.Success)
}

func TestGetLeaderboardEmpty(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
	rr := httptest.NewRecorder()
	h.GetLeaderboard(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeResponse(t, rr)
	assert.True(t, resp.Success)
}

func TestGetLeaderboardWithEntries(t *testing.T) {
	h := newTestHandler(t)

	_, err := h.Progression.Award(context.Background(), "ana@test.io", 90, "manual")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/leaderboard?limit=10", nil)
	rr := httptest.NewRecorder()
	h.GetLeaderboard(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	entries, ok := decodeResponse(t, rr).Data.([]interface{})
	require.True(t, ok)
	require.Len(t, entries, 1)

	first, ok := entries[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ana", first["userName"])
	assert.Equal(t, float64(90), first["weeklyXp"])
}

func TestGetLeaderboardByUnknownTier(t *testing.T) {
	h := newTestHandler(t)

	req := mux.SetURLVars(
		httptest.NewRequest(http.MethodGet, "/leaderboard/tier/platinum", nil),
		map[string]string{"tierId": "platinum"},
	)
	rr := httptest.NewRecorder()
	h.GetLeaderboardByTier(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetLeagueTable(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/progression/leagues", nil)
	rr := httptest.NewRecorder()
	h.GetLeagueTable(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	tiers, ok := decodeResponse(t, rr).Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, tiers, 5)
}

func TestHealthCheck(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	h.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", decodeResponse(t, rr).Message)
}
