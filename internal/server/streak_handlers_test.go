package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitlog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreakHandlers(t *testing.T) {
	s, db := newTestServer(t)
	alice := createUser(t, db, "alice", false)
	binding := createRoutineFor(t, s, db, alice, "Push Day")

	// Schedule every weekday so RecordStreak works no matter what day the
	// suite runs on.
	for day := uint(0); day < models.DaysPerWeek; day++ {
		require.NoError(t, db.Create(&models.WeeklyRoutine{
			UserID:         alice.ID,
			UsersRoutineID: binding.ID,
			DayIndex:       day,
		}).Error)
	}

	app := authedApp(alice.ID)
	app.Get("/routine-streaks", s.GetStreaks)
	app.Post("/routine-streaks", s.RecordStreak)
	app.Get("/routine-streaks/last", s.GetLastStreak)
	app.Get("/routine-streaks/:id", s.GetStreak)

	t.Run("Last With No History", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/routine-streaks/last", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	var recorded models.RoutineStreak

	t.Run("Record", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/routine-streaks", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		require.NoError(t, json.NewDecoder(resp.Body).Decode(&recorded))
		require.NotNil(t, recorded.MirroredRoutineID)
		assert.Equal(t, binding.MirroredRoutineID, *recorded.MirroredRoutineID)
	})

	t.Run("Record Twice Conflicts", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/routine-streaks", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("List", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/routine-streaks", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var streaks []models.RoutineStreak
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&streaks))
		assert.Len(t, streaks, 1)
	})

	t.Run("Get By ID", func(t *testing.T) {
		url := fmt.Sprintf("/routine-streaks/%d", recorded.ID)
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Someone Else's Streak", func(t *testing.T) {
		bob := createUser(t, db, "bob", false)
		bobApp := authedApp(bob.ID)
		bobApp.Get("/routine-streaks/:id", s.GetStreak)

		url := fmt.Sprintf("/routine-streaks/%d", recorded.ID)
		resp, err := bobApp.Test(httptest.NewRequest(http.MethodGet, url, nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestRecordStreak_NoSchedule(t *testing.T) {
	s, db := newTestServer(t)
	alice := createUser(t, db, "alice", false)

	app := authedApp(alice.ID)
	app.Post("/routine-streaks", s.RecordStreak)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/routine-streaks", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
