package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitlog/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMyProfile(t *testing.T) {
	s, db := newTestServer(t)
	alice := createUser(t, db, "alice", false)

	app := authedApp(alice.ID)
	app.Get("/users/me", s.GetMyProfile)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/me", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, "alice", user.Username)
}

func TestUpdateMyProfile(t *testing.T) {
	s, db := newTestServer(t)
	alice := createUser(t, db, "alice", false)
	createUser(t, db, "bob", false)

	app := authedApp(alice.ID)
	app.Put("/users/me", s.UpdateMyProfile)

	put := func(t *testing.T, username string) *http.Response {
		t.Helper()
		body, err := json.Marshal(fiber.Map{"username": username})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPut, "/users/me", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("Success", func(t *testing.T) {
		resp := put(t, "alice_new")
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var user models.User
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
		assert.Equal(t, "alice_new", user.Username)
	})

	t.Run("Username Taken", func(t *testing.T) {
		resp := put(t, "bob")
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Invalid Username", func(t *testing.T) {
		resp := put(t, "x")
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestPromoteToAdmin(t *testing.T) {
	s, db := newTestServer(t)
	admin := createUser(t, db, "admin", true)
	regular := createUser(t, db, "regular", false)

	app := authedApp(admin.ID)
	app.Post("/users/:id/promote-admin", s.AdminRequired(), s.PromoteToAdmin)

	url := fmt.Sprintf("/users/%d/promote-admin", regular.ID)
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, url, nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var promoted models.User
	require.NoError(t, db.First(&promoted, regular.ID).Error)
	assert.True(t, promoted.IsAdmin)
}
