package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSignup(t *testing.T) {
	s, _ := newTestServer(t)
	app := fiber.New()
	app.Post("/signup", s.Signup)

	tests := []struct {
		name           string
		body           map[string]string
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{
				"username": "alice",
				"email":    "alice@example.com",
				"password": "SecurePass12!@",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Duplicate Email",
			body: map[string]string{
				"username": "alice2",
				"email":    "alice@example.com",
				"password": "SecurePass12!@",
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Weak Password",
			body: map[string]string{
				"username": "bob",
				"email":    "bob@example.com",
				"password": "weak",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Missing Fields",
			body: map[string]string{
				"username": "carol",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid Email",
			body: map[string]string{
				"username": "dave",
				"email":    "not-an-email",
				"password": "SecurePass12!@",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, "/signup", tt.body)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusCreated {
				var body map[string]any
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.NotEmpty(t, body["token"])
				user, ok := body["user"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "alice", user["username"])
				// Password hash must never leak.
				_, leaked := user["password"]
				assert.False(t, leaked)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	s, db := newTestServer(t)
	app := fiber.New()
	app.Post("/login", s.Login)

	createUser(t, db, "alice", false)

	t.Run("Success", func(t *testing.T) {
		resp := postJSON(t, app, "/login", map[string]string{
			"email":    "alice@example.com",
			"password": "SecurePass12!@",
		})
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotEmpty(t, body["token"])
	})

	t.Run("Wrong Password", func(t *testing.T) {
		resp := postJSON(t, app, "/login", map[string]string{
			"email":    "alice@example.com",
			"password": "WrongPass12!@",
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		resp := postJSON(t, app, "/login", map[string]string{
			"email":    "ghost@example.com",
			"password": "SecurePass12!@",
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAuthRequired(t *testing.T) {
	s, db := newTestServer(t)
	user := createUser(t, db, "alice", false)

	app := fiber.New()
	app.Get("/protected", s.AuthRequired(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("userID")})
	})

	t.Run("Missing Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Valid Token", func(t *testing.T) {
		token, err := s.generateToken(user.ID, user.Username)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]float64
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, float64(user.ID), body["user_id"])
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		other := &Server{config: s.config}
		otherCfg := *s.config
		otherCfg.JWTSecret = "a-completely-different-secret-key!!"
		other.config = &otherCfg

		token, err := other.generateToken(user.ID, user.Username)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAdminRequired(t *testing.T) {
	s, db := newTestServer(t)
	admin := createUser(t, db, "admin", true)
	regular := createUser(t, db, "regular", false)

	newApp := func(userID uint) *fiber.App {
		app := authedApp(userID)
		app.Get("/admin", s.AdminRequired(), func(c *fiber.Ctx) error {
			return c.SendStatus(http.StatusOK)
		})
		return app
	}

	t.Run("Admin Allowed", func(t *testing.T) {
		resp, err := newApp(admin.ID).Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Regular Forbidden", func(t *testing.T) {
		resp, err := newApp(regular.ID).Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}
