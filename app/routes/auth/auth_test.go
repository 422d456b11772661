package auth

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/darlculus/franciscancatholicschool-sub001/app/config"
)

func setupAuthApp(t *testing.T) *fiber.App {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	config.AppConfig = &config.Config{
		JWTSecret: "test-secret",
		Bursar: config.BursarAccount{
			Email:        "bursar@franciscancatholicschool.edu.ng",
			PasswordHash: string(hash),
			FirstName:    "Adaeze",
			LastName:     "Okafor",
		},
	}
	t.Cleanup(func() { config.AppConfig = nil })

	app := fiber.New()
	SetupAuthRoutes(app)
	return app
}

func postLogin(t *testing.T, app *fiber.App, email, password string) (int, map[string]interface{}) {
	t.Helper()

	payload, _ := json.Marshal(fiber.Map{"email": email, "password": password})
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestLoginSuccess(t *testing.T) {
	app := setupAuthApp(t)

	code, body := postLogin(t, app, "bursar@franciscancatholicschool.edu.ng", "correct-horse")
	require.Equal(t, 200, code)

	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "bursar@franciscancatholicschool.edu.ng", claims.Email)
	assert.Equal(t, []string{RoleBursar}, claims.Roles)
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupAuthApp(t)

	code, body := postLogin(t, app, "bursar@franciscancatholicschool.edu.ng", "wrong")
	assert.Equal(t, 401, code)
	assert.Equal(t, "Invalid credentials", body["error"])
}

func TestLoginUnknownEmailSameMessage(t *testing.T) {
	app := setupAuthApp(t)

	code, body := postLogin(t, app, "nobody@franciscancatholicschool.edu.ng", "correct-horse")
	assert.Equal(t, 401, code)

	// Same generic message as a wrong password: no user-existence leak.
	assert.Equal(t, "Invalid credentials", body["error"])
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret", string(hash)))
	assert.False(t, CheckPasswordHash("other", string(hash)))
}

func TestAuthMiddleware(t *testing.T) {
	app := setupAuthApp(t)
	app.Get("/protected", AuthMiddleware, RoleMiddleware(RoleBursar), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})

	// No token
	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	// Garbage token
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err = app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	// Valid token, wrong role
	token, err := GenerateJWT("t-1", "teacher@franciscancatholicschool.edu.ng", "Ngozi", "Ade", []string{"teacher"})
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	// Valid bursar token
	token, err = GenerateJWT("bursar-1", "bursar@franciscancatholicschool.edu.ng", "Adaeze", "Okafor", []string{RoleBursar})
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
