package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Planta-api/internal/interfaces/http"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Planta-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "planta-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con una ruta protegida
// por AuthMiddleware + RequireAdmin y una ruta de consulta con NoCache.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protegida",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireAdmin(),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"ok":      true,
				"usuario": apphttp.GetUsuarioID(c),
				"rol":     apphttp.GetRol(c),
			})
		},
	)
	app.Get("/consulta", apphttp.NoCache(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func tokenConRol(t *testing.T, rol string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, 7, rol, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware + RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_AdminAccede(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protegida", tokenConRol(t, entity.RolAdmin))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_UserSinRolAdmin(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protegida", tokenConRol(t, entity.RolUser))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddleware_SinToken(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protegida", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, "/protegida", "Bearer no-es-un-jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Firmado con otro secreto.
	tok, err := pkgjwt.Generate("otro-secreto", 7, entity.RolAdmin, testIssuer, testExpMin)
	require.NoError(t, err)
	resp = doRequest(t, app, "/protegida", "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoCabecera(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protegida", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// NoCache
// ──────────────────────────────────────────────────────────────────────────────

// Las rutas de consulta prohíben el cacheo en el cliente: las tablets sondean
// el estado y una respuesta cacheada mostraría tareas ya cerradas.
func TestNoCache_Cabeceras(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/consulta", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "no-store, no-cache, must-revalidate, max-age=0", resp.Header.Get("Cache-Control"))
	assert.Equal(t, "no-cache", resp.Header.Get("Pragma"))
	assert.Equal(t, "0", resp.Header.Get("Expires"))
}
