package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	apphttp "github.com/jhoicas/tienda-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/tienda-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "tienda-api-test"
	testExpMin    = 60

	customerID     = "00000000-0000-0000-0000-000000000001"
	adminID        = "00000000-0000-0000-0000-000000000002"
	deactivatedID  = "00000000-0000-0000-0000-000000000003"
	unknownUserID  = "00000000-0000-0000-0000-000000000099"
)

// fakeUserLoader resuelve usuarios desde un mapa en memoria, como haría el
// repo contra la DB en cada request.
type fakeUserLoader struct{ users map[string]*entity.User }

func (f *fakeUserLoader) GetByID(id string) (*entity.User, error) { return f.users[id], nil }

func newLoader() *fakeUserLoader {
	return &fakeUserLoader{users: map[string]*entity.User{
		customerID:    {ID: customerID, Role: entity.RoleCustomer, IsActive: true},
		adminID:       {ID: adminID, Role: entity.RoleAdmin, IsActive: true},
		deactivatedID: {ID: deactivatedID, Role: entity.RoleCustomer, IsActive: false},
	}}
}

// buildTestApp monta tres rutas, una por modo de autenticación.
func buildTestApp() *fiber.App {
	app := fiber.New()
	loader := newLoader()

	whoami := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c), "role": apphttp.GetRole(c)})
	}
	app.Get("/protected", apphttp.AuthRequired(testJWTSecret, loader), whoami)
	app.Get("/optional", apphttp.AuthOptional(testJWTSecret, loader), whoami)
	app.Get("/admin", apphttp.AuthRequired(testJWTSecret, loader), apphttp.RequireAdmin(), whoami)
	return app
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, testIssuer, testExpMin)
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

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthRequired
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthRequired_TokenValido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", tokenFor(t, customerID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, customerID, body["user_id"])
	assert.Equal(t, "customer", body["role"], "el rol viene de la DB, no del token")
}

func TestAuthRequired_SinToken(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequired_TokenMalFormado(t *testing.T) {
	app := buildTestApp()
	for _, header := range []string{"Bearer", "Bearer ", "Basic abc", "no-es-bearer xyz"} {
		resp := doRequest(t, app, "/protected", header)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q debe rechazarse", header)
		resp.Body.Close()
	}
}

func TestAuthRequired_FirmaInvalida(t *testing.T) {
	app := buildTestApp()
	otro, err := pkgjwt.Generate("otro-secret", customerID, testIssuer, testExpMin)
	require.NoError(t, err)
	resp := doRequest(t, app, "/protected", "Bearer "+otro)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token firmado para un usuario que ya no existe → 401: el token no basta,
// la cuenta debe seguir viva.
func TestAuthRequired_UsuarioInexistente(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", tokenFor(t, unknownUserID))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Cuenta desactivada con token todavía vigente → 403 inmediato.
func TestAuthRequired_CuentaDesactivada(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", tokenFor(t, deactivatedID))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthOptional
// ──────────────────────────────────────────────────────────────────────────────

// Sin token la request sigue como anónima, nunca corta con 401.
func TestAuthOptional_SinToken(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/optional", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "", body["user_id"], "sin token no hay identidad en el contexto")
}

// Token inválido tampoco corta: anónimo.
func TestAuthOptional_TokenInvalido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/optional", "Bearer basura")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "", body["user_id"])
}

// Con token válido sí se carga la identidad.
func TestAuthOptional_TokenValido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/optional", tokenFor(t, customerID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, customerID, body["user_id"])
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAdmin_AdminAccede(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/admin", tokenFor(t, adminID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "admin", body["role"])
}

// Un customer con token perfectamente válido no pasa el gate de admin.
func TestRequireAdmin_CustomerRechazado(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/admin", tokenFor(t, customerID))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
