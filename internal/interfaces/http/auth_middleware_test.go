package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/Francoamora/munifinanzas-sub000/internal/interfaces/http"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
	pkgjwt "github.com/Francoamora/munifinanzas-sub000/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "munifinanzas-test"
	testExpMin    = 60
)

// buildTestApp arma una app Fiber mínima con una ruta protegida por
// AuthMiddleware + RequireRol y un handler que devuelve el rol del token.
func buildTestApp(check func(rol string) bool) *fiber.App {
	app := fiber.New()
	app.Get("/protegida",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRol(check),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"ok":  true,
				"rol": apphttp.GetRol(c),
			})
		},
	)
	return app
}

func tokenConRol(t *testing.T, rol string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, rol, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinTokenEs401(t *testing.T) {
	app := buildTestApp(domain.EsAdminSistema)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenBasuraEs401(t *testing.T) {
	app := buildTestApp(domain.EsAdminSistema)
	resp := doRequest(t, app, "Bearer no-es-un-jwt")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaInvalidaEs401(t *testing.T) {
	app := buildTestApp(domain.EsAdminSistema)
	tok, err := pkgjwt.Generate("otro-secret", testUserID, domain.RolAdminSistema, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token firmado con otro secret no debe pasar")
}

func TestRequireRol_AdminAccede(t *testing.T) {
	app := buildTestApp(domain.EsAdminSistema)
	resp := doRequest(t, app, tokenConRol(t, domain.RolAdminSistema))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, domain.RolAdminSistema, body["rol"])
}

func TestRequireRol_OperadorNoAccedeRutaDeAdmin(t *testing.T) {
	app := buildTestApp(domain.EsAdminSistema)
	resp := doRequest(t, app, tokenConRol(t, domain.RolOperadorSocial))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un operador no debe acceder a administración de usuarios")
}

// La jerarquía de roles se respeta: un chequeo de staff deja pasar al admin.
func TestRequireRol_JerarquiaStaffIncluyeAdmin(t *testing.T) {
	app := buildTestApp(domain.EsStaffFinanzas)

	for rol, esperado := range map[string]int{
		domain.RolAdminSistema:     http.StatusOK,
		domain.RolStaffFinanzas:    http.StatusOK,
		domain.RolOperadorFinanzas: http.StatusForbidden,
		domain.RolConsultaPolitica: http.StatusForbidden,
	} {
		resp := doRequest(t, app, tokenConRol(t, rol))
		assert.Equal(t, esperado, resp.StatusCode, rol)
		resp.Body.Close()
	}
}
