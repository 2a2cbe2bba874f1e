package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Intranet-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Resolver de navegación
// ──────────────────────────────────────────────────────────────────────────────

func TestResolvePage_Tabla(t *testing.T) {
	cases := []struct {
		name          string
		fragment      string
		authenticated bool
		role          string
		wantPage      string
		wantRedirect  string
	}{
		{"raíz anónimo", "/", false, "", apphttp.PageHome, ""},
		{"raíz con hash", "#/", false, "", apphttp.PageHome, ""},
		{"fragmento vacío", "", false, "", apphttp.PageHome, ""},
		{"login anónimo", "/login", false, "", apphttp.PageLogin, ""},
		{"registro anónimo", "/register", false, "", apphttp.PageRegister, ""},
		{"verify-email anónimo", "/verify-email", false, "", apphttp.PageVerifyEmail, ""},
		{"desconocido resuelve a home", "/lo-que-sea", false, "", apphttp.PageHome, ""},

		// Guard de sesión: sin identidad → /login
		{"profile sin sesión", "/profile", false, "", "", "/login"},
		{"requests sin sesión", "/requests", false, "", "", "/login"},
		{"profile con sesión", "/profile", true, "user", apphttp.PageProfile, ""},
		{"requests con sesión user", "/requests", true, "user", apphttp.PageRequests, ""},

		// Guard admin: sin rol admin → /
		{"accounts como user", "/accounts", true, "user", "", "/"},
		{"employees como user", "/employees", true, "user", "", "/"},
		{"departments como user", "/departments", true, "user", "", "/"},
		{"accounts sin sesión", "/accounts", false, "", "", "/"},
		{"accounts como admin", "/accounts", true, "admin", apphttp.PageAccounts, ""},
		{"employees como admin", "/employees", true, "admin", apphttp.PageEmployees, ""},
		{"departments como admin", "/departments", true, "admin", apphttp.PageDepartments, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, redirect := apphttp.ResolvePage(tc.fragment, tc.authenticated, tc.role)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantRedirect, redirect)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Endpoint /api/navigate
// ──────────────────────────────────────────────────────────────────────────────

func navigateApp() *fiber.App {
	app := fiber.New()
	h := apphttp.NewNavigateHandler(testJWTSecret)
	app.Get("/api/navigate", h.Resolve)
	return app
}

func resolveVia(t *testing.T, app *fiber.App, fragment, authHeader string) (page, redirect string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/navigate?fragment="+fragment, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "navegar nunca responde error")

	var body struct {
		Page     string `json:"page"`
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Page, body.Redirect
}

func TestNavigate_AnonimoYAdmin(t *testing.T) {
	app := navigateApp()

	page, redirect := resolveVia(t, app, "/accounts", "")
	assert.Empty(t, page)
	assert.Equal(t, "/", redirect, "admin-only sin sesión redirige a home")

	page, redirect = resolveVia(t, app, "/accounts", tokenForRole(t, "admin"))
	assert.Equal(t, apphttp.PageAccounts, page)
	assert.Empty(t, redirect)
}

// Token inválido cuenta como visitante anónimo, sin error visible.
func TestNavigate_TokenInvalido_ResuelveComoAnonimo(t *testing.T) {
	app := navigateApp()

	page, redirect := resolveVia(t, app, "/profile", "Bearer token.roto.aqui")
	assert.Empty(t, page)
	assert.Equal(t, "/login", redirect)
}
