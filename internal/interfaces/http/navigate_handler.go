package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Intranet-api/internal/application/dto"
	"github.com/jhoicas/Intranet-api/pkg/jwt"
)

// NavigateHandler expone el resolver de navegación. El token es opcional: sin token se
// resuelve como visitante anónimo, con token inválido también (guard por redirect, no
// por error visible).
type NavigateHandler struct {
	jwtSecret string
}

// NewNavigateHandler construye el handler de navegación.
func NewNavigateHandler(jwtSecret string) *NavigateHandler {
	return &NavigateHandler{jwtSecret: jwtSecret}
}

// Resolve godoc
// @Summary      Resolver fragmento de navegación
// @Tags         navigate
// @Produce      json
// @Param        fragment  query  string  false  "Fragmento de URL (ej. /accounts)"
// @Success      200  {object}  dto.NavigateResponse
// @Router       /api/navigate [get]
func (h *NavigateHandler) Resolve(c *fiber.Ctx) error {
	authenticated, role := h.identity(c)
	page, redirect := ResolvePage(c.Query("fragment", "/"), authenticated, role)
	return c.JSON(dto.NavigateResponse{Page: page, Redirect: redirect})
}

// identity intenta extraer la identidad del Bearer token si viene; nunca falla.
func (h *NavigateHandler) identity(c *fiber.Ctx) (bool, string) {
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return false, ""
	}
	_, role, err := jwt.Parse(h.jwtSecret, strings.TrimSpace(parts[1]))
	if err != nil {
		return false, ""
	}
	return true, role
}
