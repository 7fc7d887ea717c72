package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/auth"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
)

// AuthHandler maneja login y administración de cuentas.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login autentica y devuelve el JWT con el rol adentro.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	resp, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// CrearUsuario da de alta una cuenta (solo administración).
// POST /api/usuarios
func (h *AuthHandler) CrearUsuario(c *fiber.Ctx) error {
	var in dto.CrearUsuarioRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	usuario, err := h.uc.CrearUsuario(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usuario)
}

// ListarUsuarios lista las cuentas del sistema (solo administración).
// GET /api/usuarios
func (h *AuthHandler) ListarUsuarios(c *fiber.Ctx) error {
	usuarios, err := h.uc.ListarUsuarios()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(usuarios)
}
