package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/inventario"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// PrestamoHandler maneja el circuito del pañol.
type PrestamoHandler struct {
	uc *inventario.PrestamoUseCase
}

// NewPrestamoHandler construye el handler.
func NewPrestamoHandler(uc *inventario.PrestamoUseCase) *PrestamoHandler {
	return &PrestamoHandler{uc: uc}
}

func toPrestamoResponse(p *entity.Prestamo) dto.PrestamoResponse {
	return dto.PrestamoResponse{
		ID:              p.ID,
		InsumoID:        p.InsumoID,
		BeneficiarioID:  p.BeneficiarioID,
		Cantidad:        p.Cantidad,
		Estado:          p.Estado,
		FechaSalida:     p.FechaSalida,
		FechaDevolucion: p.FechaDevolucion,
		ObsSalida:       p.ObsSalida,
		ObsDevolucion:   p.ObsDevolucion,
	}
}

// Crear abre un préstamo de herramienta y descuenta el stock.
// POST /api/prestamos
func (h *PrestamoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearPrestamoRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	prestamo, err := h.uc.Crear(c.Context(), inventario.CrearPrestamoInput{
		InsumoID:       in.InsumoID,
		BeneficiarioID: in.BeneficiarioID,
		Cantidad:       in.Cantidad,
		Observacion:    in.Observacion,
		UsuarioID:      GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPrestamoResponse(prestamo))
}

// RegistrarDevolucion cierra el préstamo y reingresa el stock.
// POST /api/prestamos/:id/devolucion
func (h *PrestamoHandler) RegistrarDevolucion(c *fiber.Ctx) error {
	var in dto.DevolucionPrestamoRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	prestamo, err := h.uc.RegistrarDevolucion(c.Context(), c.Params("id"), in.Observacion, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toPrestamoResponse(prestamo))
}

// MarcarPerdido cierra el préstamo sin reingresar stock.
// POST /api/prestamos/:id/perdida
func (h *PrestamoHandler) MarcarPerdido(c *fiber.Ctx) error {
	var in dto.DevolucionPrestamoRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	prestamo, err := h.uc.MarcarPerdido(c.Context(), c.Params("id"), in.Observacion)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toPrestamoResponse(prestamo))
}

// Obtener devuelve un préstamo por ID.
// GET /api/prestamos/:id
func (h *PrestamoHandler) Obtener(c *fiber.Ctx) error {
	prestamo, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toPrestamoResponse(prestamo))
}

// Listar lista préstamos. Filtros: estado, insumo_id, beneficiario_id.
// GET /api/prestamos
func (h *PrestamoHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()

	prestamos, err := h.uc.Listar(repository.PrestamoFiltro{
		Estado:         c.Query("estado"),
		InsumoID:       c.Query("insumo_id"),
		BeneficiarioID: c.Query("beneficiario_id"),
		Limit:          page.Limit,
		Offset:         page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.PrestamoResponse, 0, len(prestamos))
	for _, p := range prestamos {
		out = append(out, toPrestamoResponse(p))
	}
	return c.JSON(fiber.Map{"prestamos": out, "page": dto.PageResponse{Limit: page.Limit, Offset: page.Offset}})
}
