package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/finanzas"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// MovimientoHandler maneja los movimientos financieros manuales.
type MovimientoHandler struct {
	uc *finanzas.MovimientoUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *finanzas.MovimientoUseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

func toMovimientoResponse(m *entity.Movimiento) dto.MovimientoResponse {
	return dto.MovimientoResponse{
		ID:             m.ID,
		Tipo:           m.Tipo,
		Estado:         m.Estado,
		Fecha:          m.FechaOperacion,
		Monto:          m.Monto,
		CategoriaID:    m.CategoriaID,
		Descripcion:    m.Descripcion,
		OrdenID:        m.OrdenID,
		ProveedorID:    m.ProveedorID,
		BeneficiarioID: m.BeneficiarioID,
		VehiculoID:     m.VehiculoID,
		Litros:         m.Litros,
		CreadoPorID:    m.CreadoPorID,
		CreadoEn:       m.CreadoEn,
	}
}

// Crear carga un movimiento manual. Sin rol aprobador entra como BORRADOR.
// POST /api/movimientos
func (h *MovimientoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearMovimientoRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	mov, err := h.uc.Crear(in, GetUserID(c), GetRol(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovimientoResponse(mov))
}

// CambiarEstado aprueba o rechaza un borrador.
// POST /api/movimientos/:id/estado
func (h *MovimientoHandler) CambiarEstado(c *fiber.Ctx) error {
	var in dto.CambiarEstadoMovimientoRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	mov, err := h.uc.CambiarEstado(c.Params("id"), in.Estado, GetRol(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovimientoResponse(mov))
}

// Obtener devuelve un movimiento por ID.
// GET /api/movimientos/:id
func (h *MovimientoHandler) Obtener(c *fiber.Ctx) error {
	mov, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovimientoResponse(mov))
}

// Listar lista movimientos. Filtros: tipo, estado (vacío = aprobados,
// TODOS = todos), q, desde, hasta.
// GET /api/movimientos
func (h *MovimientoHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()

	movs, err := h.uc.Listar(repository.MovimientoFiltro{
		Tipo:   c.Query("tipo"),
		Estado: c.Query("estado"),
		Q:      c.Query("q"),
		Desde:  queryFecha(c, "desde"),
		Hasta:  queryFecha(c, "hasta"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, toMovimientoResponse(m))
	}
	return c.JSON(fiber.Map{"movimientos": out, "page": dto.PageResponse{Limit: page.Limit, Offset: page.Offset}})
}
