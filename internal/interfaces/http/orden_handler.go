package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/finanzas"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// OrdenHandler maneja las órdenes de pago/compra y su impresión.
type OrdenHandler struct {
	uc    *finanzas.OrdenUseCase
	pdfUC *finanzas.PDFUseCase
}

// NewOrdenHandler construye el handler.
func NewOrdenHandler(uc *finanzas.OrdenUseCase, pdfUC *finanzas.PDFUseCase) *OrdenHandler {
	return &OrdenHandler{uc: uc, pdfUC: pdfUC}
}

func toOrdenResponse(o *entity.Orden, lineas []*entity.OrdenLinea) dto.OrdenResponse {
	resp := dto.OrdenResponse{
		ID:              o.ID,
		Numero:          o.Numero,
		Rubro:           o.Rubro,
		Estado:          o.Estado,
		Fecha:           o.Fecha,
		ProveedorID:     o.ProveedorID,
		ProveedorNombre: o.ProveedorNombre,
		ProveedorCUIT:   o.ProveedorCUIT,
		Observaciones:   o.Observaciones,
		Total:           entity.TotalLineas(lineas),
		CreadoPorID:     o.CreadoPorID,
		AutorizadoPorID: o.AutorizadoPorID,
		CreadoEn:        o.CreadoEn,
	}
	for _, l := range lineas {
		resp.Lineas = append(resp.Lineas, dto.OrdenLineaResponse{
			ID:             l.ID,
			CategoriaID:    l.CategoriaID,
			AreaID:         l.AreaID,
			BeneficiarioID: l.BeneficiarioID,
			Descripcion:    l.Descripcion,
			Monto:          l.Monto,
		})
	}
	return resp
}

// Crear da de alta una orden en BORRADOR con número autonumerado por rubro.
// POST /api/ordenes
func (h *OrdenHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearOrdenRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	orden, err := h.uc.Crear(c.Context(), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": orden.ID, "numero": orden.Numero, "estado": orden.Estado})
}

// Actualizar reemplaza cabecera y líneas (solo borradores).
// PUT /api/ordenes/:id
func (h *OrdenHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarOrdenRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	orden, err := h.uc.Actualizar(c.Context(), c.Params("id"), in, GetRol(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"id": orden.ID, "numero": orden.Numero, "estado": orden.Estado})
}

// CambiarEstado godoc
// @Summary      Aplicar una acción del ciclo de vida de la orden
// @Description  AUTORIZAR y CERRAR exigen líneas con categoría y total mayor a
//
//	cero. CERRAR genera el movimiento financiero en la misma transacción.
//
// @Tags         ordenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.CambiarEstadoOrdenRequest  true  "accion: AUTORIZAR | CERRAR | ANULAR | REABRIR"
// @Success      200   {object}  map[string]string
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id}/estado [post]
func (h *OrdenHandler) CambiarEstado(c *fiber.Ctx) error {
	var in dto.CambiarEstadoOrdenRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	orden, err := h.uc.CambiarEstado(c.Context(), c.Params("id"), in.Accion, GetUserID(c), GetRol(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"id": orden.ID, "numero": orden.Numero, "estado": orden.Estado})
}

// Obtener devuelve la orden con sus líneas y el total calculado.
// GET /api/ordenes/:id
func (h *OrdenHandler) Obtener(c *fiber.Ctx) error {
	orden, lineas, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toOrdenResponse(orden, lineas))
}

// Listar lista órdenes. Filtros: estado (vacío = pendientes, TODAS = todas),
// rubro, q, desde, hasta.
// GET /api/ordenes
func (h *OrdenHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()

	ordenes, err := h.uc.Listar(repository.OrdenFiltro{
		Estado: c.Query("estado"),
		Rubro:  c.Query("rubro"),
		Q:      c.Query("q"),
		Desde:  queryFecha(c, "desde"),
		Hasta:  queryFecha(c, "hasta"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.OrdenResponse, 0, len(ordenes))
	for _, o := range ordenes {
		out = append(out, toOrdenResponse(o, nil))
	}
	return c.JSON(fiber.Map{"ordenes": out, "page": dto.PageResponse{Limit: page.Limit, Offset: page.Offset}})
}

// DescargarPDF genera la orden imprimible. Los borradores no se imprimen.
// GET /api/ordenes/:id/pdf
func (h *OrdenHandler) DescargarPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DescargarOrdenPDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
