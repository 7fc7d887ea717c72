package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/inventario"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// InsumoHandler maneja el catálogo de insumos y su libro de movimientos.
type InsumoHandler struct {
	insumoUC    *inventario.InsumoUseCase
	registrarUC *inventario.RegistrarMovimientoUseCase
}

// NewInsumoHandler construye el handler.
func NewInsumoHandler(insumoUC *inventario.InsumoUseCase, registrarUC *inventario.RegistrarMovimientoUseCase) *InsumoHandler {
	return &InsumoHandler{insumoUC: insumoUC, registrarUC: registrarUC}
}

func toInsumoResponse(i *entity.Insumo) dto.InsumoResponse {
	return dto.InsumoResponse{
		ID:            i.ID,
		Nombre:        i.Nombre,
		CategoriaID:   i.CategoriaID,
		Codigo:        i.Codigo,
		Unidad:        i.Unidad,
		StockActual:   i.StockActual,
		StockMinimo:   i.StockMinimo,
		BajoMinimo:    i.BajoMinimo(),
		EsHerramienta: i.EsHerramienta,
		Descripcion:   i.Descripcion,
		ActualizadoEn: i.ActualizadoEn,
	}
}

func toMovimientoStockResponse(m *entity.MovimientoStock) dto.MovimientoStockResponse {
	return dto.MovimientoStockResponse{
		ID:         m.ID,
		InsumoID:   m.InsumoID,
		Tipo:       m.Tipo,
		Cantidad:   m.Cantidad,
		Fecha:      m.Fecha,
		Referencia: m.Referencia,
		UsuarioID:  m.UsuarioID,
		CreadoEn:   m.CreadoEn,
	}
}

// Crear da de alta un insumo con stock cero.
// POST /api/insumos
func (h *InsumoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearInsumoRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	insumo, err := h.insumoUC.Crear(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toInsumoResponse(insumo))
}

// Actualizar modifica los datos del catálogo. El stock no se toca por acá.
// PUT /api/insumos/:id
func (h *InsumoHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarInsumoRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	insumo, err := h.insumoUC.Actualizar(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toInsumoResponse(insumo))
}

// Obtener devuelve un insumo por ID.
// GET /api/insumos/:id
func (h *InsumoHandler) Obtener(c *fiber.Ctx) error {
	insumo, err := h.insumoUC.Obtener(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toInsumoResponse(insumo))
}

// Listar lista insumos. Filtros: q, categoria_id, bajo_minimo, limit, offset.
// GET /api/insumos
func (h *InsumoHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()

	insumos, err := h.insumoUC.Listar(repository.InsumoFiltro{
		Q:              c.Query("q"),
		CategoriaID:    c.Query("categoria_id"),
		SoloBajoMinimo: c.QueryBool("bajo_minimo"),
		Limit:          page.Limit,
		Offset:         page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.InsumoResponse, 0, len(insumos))
	for _, i := range insumos {
		out = append(out, toInsumoResponse(i))
	}
	return c.JSON(fiber.Map{"insumos": out, "page": dto.PageResponse{Limit: page.Limit, Offset: page.Offset}})
}

// RegistrarMovimiento godoc
// @Summary      Registrar movimiento de stock
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del insumo"
// @Param        body  body  dto.RegistrarMovimientoStockRequest  true  "tipo (ENTRADA|SALIDA|AJUSTE), cantidad, referencia"
// @Success      201   {object}  dto.MovimientoStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/insumos/{id}/movimientos [post]
func (h *InsumoHandler) RegistrarMovimiento(c *fiber.Ctx) error {
	var in dto.RegistrarMovimientoStockRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	mov, err := h.registrarUC.Registrar(c.Context(), inventario.MovimientoStockInput{
		InsumoID:   c.Params("id"),
		Tipo:       in.Tipo,
		Cantidad:   in.Cantidad,
		Referencia: in.Referencia,
		UsuarioID:  GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovimientoStockResponse(mov))
}

// ListarMovimientos devuelve el historial de movimientos de un insumo.
// GET /api/insumos/:id/movimientos
func (h *InsumoHandler) ListarMovimientos(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()

	movs, err := h.insumoUC.ListarMovimientos(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MovimientoStockResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, toMovimientoStockResponse(m))
	}
	return c.JSON(fiber.Map{"movimientos": out})
}

// VerificarConsistencia contrasta el stock derivado con la suma del libro.
// GET /api/insumos/:id/consistencia
func (h *InsumoHandler) VerificarConsistencia(c *fiber.Ctx) error {
	res, err := h.insumoUC.VerificarConsistencia(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"insumo_id":       res.InsumoID,
		"stock_actual":    res.StockActual,
		"suma_movimiento": res.SumaMovimiento,
		"consistente":     res.Consistente,
	})
}

// CrearCategoria da de alta una categoría de insumos.
// POST /api/insumos-categorias
func (h *InsumoHandler) CrearCategoria(c *fiber.Ctx) error {
	var in struct {
		Nombre string `json:"nombre"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cat, err := h.insumoUC.CrearCategoria(in.Nombre)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": cat.ID, "nombre": cat.Nombre})
}

// ListarCategorias lista las categorías de insumos.
// GET /api/insumos-categorias
func (h *InsumoHandler) ListarCategorias(c *fiber.Ctx) error {
	cats, err := h.insumoUC.ListarCategorias()
	if err != nil {
		return respondError(c, err)
	}
	out := make([]fiber.Map, 0, len(cats))
	for _, cat := range cats {
		out = append(out, fiber.Map{"id": cat.ID, "nombre": cat.Nombre})
	}
	return c.JSON(out)
}
