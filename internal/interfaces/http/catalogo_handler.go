package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/finanzas"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
)

// CatalogoHandler maneja los catálogos financieros: categorías y áreas.
type CatalogoHandler struct {
	uc *finanzas.CategoriaUseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *finanzas.CategoriaUseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

type crearCategoriaRequest struct {
	Nombre        string `json:"nombre" validate:"required,max=100"`
	Tipo          string `json:"tipo" validate:"required,oneof=INGRESO GASTO AMBOS"`
	Grupo         string `json:"grupo" validate:"omitempty,max=100"`
	EsAyudaSocial bool   `json:"es_ayuda_social"`
	EsServicio    bool   `json:"es_servicio"`
	EsCombustible bool   `json:"es_combustible"`
	EsPersonal    bool   `json:"es_personal"`
	Descripcion   string `json:"descripcion" validate:"omitempty,max=300"`
}

func toCategoriaMap(cat *entity.Categoria) fiber.Map {
	return fiber.Map{
		"id":              cat.ID,
		"nombre":          cat.Nombre,
		"tipo":            cat.Tipo,
		"grupo":           cat.Grupo,
		"es_ayuda_social": cat.EsAyudaSocial,
		"es_servicio":     cat.EsServicio,
		"es_combustible":  cat.EsCombustible,
		"es_personal":     cat.EsPersonal,
		"descripcion":     cat.Descripcion,
	}
}

// CrearCategoria da de alta una categoría financiera. El nombre es único.
// POST /api/categorias
func (h *CatalogoHandler) CrearCategoria(c *fiber.Ctx) error {
	var in crearCategoriaRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	cat, err := h.uc.CrearCategoria(&entity.Categoria{
		Nombre:        in.Nombre,
		Tipo:          in.Tipo,
		Grupo:         in.Grupo,
		EsAyudaSocial: in.EsAyudaSocial,
		EsServicio:    in.EsServicio,
		EsCombustible: in.EsCombustible,
		EsPersonal:    in.EsPersonal,
		Descripcion:   in.Descripcion,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toCategoriaMap(cat))
}

// ListarCategorias lista categorías, opcionalmente por tipo (incluye AMBOS).
// GET /api/categorias
func (h *CatalogoHandler) ListarCategorias(c *fiber.Ctx) error {
	cats, err := h.uc.ListarCategorias(c.Query("tipo"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]fiber.Map, 0, len(cats))
	for _, cat := range cats {
		out = append(out, toCategoriaMap(cat))
	}
	return c.JSON(out)
}

// CrearArea da de alta un área municipal.
// POST /api/areas
func (h *CatalogoHandler) CrearArea(c *fiber.Ctx) error {
	var in struct {
		Nombre string `json:"nombre"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	area, err := h.uc.CrearArea(in.Nombre)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": area.ID, "nombre": area.Nombre})
}

// ListarAreas lista las áreas municipales.
// GET /api/areas
func (h *CatalogoHandler) ListarAreas(c *fiber.Ctx) error {
	areas, err := h.uc.ListarAreas()
	if err != nil {
		return respondError(c, err)
	}
	out := make([]fiber.Map, 0, len(areas))
	for _, a := range areas {
		out = append(out, fiber.Map{"id": a.ID, "nombre": a.Nombre})
	}
	return c.JSON(out)
}
