package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/social"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// SocialHandler maneja los padrones (beneficiarios, proveedores) y las
// atenciones al vecino.
type SocialHandler struct {
	padronUC   *social.PadronUseCase
	atencionUC *social.AtencionUseCase
}

// NewSocialHandler construye el handler.
func NewSocialHandler(padronUC *social.PadronUseCase, atencionUC *social.AtencionUseCase) *SocialHandler {
	return &SocialHandler{padronUC: padronUC, atencionUC: atencionUC}
}

func toBeneficiarioResponse(b *entity.Beneficiario) dto.BeneficiarioResponse {
	return dto.BeneficiarioResponse{
		ID:               b.ID,
		Apellido:         b.Apellido,
		Nombre:           b.Nombre,
		NombreCompleto:   b.NombreCompleto(),
		DNI:              b.DNI,
		Telefono:         b.Telefono,
		Direccion:        b.Direccion,
		Barrio:           b.Barrio,
		PagaServicios:    b.PagaServicios,
		DetalleServicios: b.DetalleServicios,
		TipoVinculo:      b.TipoVinculo,
		SectorLaboralID:  b.SectorLaboralID,
		PercibeBeneficio: b.PercibeBeneficio,
		BeneficioDetalle: b.BeneficioDetalle,
		BeneficioMonto:   b.BeneficioMonto,
		Activo:           b.Activo,
		Notas:            b.Notas,
	}
}

func toProveedorResponse(p *entity.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		CUIT:      p.CUIT,
		Telefono:  p.Telefono,
		Email:     p.Email,
		Direccion: p.Direccion,
		Activo:    p.Activo,
	}
}

func toAtencionResponse(a *entity.Atencion) dto.AtencionResponse {
	return dto.AtencionResponse{
		ID:             a.ID,
		Tipo:           a.Tipo,
		BeneficiarioID: a.BeneficiarioID,
		NombreTemporal: a.NombreTemporal,
		FechaAtencion:  a.FechaAtencion,
		Motivo:         a.Motivo,
		Detalle:        a.Detalle,
		DerivadoAreaID: a.DerivadoAreaID,
		Resuelto:       a.Resuelto,
		CreadoPorID:    a.CreadoPorID,
	}
}

// CrearBeneficiario da de alta una persona en el padrón. El DNI es único.
// POST /api/beneficiarios
func (h *SocialHandler) CrearBeneficiario(c *fiber.Ctx) error {
	var in dto.CrearBeneficiarioRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	b, err := h.padronUC.CrearBeneficiario(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toBeneficiarioResponse(b))
}

// ActualizarBeneficiario modifica una persona del padrón.
// PUT /api/beneficiarios/:id
func (h *SocialHandler) ActualizarBeneficiario(c *fiber.Ctx) error {
	var in dto.CrearBeneficiarioRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	b, err := h.padronUC.ActualizarBeneficiario(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toBeneficiarioResponse(b))
}

// ObtenerBeneficiario devuelve una persona por ID.
// GET /api/beneficiarios/:id
func (h *SocialHandler) ObtenerBeneficiario(c *fiber.Ctx) error {
	b, err := h.padronUC.ObtenerBeneficiario(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toBeneficiarioResponse(b))
}

// ListarBeneficiarios lista personas. Filtro: q (insensible a tildes).
// GET /api/beneficiarios
func (h *SocialHandler) ListarBeneficiarios(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()

	personas, err := h.padronUC.ListarBeneficiarios(repository.BeneficiarioFiltro{
		Q:      c.Query("q"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.BeneficiarioResponse, 0, len(personas))
	for _, b := range personas {
		out = append(out, toBeneficiarioResponse(b))
	}
	return c.JSON(fiber.Map{"beneficiarios": out, "page": dto.PageResponse{Limit: page.Limit, Offset: page.Offset}})
}

// SugerirBeneficiarios autocompletado para formularios de carga.
// GET /api/beneficiarios/sugerencias?q=per
func (h *SocialHandler) SugerirBeneficiarios(c *fiber.Ctx) error {
	sugerencias, err := h.padronUC.SugerirBeneficiarios(c.Query("q"), c.QueryInt("n"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sugerencias)
}

// CrearProveedor da de alta un proveedor. El CUIT, si viene, es único.
// POST /api/proveedores
func (h *SocialHandler) CrearProveedor(c *fiber.Ctx) error {
	var in dto.CrearProveedorRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	p, err := h.padronUC.CrearProveedor(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProveedorResponse(p))
}

// ListarProveedores lista proveedores. Filtro: q.
// GET /api/proveedores
func (h *SocialHandler) ListarProveedores(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()

	proveedores, err := h.padronUC.ListarProveedores(c.Query("q"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		out = append(out, toProveedorResponse(p))
	}
	return c.JSON(fiber.Map{"proveedores": out, "page": dto.PageResponse{Limit: page.Limit, Offset: page.Offset}})
}

// ObtenerProveedor devuelve un proveedor por ID.
// GET /api/proveedores/:id
func (h *SocialHandler) ObtenerProveedor(c *fiber.Ctx) error {
	p, err := h.padronUC.ObtenerProveedor(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProveedorResponse(p))
}

// ActualizarProveedor modifica los datos de contacto.
// PUT /api/proveedores/:id
func (h *SocialHandler) ActualizarProveedor(c *fiber.Ctx) error {
	var in dto.CrearProveedorRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	p, err := h.padronUC.ActualizarProveedor(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProveedorResponse(p))
}

// SugerirProveedores autocompletado por razón social o CUIT.
// GET /api/proveedores/sugerencias?q=ferre
func (h *SocialHandler) SugerirProveedores(c *fiber.Ctx) error {
	sugerencias, err := h.padronUC.SugerirProveedores(c.Query("q"), c.QueryInt("n"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sugerencias)
}

// CrearAtencion registra una atención en ventanilla.
// POST /api/atenciones
func (h *SocialHandler) CrearAtencion(c *fiber.Ctx) error {
	var in dto.CrearAtencionRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	atencion, err := h.atencionUC.Crear(in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toAtencionResponse(atencion))
}

// MarcarResuelta cierra una atención. Es idempotente.
// POST /api/atenciones/:id/resuelta
func (h *SocialHandler) MarcarResuelta(c *fiber.Ctx) error {
	atencion, err := h.atencionUC.MarcarResuelta(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toAtencionResponse(atencion))
}

// ListarAtenciones lista atenciones. Filtros: tipo, beneficiario_id, desde, hasta.
// GET /api/atenciones
func (h *SocialHandler) ListarAtenciones(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()

	atenciones, err := h.atencionUC.Listar(repository.AtencionFiltro{
		Tipo:           c.Query("tipo"),
		BeneficiarioID: c.Query("beneficiario_id"),
		Desde:          queryFecha(c, "desde"),
		Hasta:          queryFecha(c, "hasta"),
		Limit:          page.Limit,
		Offset:         page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.AtencionResponse, 0, len(atenciones))
	for _, a := range atenciones {
		out = append(out, toAtencionResponse(a))
	}
	return c.JSON(fiber.Map{"atenciones": out, "page": dto.PageResponse{Limit: page.Limit, Offset: page.Offset}})
}
