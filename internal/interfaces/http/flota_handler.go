package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/flota"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// FlotaHandler maneja vehículos y hojas de ruta.
type FlotaHandler struct {
	uc *flota.FlotaUseCase
}

// NewFlotaHandler construye el handler.
func NewFlotaHandler(uc *flota.FlotaUseCase) *FlotaHandler {
	return &FlotaHandler{uc: uc}
}

func toHojaRutaResponse(h *entity.HojaRuta) dto.HojaRutaResponse {
	return dto.HojaRutaResponse{
		ID:         h.ID,
		VehiculoID: h.VehiculoID,
		Fecha:      h.Fecha,
		Chofer:     h.Chofer,
		Destino:    h.Destino,
		KmSalida:   h.KmSalida,
		KmRegreso:  h.KmRegreso,
		Km:         h.KmRecorridos,
		Litros:     h.CombustibleLitros,
		Notas:      h.Observaciones,
	}
}

func toVehiculoResponse(v *entity.Vehiculo) dto.VehiculoResponse {
	return dto.VehiculoResponse{
		ID:          v.ID,
		Patente:     v.Patente,
		Descripcion: v.Descripcion,
		AreaID:      v.AreaID,
		Activo:      v.Activo,
	}
}

// CrearVehiculo da de alta un vehículo. La patente es única.
// POST /api/vehiculos
func (h *FlotaHandler) CrearVehiculo(c *fiber.Ctx) error {
	var in dto.CrearVehiculoRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	vehiculo, err := h.uc.CrearVehiculo(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toVehiculoResponse(vehiculo))
}

// ActualizarVehiculo modifica descripción, área y estado.
// PUT /api/vehiculos/:id
func (h *FlotaHandler) ActualizarVehiculo(c *fiber.Ctx) error {
	var in dto.ActualizarVehiculoRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	vehiculo, err := h.uc.ActualizarVehiculo(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toVehiculoResponse(vehiculo))
}

// ListarVehiculos lista la flota. Query: activos=true para solo activos.
// GET /api/vehiculos
func (h *FlotaHandler) ListarVehiculos(c *fiber.Ctx) error {
	vehiculos, err := h.uc.ListarVehiculos(c.QueryBool("activos"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.VehiculoResponse, 0, len(vehiculos))
	for _, v := range vehiculos {
		out = append(out, toVehiculoResponse(v))
	}
	return c.JSON(out)
}

// CrearHojaRuta registra el parte diario de un viaje.
// POST /api/hojas-ruta
func (h *FlotaHandler) CrearHojaRuta(c *fiber.Ctx) error {
	var in dto.CrearHojaRutaRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	hoja, err := h.uc.CrearHojaRuta(in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toHojaRutaResponse(hoja))
}

// ActualizarHojaRuta corrige un parte ya cargado.
// PUT /api/hojas-ruta/:id
func (h *FlotaHandler) ActualizarHojaRuta(c *fiber.Ctx) error {
	var in dto.CrearHojaRutaRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	hoja, err := h.uc.ActualizarHojaRuta(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toHojaRutaResponse(hoja))
}

// ListarHojasRuta lista partes diarios. Filtros: vehiculo_id, desde, hasta.
// GET /api/hojas-ruta
func (h *FlotaHandler) ListarHojasRuta(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()

	hojas, err := h.uc.ListarHojasRuta(repository.HojaRutaFiltro{
		VehiculoID: c.Query("vehiculo_id"),
		Desde:      queryFecha(c, "desde"),
		Hasta:      queryFecha(c, "hasta"),
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.HojaRutaResponse, 0, len(hojas))
	for _, hoja := range hojas {
		out = append(out, toHojaRutaResponse(hoja))
	}
	return c.JSON(fiber.Map{"hojas_ruta": out, "page": dto.PageResponse{Limit: page.Limit, Offset: page.Offset}})
}

// ResumenMensual agregados de uso por vehículo. Query: mes (2006-01).
// GET /api/flota/resumen
func (h *FlotaHandler) ResumenMensual(c *fiber.Ctx) error {
	resumen, err := h.uc.ResumenMensual(c.Query("mes"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ResumenFlotaResponse, 0, len(resumen))
	for _, r := range resumen {
		out = append(out, dto.ResumenFlotaResponse{
			VehiculoID: r.VehiculoID,
			Patente:    r.Patente,
			Viajes:     r.Viajes,
			Km:         r.Km,
			Litros:     r.Litros,
		})
	}
	return c.JSON(out)
}
