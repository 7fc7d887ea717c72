package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/agenda"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// AgendaHandler maneja la agenda de tareas de gestión.
type AgendaHandler struct {
	uc *agenda.TareaUseCase
}

// NewAgendaHandler construye el handler.
func NewAgendaHandler(uc *agenda.TareaUseCase) *AgendaHandler {
	return &AgendaHandler{uc: uc}
}

func toTareaResponse(t *entity.Tarea) dto.TareaResponse {
	return dto.TareaResponse{
		ID:                t.ID,
		Titulo:            t.Titulo,
		Descripcion:       t.Descripcion,
		Tipo:              t.Tipo,
		Ambito:            t.Ambito,
		Prioridad:         t.Prioridad,
		Estado:            t.Estado,
		FechaVencimiento:  t.FechaVencimiento,
		FechaRecordatorio: t.FechaRecordatorio,
		FechaCompletada:   t.FechaCompletada,
		ResponsableID:     t.ResponsableID,
		OrdenID:           t.OrdenID,
		MovimientoID:      t.MovimientoID,
		BeneficiarioID:    t.BeneficiarioID,
		ProveedorID:       t.ProveedorID,
		CreadoEn:          t.CreadoEn,
	}
}

// Crear da de alta una tarea PENDIENTE.
// POST /api/tareas
func (h *AgendaHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearTareaRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	tarea, err := h.uc.Crear(in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTareaResponse(tarea))
}

// Actualizar modifica una tarea, incluido su estado.
// PUT /api/tareas/:id
func (h *AgendaHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarTareaRequest
	if ok, res := parseBody(c, &in); !ok {
		return res
	}
	tarea, err := h.uc.Actualizar(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toTareaResponse(tarea))
}

// Obtener devuelve una tarea por ID.
// GET /api/tareas/:id
func (h *AgendaHandler) Obtener(c *fiber.Ctx) error {
	tarea, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toTareaResponse(tarea))
}

// Listar lista tareas. Filtros: estado (vacío = abiertas, TODAS = todas),
// ambito, prioridad.
// GET /api/tareas
func (h *AgendaHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()

	tareas, err := h.uc.Listar(repository.TareaFiltro{
		Estado:    c.Query("estado"),
		Ambito:    c.Query("ambito"),
		Prioridad: c.Query("prioridad"),
		Limit:     page.Limit,
		Offset:    page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.TareaResponse, 0, len(tareas))
	for _, t := range tareas {
		out = append(out, toTareaResponse(t))
	}
	return c.JSON(fiber.Map{"tareas": out, "page": dto.PageResponse{Limit: page.Limit, Offset: page.Offset}})
}

// Vencidas devuelve tareas abiertas con recordatorio ya pasado.
// GET /api/tareas/vencidas
func (h *AgendaHandler) Vencidas(c *fiber.Ctx) error {
	tareas, err := h.uc.Vencidas(c.QueryInt("n"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.TareaResponse, 0, len(tareas))
	for _, t := range tareas {
		out = append(out, toTareaResponse(t))
	}
	return c.JSON(out)
}
