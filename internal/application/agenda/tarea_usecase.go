package agenda

import (
	"time"

	"github.com/google/uuid"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// TareaUseCase agenda de pendientes: vencimientos de pagos, documentación y
// gestiones, con recordatorios y vínculos a órdenes o personas.
type TareaUseCase struct {
	tareaRepo repository.TareaRepository
}

// NewTareaUseCase construye el caso de uso.
func NewTareaUseCase(tareaRepo repository.TareaRepository) *TareaUseCase {
	return &TareaUseCase{tareaRepo: tareaRepo}
}

// Crear da de alta una tarea PENDIENTE.
func (uc *TareaUseCase) Crear(req dto.CrearTareaRequest, usuarioID string) (*entity.Tarea, error) {
	if req.Titulo == "" {
		return nil, domain.ErrInvalidInput
	}
	prioridad := req.Prioridad
	if prioridad == "" {
		prioridad = entity.PrioridadMedia
	}
	tipo := req.Tipo
	if tipo == "" {
		tipo = entity.TareaOtro
	}
	vencimiento := req.FechaVencimiento
	if vencimiento.IsZero() {
		vencimiento = time.Now().AddDate(0, 0, 7)
	}
	tarea := &entity.Tarea{
		ID:                uuid.New().String(),
		Titulo:            req.Titulo,
		Descripcion:       req.Descripcion,
		Tipo:              tipo,
		Prioridad:         prioridad,
		Estado:            entity.TareaPENDIENTE,
		Ambito:            req.Ambito,
		FechaVencimiento:  vencimiento,
		FechaRecordatorio: req.FechaRecordatorio,
		ResponsableID:     req.ResponsableID,
		OrdenID:           req.OrdenID,
		MovimientoID:      req.MovimientoID,
		BeneficiarioID:    req.BeneficiarioID,
		ProveedorID:       req.ProveedorID,
		CreadoPorID:       usuarioID,
		CreadoEn:          time.Now(),
	}
	if err := uc.tareaRepo.Create(tarea); err != nil {
		return nil, err
	}
	return tarea, nil
}

// Actualizar modifica una tarea. Al pasar a COMPLETADA fija FechaCompletada;
// al reabrirla la limpia.
func (uc *TareaUseCase) Actualizar(id string, req dto.ActualizarTareaRequest) (*entity.Tarea, error) {
	tarea, err := uc.tareaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tarea == nil {
		return nil, domain.ErrNotFound
	}

	tarea.Titulo = req.Titulo
	tarea.Descripcion = req.Descripcion
	if req.Tipo != "" {
		tarea.Tipo = req.Tipo
	}
	if req.Ambito != "" {
		tarea.Ambito = req.Ambito
	}
	if req.Prioridad != "" {
		tarea.Prioridad = req.Prioridad
	}
	if !req.FechaVencimiento.IsZero() {
		tarea.FechaVencimiento = req.FechaVencimiento
	}
	tarea.FechaRecordatorio = req.FechaRecordatorio
	if req.ResponsableID != "" {
		tarea.ResponsableID = req.ResponsableID
	}
	if req.Estado != "" && req.Estado != tarea.Estado {
		tarea.Estado = req.Estado
		if req.Estado == entity.TareaCOMPLETADA {
			now := time.Now()
			tarea.FechaCompletada = &now
		} else {
			tarea.FechaCompletada = nil
		}
	}

	if err := uc.tareaRepo.Update(tarea); err != nil {
		return nil, err
	}
	return tarea, nil
}

// Obtener devuelve una tarea por ID.
func (uc *TareaUseCase) Obtener(id string) (*entity.Tarea, error) {
	tarea, err := uc.tareaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tarea == nil {
		return nil, domain.ErrNotFound
	}
	return tarea, nil
}

// Listar lista tareas según filtro.
func (uc *TareaUseCase) Listar(filtro repository.TareaFiltro) ([]*entity.Tarea, error) {
	if filtro.Limit <= 0 {
		filtro.Limit = 20
	}
	return uc.tareaRepo.List(filtro)
}

// Vencidas devuelve tareas abiertas con recordatorio ya pasado.
func (uc *TareaUseCase) Vencidas(n int) ([]*entity.Tarea, error) {
	if n <= 0 {
		n = 20
	}
	return uc.tareaRepo.Vencidas(time.Now(), n)
}
