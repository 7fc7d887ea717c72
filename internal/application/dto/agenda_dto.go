package dto

import "time"

// CrearTareaRequest body para POST /api/tareas.
type CrearTareaRequest struct {
	Titulo            string     `json:"titulo" validate:"required,max=200"`
	Descripcion       string     `json:"descripcion" validate:"omitempty,max=1000"`
	Tipo              string     `json:"tipo" validate:"omitempty,oneof=PAGO_VENCIMIENTO DOCUMENTACION REUNION_EVENTO GESTION_ADMIN OTRO"`
	Ambito            string     `json:"ambito" validate:"omitempty,oneof=FINANZAS SOCIAL GENERAL"`
	Prioridad         string     `json:"prioridad" validate:"omitempty,oneof=BAJA MEDIA ALTA CRITICA"`
	FechaVencimiento  time.Time  `json:"fecha_vencimiento"`
	FechaRecordatorio *time.Time `json:"fecha_recordatorio,omitempty"`
	ResponsableID     string     `json:"responsable_id" validate:"omitempty,uuid4"`
	OrdenID           string     `json:"orden_id" validate:"omitempty,uuid4"`
	MovimientoID      string     `json:"movimiento_id" validate:"omitempty,uuid4"`
	BeneficiarioID    string     `json:"beneficiario_id" validate:"omitempty,uuid4"`
	ProveedorID       string     `json:"proveedor_id" validate:"omitempty,uuid4"`
}

// ActualizarTareaRequest body para PUT /api/tareas/:id.
type ActualizarTareaRequest struct {
	Titulo            string     `json:"titulo" validate:"required,max=200"`
	Descripcion       string     `json:"descripcion" validate:"omitempty,max=1000"`
	Tipo              string     `json:"tipo" validate:"omitempty,oneof=PAGO_VENCIMIENTO DOCUMENTACION REUNION_EVENTO GESTION_ADMIN OTRO"`
	Ambito            string     `json:"ambito" validate:"omitempty,oneof=FINANZAS SOCIAL GENERAL"`
	Prioridad         string     `json:"prioridad" validate:"omitempty,oneof=BAJA MEDIA ALTA CRITICA"`
	Estado            string     `json:"estado" validate:"omitempty,oneof=PENDIENTE EN_PROCESO COMPLETADA CANCELADA"`
	FechaVencimiento  time.Time  `json:"fecha_vencimiento"`
	FechaRecordatorio *time.Time `json:"fecha_recordatorio,omitempty"`
	ResponsableID     string     `json:"responsable_id" validate:"omitempty,uuid4"`
}

// TareaResponse representación de una tarea.
type TareaResponse struct {
	ID                string     `json:"id"`
	Titulo            string     `json:"titulo"`
	Descripcion       string     `json:"descripcion,omitempty"`
	Tipo              string     `json:"tipo,omitempty"`
	Ambito            string     `json:"ambito,omitempty"`
	Prioridad         string     `json:"prioridad"`
	Estado            string     `json:"estado"`
	FechaVencimiento  time.Time  `json:"fecha_vencimiento"`
	FechaRecordatorio *time.Time `json:"fecha_recordatorio,omitempty"`
	FechaCompletada   *time.Time `json:"fecha_completada,omitempty"`
	ResponsableID     string     `json:"responsable_id,omitempty"`
	OrdenID           string     `json:"orden_id,omitempty"`
	MovimientoID      string     `json:"movimiento_id,omitempty"`
	BeneficiarioID    string     `json:"beneficiario_id,omitempty"`
	ProveedorID       string     `json:"proveedor_id,omitempty"`
	CreadoEn          time.Time  `json:"creado_en"`
}
