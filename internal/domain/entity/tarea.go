package entity

import "time"

// Tipos de tarea de agenda.
const (
	TareaPagoVencimiento = "PAGO_VENCIMIENTO"
	TareaDocumentacion   = "DOCUMENTACION"
	TareaReunionEvento   = "REUNION_EVENTO"
	TareaGestionAdmin    = "GESTION_ADMIN"
	TareaOtro            = "OTRO"
)

// Prioridades.
const (
	PrioridadBaja    = "BAJA"
	PrioridadMedia   = "MEDIA"
	PrioridadAlta    = "ALTA"
	PrioridadCritica = "CRITICA"
)

// Estados de una tarea.
const (
	TareaPENDIENTE  = "PENDIENTE"
	TareaEnProceso  = "EN_PROCESO"
	TareaCOMPLETADA = "COMPLETADA"
	TareaCANCELADA  = "CANCELADA"
)

// Ámbitos.
const (
	AmbitoFinanzas = "FINANZAS"
	AmbitoSocial   = "SOCIAL"
	AmbitoGeneral  = "GENERAL"
)

// Tarea es un pendiente de la agenda municipal, opcionalmente vinculado a
// una orden, un movimiento, una persona o un proveedor.
type Tarea struct {
	ID                string
	Titulo            string
	Descripcion       string
	Tipo              string
	Prioridad         string
	Estado            string
	Ambito            string
	FechaVencimiento  time.Time
	FechaRecordatorio *time.Time
	FechaCompletada   *time.Time
	ResponsableID     string
	OrdenID           string
	MovimientoID      string
	BeneficiarioID    string
	ProveedorID       string
	CreadoPorID       string
	CreadoEn          time.Time
}

// EstaAbierta: pendiente o en proceso.
func (t *Tarea) EstaAbierta() bool {
	return t.Estado == TareaPENDIENTE || t.Estado == TareaEnProceso
}
