package entity

import "time"

// Tipos de atención al vecino.
const (
	AtencionGeneral = "GENERAL"
	AtencionSocial  = "SOCIAL"
	AtencionObras   = "OBRAS"
)

// Atencion registra una consulta o reclamo de un vecino en ventanilla.
type Atencion struct {
	ID             string
	FechaAtencion  time.Time
	Tipo           string
	BeneficiarioID string
	NombreTemporal string // si la persona aún no está en el registro
	Motivo         string
	Detalle        string
	DerivadoAreaID string
	Resuelto       bool
	CreadoPorID    string
	CreadoEn       time.Time
}
