package repository

import (
	"time"

	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
)

// AtencionFiltro parámetros de listado de atenciones.
type AtencionFiltro struct {
	Tipo           string
	BeneficiarioID string
	Desde          *time.Time
	Hasta          *time.Time
	Limit          int
	Offset         int
}

// AtencionRepository registro de atenciones al vecino.
type AtencionRepository interface {
	Create(a *entity.Atencion) error
	GetByID(id string) (*entity.Atencion, error)
	Update(a *entity.Atencion) error
	List(filtro AtencionFiltro) ([]*entity.Atencion, error)
	CountDesde(desde time.Time) (int, error)
}
