package repository

import "github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"

// PrestamoFiltro parámetros de listado de préstamos.
type PrestamoFiltro struct {
	Estado         string // vacío = todos
	InsumoID       string
	BeneficiarioID string
	Limit          int
	Offset         int
}

// PrestamoRepository puerto de persistencia del pañol.
type PrestamoRepository interface {
	Create(p *entity.Prestamo) error
	GetByID(id string) (*entity.Prestamo, error)
	// GetForUpdate bloquea la fila del préstamo para evitar devoluciones dobles.
	GetForUpdate(id string) (*entity.Prestamo, error)
	Update(p *entity.Prestamo) error
	List(filtro PrestamoFiltro) ([]*entity.Prestamo, error)
}
