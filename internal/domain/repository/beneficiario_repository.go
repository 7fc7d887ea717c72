package repository

import "github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"

// BeneficiarioFiltro parámetros de listado de beneficiarios.
type BeneficiarioFiltro struct {
	Q      string // apellido, nombre o DNI
	Limit  int
	Offset int
}

// BeneficiarioRepository padrón de personas.
type BeneficiarioRepository interface {
	Create(b *entity.Beneficiario) error
	GetByID(id string) (*entity.Beneficiario, error)
	GetByDNI(dni string) (*entity.Beneficiario, error)
	Update(b *entity.Beneficiario) error
	List(filtro BeneficiarioFiltro) ([]*entity.Beneficiario, error)
	// Suggest devuelve hasta n coincidencias por prefijo de apellido, nombre
	// o DNI para los autocompletados de los formularios.
	Suggest(q string, n int) ([]*entity.Beneficiario, error)
}
