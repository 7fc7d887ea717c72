package finanzas

import (
	"github.com/google/uuid"

	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// CategoriaUseCase catálogos de categorías financieras y áreas municipales.
type CategoriaUseCase struct {
	categoriaRepo repository.CategoriaRepository
	areaRepo      repository.AreaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(categoriaRepo repository.CategoriaRepository, areaRepo repository.AreaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{categoriaRepo: categoriaRepo, areaRepo: areaRepo}
}

// CrearCategoria da de alta una categoría. El nombre es único.
func (uc *CategoriaUseCase) CrearCategoria(cat *entity.Categoria) (*entity.Categoria, error) {
	if cat.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	switch cat.Tipo {
	case entity.CategoriaINGRESO, entity.CategoriaGASTO, entity.CategoriaAMBOS:
	default:
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.categoriaRepo.GetByNombre(cat.Nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	cat.ID = uuid.New().String()
	if err := uc.categoriaRepo.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// ListarCategorias lista categorías, opcionalmente por tipo.
func (uc *CategoriaUseCase) ListarCategorias(tipo string) ([]*entity.Categoria, error) {
	return uc.categoriaRepo.List(tipo)
}

// CrearArea da de alta un área municipal.
func (uc *CategoriaUseCase) CrearArea(nombre string) (*entity.Area, error) {
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	area := &entity.Area{ID: uuid.New().String(), Nombre: nombre}
	if err := uc.areaRepo.Create(area); err != nil {
		return nil, err
	}
	return area, nil
}

// ListarAreas lista las áreas municipales.
func (uc *CategoriaUseCase) ListarAreas() ([]*entity.Area, error) {
	return uc.areaRepo.List()
}
