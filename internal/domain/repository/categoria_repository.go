package repository

import "github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"

// CategoriaRepository catálogo de categorías financieras.
type CategoriaRepository interface {
	Create(cat *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	GetByNombre(nombre string) (*entity.Categoria, error)
	List(tipo string) ([]*entity.Categoria, error)
}
