package repository

import "github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"

// UsuarioRepository cuentas de acceso al sistema.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	Update(u *entity.Usuario) error
	List() ([]*entity.Usuario, error)
}
