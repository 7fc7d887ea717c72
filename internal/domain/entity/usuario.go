package entity

import "time"

// Usuario del sistema con su rol asignado.
type Usuario struct {
	ID           string
	Email        string
	Nombre       string
	PasswordHash string
	Rol          string
	Activo       bool
	CreadoEn     time.Time
}
