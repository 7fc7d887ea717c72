package repository

import (
	"time"

	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
)

// TareaFiltro parámetros de listado de tareas.
type TareaFiltro struct {
	Estado    string // vacío = abiertas; "TODAS" = sin filtro
	Ambito    string
	Prioridad string
	Limit     int
	Offset    int
}

// TareaRepository agenda de gestión.
type TareaRepository interface {
	Create(t *entity.Tarea) error
	GetByID(id string) (*entity.Tarea, error)
	Update(t *entity.Tarea) error
	List(filtro TareaFiltro) ([]*entity.Tarea, error)
	CountAbiertas() (int, error)
	// Vencidas devuelve tareas abiertas con recordatorio anterior a ref.
	Vencidas(ref time.Time, n int) ([]*entity.Tarea, error)
}
