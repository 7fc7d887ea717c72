package agenda_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/agenda"
	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

type tareaRepoFake struct {
	tareas map[string]*entity.Tarea
}

func newTareaRepoFake() *tareaRepoFake {
	return &tareaRepoFake{tareas: map[string]*entity.Tarea{}}
}

func (f *tareaRepoFake) Create(t *entity.Tarea) error { f.tareas[t.ID] = t; return nil }
func (f *tareaRepoFake) GetByID(id string) (*entity.Tarea, error) {
	return f.tareas[id], nil
}
func (f *tareaRepoFake) Update(t *entity.Tarea) error { f.tareas[t.ID] = t; return nil }
func (f *tareaRepoFake) List(repository.TareaFiltro) ([]*entity.Tarea, error) {
	return nil, nil
}
func (f *tareaRepoFake) CountAbiertas() (int, error) { return 0, nil }
func (f *tareaRepoFake) Vencidas(ref time.Time, n int) ([]*entity.Tarea, error) {
	var out []*entity.Tarea
	for _, t := range f.tareas {
		if t.EstaAbierta() && t.FechaRecordatorio != nil && t.FechaRecordatorio.Before(ref) {
			out = append(out, t)
		}
	}
	return out, nil
}

func TestTarea_CrearAplicaDefaults(t *testing.T) {
	uc := agenda.NewTareaUseCase(newTareaRepoFake())

	tarea, err := uc.Crear(dto.CrearTareaRequest{Titulo: "Renovar seguro de la flota"}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, entity.TareaPENDIENTE, tarea.Estado)
	assert.Equal(t, entity.PrioridadMedia, tarea.Prioridad, "prioridad por defecto")
	assert.Equal(t, entity.TareaOtro, tarea.Tipo, "tipo por defecto")
	assert.False(t, tarea.FechaVencimiento.IsZero(), "sin fecha se asigna vencimiento a una semana")
	assert.Equal(t, "user-1", tarea.CreadoPorID)
}

func TestTarea_TituloObligatorio(t *testing.T) {
	uc := agenda.NewTareaUseCase(newTareaRepoFake())

	_, err := uc.Crear(dto.CrearTareaRequest{}, "user-1")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Completar una tarea fija la fecha de completado; reabrirla la limpia.
func TestTarea_CompletarYReabrir(t *testing.T) {
	repo := newTareaRepoFake()
	uc := agenda.NewTareaUseCase(repo)

	tarea, err := uc.Crear(dto.CrearTareaRequest{Titulo: "Presentar rendición"}, "user-1")
	require.NoError(t, err)

	completada, err := uc.Actualizar(tarea.ID, dto.ActualizarTareaRequest{
		Titulo: tarea.Titulo,
		Estado: entity.TareaCOMPLETADA,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TareaCOMPLETADA, completada.Estado)
	require.NotNil(t, completada.FechaCompletada)
	assert.False(t, completada.EstaAbierta())

	reabierta, err := uc.Actualizar(tarea.ID, dto.ActualizarTareaRequest{
		Titulo: tarea.Titulo,
		Estado: entity.TareaPENDIENTE,
	})
	require.NoError(t, err)
	assert.Nil(t, reabierta.FechaCompletada, "reabrir limpia la fecha de completado")
	assert.True(t, reabierta.EstaAbierta())
}

func TestTarea_VencidasSoloAbiertasConRecordatorioPasado(t *testing.T) {
	repo := newTareaRepoFake()
	uc := agenda.NewTareaUseCase(repo)

	ayer := time.Now().Add(-24 * time.Hour)
	manana := time.Now().Add(24 * time.Hour)

	vencida, err := uc.Crear(dto.CrearTareaRequest{
		Titulo:            "Pagar luz del corralón",
		FechaRecordatorio: &ayer,
	}, "user-1")
	require.NoError(t, err)

	_, err = uc.Crear(dto.CrearTareaRequest{
		Titulo:            "Todavía no vence",
		FechaRecordatorio: &manana,
	}, "user-1")
	require.NoError(t, err)

	_, err = uc.Crear(dto.CrearTareaRequest{Titulo: "Sin recordatorio"}, "user-1")
	require.NoError(t, err)

	vencidas, err := uc.Vencidas(10)
	require.NoError(t, err)
	require.Len(t, vencidas, 1)
	assert.Equal(t, vencida.ID, vencidas[0].ID)
}

func TestTarea_ObtenerInexistente(t *testing.T) {
	uc := agenda.NewTareaUseCase(newTareaRepoFake())

	_, err := uc.Obtener("no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
