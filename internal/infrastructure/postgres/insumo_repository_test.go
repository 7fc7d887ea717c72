package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/infrastructure/postgres"
)

// capturaQuerier registra el último SQL ejecutado sin tocar la base.
type capturaQuerier struct {
	sql  string
	args []any
}

func (q *capturaQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql = sql
	q.args = args
	return pgconn.CommandTag{}, nil
}

func (q *capturaQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (q *capturaQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

// La categoría viaja como string y la columna es uuid: sin el cast explícito
// el servidor tipa el parámetro como text y rechaza el INSERT al preparar,
// incluso con la categoría vacía.
func TestInsumoRepo_CreateCasteaCategoriaOpcionalAUUID(t *testing.T) {
	q := &capturaQuerier{}
	repo := postgres.NewInsumoRepository(q)

	err := repo.Create(&entity.Insumo{
		ID:            "ins-1",
		Nombre:        "Cemento",
		CategoriaID:   "",
		Unidad:        "bolsa",
		StockActual:   decimal.Zero,
		StockMinimo:   decimal.NewFromInt(5),
		ActualizadoEn: time.Now(),
	})
	require.NoError(t, err)

	assert.Contains(t, q.sql, "NULLIF($3, '')::uuid",
		"la categoría opcional debe castearse a uuid en el INSERT")
	require.Len(t, q.args, 10)
	assert.Equal(t, "", q.args[2])
}

func TestInsumoRepo_UpdateCasteaCategoriaOpcionalAUUID(t *testing.T) {
	q := &capturaQuerier{}
	repo := postgres.NewInsumoRepository(q)

	err := repo.Update(&entity.Insumo{
		ID:            "ins-1",
		Nombre:        "Cemento",
		CategoriaID:   "11111111-1111-1111-1111-111111111111",
		Unidad:        "bolsa",
		StockMinimo:   decimal.NewFromInt(5),
		ActualizadoEn: time.Now(),
	})
	require.NoError(t, err)

	assert.Contains(t, q.sql, "NULLIF($3, '')::uuid")
}
