package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

var _ repository.HojaRutaRepository = (*HojaRutaRepo)(nil)

// HojaRutaRepo implementación de HojaRutaRepository sobre PostgreSQL.
type HojaRutaRepo struct {
	q Querier
}

// NewHojaRutaRepository construye el adaptador de hojas de ruta. Pasar pool o tx (Querier).
func NewHojaRutaRepository(q Querier) *HojaRutaRepo {
	return &HojaRutaRepo{q: q}
}

const hojaRutaSelect = `
	SELECT id, fecha, vehiculo_id, chofer, destino, km_salida, km_regreso, km_recorridos,
	       combustible_litros, observaciones, COALESCE(creado_por_id::text, ''), creado_en
	FROM hojas_ruta`

func scanHojaRuta(row pgx.Row) (*entity.HojaRuta, error) {
	var h entity.HojaRuta
	err := row.Scan(
		&h.ID, &h.Fecha, &h.VehiculoID, &h.Chofer, &h.Destino,
		&h.KmSalida, &h.KmRegreso, &h.KmRecorridos,
		&h.CombustibleLitros, &h.Observaciones, &h.CreadoPorID, &h.CreadoEn,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Create persiste un parte diario.
func (r *HojaRutaRepo) Create(h *entity.HojaRuta) error {
	query := `
		INSERT INTO hojas_ruta (id, fecha, vehiculo_id, chofer, destino, km_salida, km_regreso, km_recorridos, combustible_litros, observaciones, creado_por_id, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, '')::uuid, $12)`
	_, err := r.q.Exec(context.Background(), query,
		h.ID, h.Fecha, h.VehiculoID, h.Chofer, h.Destino,
		h.KmSalida, h.KmRegreso, h.KmRecorridos,
		h.CombustibleLitros, h.Observaciones, h.CreadoPorID, h.CreadoEn,
	)
	if err != nil {
		return fmt.Errorf("insert hoja de ruta: %w", err)
	}
	return nil
}

// GetByID obtiene un parte por ID.
func (r *HojaRutaRepo) GetByID(id string) (*entity.HojaRuta, error) {
	h, err := scanHojaRuta(r.q.QueryRow(context.Background(), hojaRutaSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get hoja de ruta: %w", err)
	}
	return h, nil
}

// Update actualiza un parte.
func (r *HojaRutaRepo) Update(h *entity.HojaRuta) error {
	query := `
		UPDATE hojas_ruta SET fecha = $2, vehiculo_id = $3, chofer = $4, destino = $5,
		       km_salida = $6, km_regreso = $7, km_recorridos = $8,
		       combustible_litros = $9, observaciones = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		h.ID, h.Fecha, h.VehiculoID, h.Chofer, h.Destino,
		h.KmSalida, h.KmRegreso, h.KmRecorridos,
		h.CombustibleLitros, h.Observaciones,
	)
	if err != nil {
		return fmt.Errorf("update hoja de ruta: %w", err)
	}
	return nil
}

// List lista partes según filtro, más recientes primero.
func (r *HojaRutaRepo) List(filtro repository.HojaRutaFiltro) ([]*entity.HojaRuta, error) {
	query := hojaRutaSelect + ` WHERE 1=1`
	args := []any{}
	n := 0
	if filtro.VehiculoID != "" {
		n++
		query += fmt.Sprintf(" AND vehiculo_id = $%d", n)
		args = append(args, filtro.VehiculoID)
	}
	if filtro.Desde != nil {
		n++
		query += fmt.Sprintf(" AND fecha >= $%d", n)
		args = append(args, *filtro.Desde)
	}
	if filtro.Hasta != nil {
		n++
		query += fmt.Sprintf(" AND fecha < $%d", n)
		args = append(args, *filtro.Hasta)
	}
	query += fmt.Sprintf(" ORDER BY fecha DESC, creado_en DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, filtro.Limit, filtro.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list hojas de ruta: %w", err)
	}
	defer rows.Close()
	var list []*entity.HojaRuta
	for rows.Next() {
		var h entity.HojaRuta
		if err := rows.Scan(&h.ID, &h.Fecha, &h.VehiculoID, &h.Chofer, &h.Destino,
			&h.KmSalida, &h.KmRegreso, &h.KmRecorridos,
			&h.CombustibleLitros, &h.Observaciones, &h.CreadoPorID, &h.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan hoja de ruta: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

// Resumen agrega viajes y km por vehículo en el rango [desde, hasta), y suma
// los litros cargados en los partes más los imputados en gastos de combustible
// aprobados del mismo rango.
func (r *HojaRutaRepo) Resumen(desde, hasta time.Time) ([]*repository.ResumenFlota, error) {
	query := `
		SELECT v.id, v.patente,
		       COALESCE(h.viajes, 0),
		       COALESCE(h.km, 0),
		       COALESCE(h.litros, 0) + COALESCE(m.litros, 0)
		FROM vehiculos v
		LEFT JOIN (
			SELECT vehiculo_id, COUNT(*) AS viajes, SUM(km_recorridos) AS km, SUM(combustible_litros) AS litros
			FROM hojas_ruta
			WHERE fecha >= $1 AND fecha < $2
			GROUP BY vehiculo_id
		) h ON h.vehiculo_id = v.id
		LEFT JOIN (
			SELECT vehiculo_id, SUM(litros) AS litros
			FROM movimientos
			WHERE estado = 'APROBADO' AND vehiculo_id IS NOT NULL
			  AND fecha_operacion >= $1 AND fecha_operacion < $2
			GROUP BY vehiculo_id
		) m ON m.vehiculo_id = v.id
		WHERE v.activo
		ORDER BY v.patente`
	rows, err := r.q.Query(context.Background(), query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("resumen flota: %w", err)
	}
	defer rows.Close()
	var list []*repository.ResumenFlota
	for rows.Next() {
		var res repository.ResumenFlota
		if err := rows.Scan(&res.VehiculoID, &res.Patente, &res.Viajes, &res.Km, &res.Litros); err != nil {
			return nil, fmt.Errorf("scan resumen flota: %w", err)
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}
