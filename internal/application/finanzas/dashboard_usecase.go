package finanzas

import (
	"time"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// DashboardUseCase arma el tablero mensual: agregados financieros del mes,
// pendientes operativos y alertas de stock.
type DashboardUseCase struct {
	movRepo      repository.MovimientoRepository
	ordenRepo    repository.OrdenRepository
	prestamoRepo repository.PrestamoRepository
	tareaRepo    repository.TareaRepository
	insumoRepo   repository.InsumoRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	movRepo repository.MovimientoRepository,
	ordenRepo repository.OrdenRepository,
	prestamoRepo repository.PrestamoRepository,
	tareaRepo repository.TareaRepository,
	insumoRepo repository.InsumoRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		movRepo:      movRepo,
		ordenRepo:    ordenRepo,
		prestamoRepo: prestamoRepo,
		tareaRepo:    tareaRepo,
		insumoRepo:   insumoRepo,
	}
}

// Generar calcula el tablero del mes indicado (formato 2006-01; vacío = mes
// actual). Los agregados financieros cuentan solo movimientos aprobados.
func (uc *DashboardUseCase) Generar(mes string) (*dto.DashboardResponse, error) {
	ref := time.Now()
	if mes != "" {
		parsed, err := time.Parse("2006-01", mes)
		if err == nil {
			ref = parsed
		}
	}
	desde := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.Local)
	hasta := desde.AddDate(0, 1, 0)

	resumen, err := uc.movRepo.Resumen(desde, hasta)
	if err != nil {
		return nil, err
	}

	ordenes, err := uc.ordenRepo.List(repository.OrdenFiltro{Limit: 1000})
	if err != nil {
		return nil, err
	}
	prestamos, err := uc.prestamoRepo.List(repository.PrestamoFiltro{
		Estado: entity.PrestamoPENDIENTE,
		Limit:  1000,
	})
	if err != nil {
		return nil, err
	}
	tareasAbiertas, err := uc.tareaRepo.CountAbiertas()
	if err != nil {
		return nil, err
	}
	bajoMinimo, err := uc.insumoRepo.List(repository.InsumoFiltro{SoloBajoMinimo: true, Limit: 50})
	if err != nil {
		return nil, err
	}
	ultimos, err := uc.movRepo.Ultimos(10)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		Mes:               desde.Format("2006-01"),
		Ingresos:          resumen.Ingresos,
		Gastos:            resumen.Gastos,
		Resultado:         resumen.Ingresos.Sub(resumen.Gastos),
		Ayudas:            resumen.Ayudas,
		Personal:          resumen.Personal,
		Servicios:         resumen.Servicios,
		Combustible:       resumen.Combustible,
		OrdenesPendientes: len(ordenes),
		PrestamosAbiertos: len(prestamos),
		TareasAbiertas:    tareasAbiertas,
	}
	for _, i := range bajoMinimo {
		resp.InsumosBajoMinimo = append(resp.InsumosBajoMinimo, dto.InsumoResponse{
			ID:            i.ID,
			Nombre:        i.Nombre,
			Unidad:        i.Unidad,
			StockActual:   i.StockActual,
			StockMinimo:   i.StockMinimo,
			BajoMinimo:    true,
			EsHerramienta: i.EsHerramienta,
			ActualizadoEn: i.ActualizadoEn,
		})
	}
	for _, m := range ultimos {
		resp.UltimosMovimientos = append(resp.UltimosMovimientos, dto.MovimientoResponse{
			ID:          m.ID,
			Tipo:        m.Tipo,
			Estado:      m.Estado,
			Fecha:       m.FechaOperacion,
			Monto:       m.Monto,
			CategoriaID: m.CategoriaID,
			Descripcion: m.Descripcion,
			OrdenID:     m.OrdenID,
			CreadoEn:    m.CreadoEn,
		})
	}
	return resp, nil
}
