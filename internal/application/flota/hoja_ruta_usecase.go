package flota

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// FlotaUseCase vehículos municipales y sus partes diarios (hojas de ruta).
type FlotaUseCase struct {
	vehiculoRepo repository.VehiculoRepository
	hojaRepo     repository.HojaRutaRepository
}

// NewFlotaUseCase construye el caso de uso.
func NewFlotaUseCase(vehiculoRepo repository.VehiculoRepository, hojaRepo repository.HojaRutaRepository) *FlotaUseCase {
	return &FlotaUseCase{vehiculoRepo: vehiculoRepo, hojaRepo: hojaRepo}
}

// CrearVehiculo da de alta un vehículo. La patente es única.
func (uc *FlotaUseCase) CrearVehiculo(req dto.CrearVehiculoRequest) (*entity.Vehiculo, error) {
	patente := strings.ToUpper(strings.TrimSpace(req.Patente))
	if patente == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.vehiculoRepo.GetByPatente(patente)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	vehiculo := &entity.Vehiculo{
		ID:          uuid.New().String(),
		Patente:     patente,
		Descripcion: req.Descripcion,
		AreaID:      req.AreaID,
		Activo:      true,
	}
	if err := uc.vehiculoRepo.Create(vehiculo); err != nil {
		return nil, err
	}
	return vehiculo, nil
}

// ActualizarVehiculo modifica descripción, área y estado. La patente no
// se toca: identifica al vehículo en todos los partes históricos.
func (uc *FlotaUseCase) ActualizarVehiculo(id string, req dto.ActualizarVehiculoRequest) (*entity.Vehiculo, error) {
	vehiculo, err := uc.vehiculoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vehiculo == nil {
		return nil, domain.ErrNotFound
	}
	vehiculo.Descripcion = req.Descripcion
	vehiculo.AreaID = req.AreaID
	vehiculo.Activo = req.Activo
	if err := uc.vehiculoRepo.Update(vehiculo); err != nil {
		return nil, err
	}
	return vehiculo, nil
}

// ListarVehiculos lista la flota.
func (uc *FlotaUseCase) ListarVehiculos(soloActivos bool) ([]*entity.Vehiculo, error) {
	return uc.vehiculoRepo.List(soloActivos)
}

// CrearHojaRuta registra el parte diario de un viaje y deriva los km
// recorridos de los odómetros.
func (uc *FlotaUseCase) CrearHojaRuta(req dto.CrearHojaRutaRequest, usuarioID string) (*entity.HojaRuta, error) {
	vehiculo, err := uc.vehiculoRepo.GetByID(req.VehiculoID)
	if err != nil || vehiculo == nil {
		return nil, domain.ErrNotFound
	}
	if req.KmSalida.IsNegative() || req.KmRegreso.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	fecha := req.Fecha
	if fecha.IsZero() {
		fecha = time.Now()
	}
	hoja := &entity.HojaRuta{
		ID:                uuid.New().String(),
		Fecha:             fecha,
		VehiculoID:        vehiculo.ID,
		Chofer:            req.Chofer,
		Destino:           req.Destino,
		KmSalida:          req.KmSalida,
		KmRegreso:         req.KmRegreso,
		CombustibleLitros: req.Litros,
		Observaciones:     req.Notas,
		CreadoPorID:       usuarioID,
		CreadoEn:          time.Now(),
	}
	hoja.CalcularKm()
	if err := uc.hojaRepo.Create(hoja); err != nil {
		return nil, err
	}
	return hoja, nil
}

// ActualizarHojaRuta corrige un parte ya cargado (odómetro mal anotado,
// chofer equivocado) y recalcula los km.
func (uc *FlotaUseCase) ActualizarHojaRuta(id string, req dto.CrearHojaRutaRequest) (*entity.HojaRuta, error) {
	hoja, err := uc.hojaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if hoja == nil {
		return nil, domain.ErrNotFound
	}
	if req.KmSalida.IsNegative() || req.KmRegreso.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if !req.Fecha.IsZero() {
		hoja.Fecha = req.Fecha
	}
	hoja.Chofer = req.Chofer
	hoja.Destino = req.Destino
	hoja.KmSalida = req.KmSalida
	hoja.KmRegreso = req.KmRegreso
	hoja.CombustibleLitros = req.Litros
	hoja.Observaciones = req.Notas
	hoja.CalcularKm()
	if err := uc.hojaRepo.Update(hoja); err != nil {
		return nil, err
	}
	return hoja, nil
}

// ListarHojasRuta lista partes diarios según filtro.
func (uc *FlotaUseCase) ListarHojasRuta(filtro repository.HojaRutaFiltro) ([]*entity.HojaRuta, error) {
	if filtro.Limit <= 0 {
		filtro.Limit = 20
	}
	return uc.hojaRepo.List(filtro)
}

// ResumenMensual agregados de uso por vehículo para el mes indicado
// (formato 2006-01; vacío = mes actual).
func (uc *FlotaUseCase) ResumenMensual(mes string) ([]*repository.ResumenFlota, error) {
	ref := time.Now()
	if mes != "" {
		parsed, err := time.Parse("2006-01", mes)
		if err == nil {
			ref = parsed
		}
	}
	desde := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.Local)
	return uc.hojaRepo.Resumen(desde, desde.AddDate(0, 1, 0))
}
