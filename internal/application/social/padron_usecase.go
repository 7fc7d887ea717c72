package social

import (
	"github.com/google/uuid"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
	"github.com/Francoamora/munifinanzas-sub000/pkg/texto"
)

// PadronUseCase administra los padrones de beneficiarios y proveedores, con
// autocompletado insensible a tildes para los formularios de carga.
type PadronUseCase struct {
	beneficiarioRepo repository.BeneficiarioRepository
	proveedorRepo    repository.ProveedorRepository
}

// NewPadronUseCase construye el caso de uso.
func NewPadronUseCase(
	beneficiarioRepo repository.BeneficiarioRepository,
	proveedorRepo repository.ProveedorRepository,
) *PadronUseCase {
	return &PadronUseCase{beneficiarioRepo: beneficiarioRepo, proveedorRepo: proveedorRepo}
}

// CrearBeneficiario da de alta una persona. El DNI es único.
func (uc *PadronUseCase) CrearBeneficiario(req dto.CrearBeneficiarioRequest) (*entity.Beneficiario, error) {
	existente, err := uc.beneficiarioRepo.GetByDNI(req.DNI)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	vinculo := req.TipoVinculo
	if vinculo == "" {
		vinculo = entity.VinculoNinguno
	}
	b := &entity.Beneficiario{
		ID:               uuid.New().String(),
		Nombre:           req.Nombre,
		Apellido:         req.Apellido,
		DNI:              req.DNI,
		Direccion:        req.Direccion,
		Barrio:           req.Barrio,
		Telefono:         req.Telefono,
		Notas:            req.Notas,
		PagaServicios:    req.PagaServicios,
		DetalleServicios: req.DetalleServicios,
		TipoVinculo:      vinculo,
		SectorLaboralID:  req.SectorLaboralID,
		PercibeBeneficio: req.PercibeBeneficio,
		BeneficioDetalle: req.BeneficioDetalle,
		BeneficioMonto:   req.BeneficioMonto,
		Activo:           true,
	}
	if err := uc.beneficiarioRepo.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ActualizarBeneficiario modifica los datos de una persona existente.
func (uc *PadronUseCase) ActualizarBeneficiario(id string, req dto.CrearBeneficiarioRequest) (*entity.Beneficiario, error) {
	b, err := uc.beneficiarioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if req.DNI != b.DNI {
		existente, err := uc.beneficiarioRepo.GetByDNI(req.DNI)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, domain.ErrDuplicate
		}
	}
	b.Nombre = req.Nombre
	b.Apellido = req.Apellido
	b.DNI = req.DNI
	b.Direccion = req.Direccion
	b.Barrio = req.Barrio
	b.Telefono = req.Telefono
	b.Notas = req.Notas
	b.PagaServicios = req.PagaServicios
	b.DetalleServicios = req.DetalleServicios
	if req.TipoVinculo != "" {
		b.TipoVinculo = req.TipoVinculo
	}
	b.SectorLaboralID = req.SectorLaboralID
	b.PercibeBeneficio = req.PercibeBeneficio
	b.BeneficioDetalle = req.BeneficioDetalle
	b.BeneficioMonto = req.BeneficioMonto
	if err := uc.beneficiarioRepo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ObtenerBeneficiario devuelve una persona por ID.
func (uc *PadronUseCase) ObtenerBeneficiario(id string) (*entity.Beneficiario, error) {
	b, err := uc.beneficiarioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

// ListarBeneficiarios lista personas según filtro.
func (uc *PadronUseCase) ListarBeneficiarios(filtro repository.BeneficiarioFiltro) ([]*entity.Beneficiario, error) {
	if filtro.Limit <= 0 {
		filtro.Limit = 20
	}
	filtro.Q = texto.Normalizar(filtro.Q)
	return uc.beneficiarioRepo.List(filtro)
}

// SugerirBeneficiarios autocompletado por apellido, nombre o DNI. La consulta
// se normaliza: "Pérez" y "perez" devuelven lo mismo.
func (uc *PadronUseCase) SugerirBeneficiarios(q string, n int) ([]dto.SugerenciaResponse, error) {
	if n <= 0 || n > 20 {
		n = 10
	}
	personas, err := uc.beneficiarioRepo.Suggest(texto.Normalizar(q), n)
	if err != nil {
		return nil, err
	}
	sugerencias := make([]dto.SugerenciaResponse, 0, len(personas))
	for _, p := range personas {
		sugerencias = append(sugerencias, dto.SugerenciaResponse{
			ID:       p.ID,
			Etiqueta: p.NombreCompleto() + " (" + p.DNI + ")",
		})
	}
	return sugerencias, nil
}

// CrearProveedor da de alta un proveedor. El CUIT, si viene, es único.
func (uc *PadronUseCase) CrearProveedor(req dto.CrearProveedorRequest) (*entity.Proveedor, error) {
	if req.CUIT != "" {
		existente, err := uc.proveedorRepo.GetByCUIT(req.CUIT)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, domain.ErrDuplicate
		}
	}
	p := &entity.Proveedor{
		ID:        uuid.New().String(),
		Nombre:    req.Nombre,
		CUIT:      req.CUIT,
		Direccion: req.Direccion,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Activo:    true,
	}
	if err := uc.proveedorRepo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ObtenerProveedor devuelve un proveedor por id.
func (uc *PadronUseCase) ObtenerProveedor(id string) (*entity.Proveedor, error) {
	p, err := uc.proveedorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// ActualizarProveedor modifica los datos de contacto. Un cambio de CUIT
// se valida contra el padrón igual que en el alta.
func (uc *PadronUseCase) ActualizarProveedor(id string, req dto.CrearProveedorRequest) (*entity.Proveedor, error) {
	p, err := uc.proveedorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if req.CUIT != "" && req.CUIT != p.CUIT {
		existente, err := uc.proveedorRepo.GetByCUIT(req.CUIT)
		if err != nil {
			return nil, err
		}
		if existente != nil && existente.ID != p.ID {
			return nil, domain.ErrDuplicate
		}
	}
	p.Nombre = req.Nombre
	p.CUIT = req.CUIT
	p.Direccion = req.Direccion
	p.Telefono = req.Telefono
	p.Email = req.Email
	if err := uc.proveedorRepo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListarProveedores lista proveedores.
func (uc *PadronUseCase) ListarProveedores(q string, limit, offset int) ([]*entity.Proveedor, error) {
	if limit <= 0 {
		limit = 20
	}
	return uc.proveedorRepo.List(texto.Normalizar(q), limit, offset)
}

// SugerirProveedores autocompletado por razón social o CUIT.
func (uc *PadronUseCase) SugerirProveedores(q string, n int) ([]dto.SugerenciaResponse, error) {
	if n <= 0 || n > 20 {
		n = 10
	}
	proveedores, err := uc.proveedorRepo.Suggest(texto.Normalizar(q), n)
	if err != nil {
		return nil, err
	}
	sugerencias := make([]dto.SugerenciaResponse, 0, len(proveedores))
	for _, p := range proveedores {
		etiqueta := p.Nombre
		if p.CUIT != "" {
			etiqueta += " (" + p.CUIT + ")"
		}
		sugerencias = append(sugerencias, dto.SugerenciaResponse{ID: p.ID, Etiqueta: etiqueta})
	}
	return sugerencias, nil
}
