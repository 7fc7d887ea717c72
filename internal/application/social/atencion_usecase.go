package social

import (
	"time"

	"github.com/google/uuid"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// AtencionUseCase registro de atenciones al vecino en ventanilla.
type AtencionUseCase struct {
	atencionRepo     repository.AtencionRepository
	beneficiarioRepo repository.BeneficiarioRepository
}

// NewAtencionUseCase construye el caso de uso.
func NewAtencionUseCase(
	atencionRepo repository.AtencionRepository,
	beneficiarioRepo repository.BeneficiarioRepository,
) *AtencionUseCase {
	return &AtencionUseCase{atencionRepo: atencionRepo, beneficiarioRepo: beneficiarioRepo}
}

// Crear registra una atención. Si la persona no está en el padrón se acepta
// un nombre temporal hasta que alguien complete el alta.
func (uc *AtencionUseCase) Crear(req dto.CrearAtencionRequest, usuarioID string) (*entity.Atencion, error) {
	if req.BeneficiarioID == "" && req.NombreTemporal == "" {
		return nil, domain.ErrInvalidInput
	}
	if req.BeneficiarioID != "" {
		b, err := uc.beneficiarioRepo.GetByID(req.BeneficiarioID)
		if err != nil || b == nil {
			return nil, domain.ErrNotFound
		}
	}
	fecha := req.FechaAtencion
	if fecha.IsZero() {
		fecha = time.Now()
	}
	atencion := &entity.Atencion{
		ID:             uuid.New().String(),
		FechaAtencion:  fecha,
		Tipo:           req.Tipo,
		BeneficiarioID: req.BeneficiarioID,
		NombreTemporal: req.NombreTemporal,
		Motivo:         req.Motivo,
		Detalle:        req.Detalle,
		DerivadoAreaID: req.DerivadoAreaID,
		CreadoPorID:    usuarioID,
		CreadoEn:       time.Now(),
	}
	if err := uc.atencionRepo.Create(atencion); err != nil {
		return nil, err
	}
	return atencion, nil
}

// MarcarResuelta cierra una atención.
func (uc *AtencionUseCase) MarcarResuelta(id string) (*entity.Atencion, error) {
	atencion, err := uc.atencionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if atencion == nil {
		return nil, domain.ErrNotFound
	}
	if atencion.Resuelto {
		return atencion, nil
	}
	atencion.Resuelto = true
	if err := uc.atencionRepo.Update(atencion); err != nil {
		return nil, err
	}
	return atencion, nil
}

// Listar lista atenciones según filtro.
func (uc *AtencionUseCase) Listar(filtro repository.AtencionFiltro) ([]*entity.Atencion, error) {
	if filtro.Limit <= 0 {
		filtro.Limit = 20
	}
	return uc.atencionRepo.List(filtro)
}
