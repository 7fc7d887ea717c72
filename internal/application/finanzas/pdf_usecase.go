package finanzas

import (
	"context"
	"fmt"

	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// LineaParaPDF línea de orden enriquecida con los nombres que se imprimen.
type LineaParaPDF struct {
	entity.OrdenLinea
	CategoriaNombre    string
	AreaNombre         string
	BeneficiarioNombre string
}

// OrdenPDFGenerator genera la impresión de una orden.
type OrdenPDFGenerator interface {
	GenerarOrdenPDF(ctx context.Context, orden *entity.Orden, lineas []LineaParaPDF) ([]byte, error)
}

// PDFUseCase arma la orden imprimible: carga la orden con sus líneas,
// resuelve los nombres de categorías, áreas y beneficiarios y delega el
// armado del documento en el generador.
type PDFUseCase struct {
	ordenRepo        repository.OrdenRepository
	categoriaRepo    repository.CategoriaRepository
	areaRepo         repository.AreaRepository
	beneficiarioRepo repository.BeneficiarioRepository
	generator        OrdenPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	ordenRepo repository.OrdenRepository,
	categoriaRepo repository.CategoriaRepository,
	areaRepo repository.AreaRepository,
	beneficiarioRepo repository.BeneficiarioRepository,
	generator OrdenPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		ordenRepo:        ordenRepo,
		categoriaRepo:    categoriaRepo,
		areaRepo:         areaRepo,
		beneficiarioRepo: beneficiarioRepo,
		generator:        generator,
	}
}

// DescargarOrdenPDF genera el PDF de una orden y devuelve bytes + nombre de
// archivo. Los borradores no se imprimen.
func (uc *PDFUseCase) DescargarOrdenPDF(ctx context.Context, ordenID string) (pdfBytes []byte, filename string, err error) {
	orden, err := uc.ordenRepo.GetByID(ordenID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener orden: %w", err)
	}
	if orden == nil {
		return nil, "", domain.ErrNotFound
	}
	if orden.Estado == entity.OrdenBORRADOR {
		return nil, "", fmt.Errorf("%w: la orden está en borrador, autorícela antes de imprimir",
			domain.ErrInvalidInput)
	}

	rawLineas, err := uc.ordenRepo.ListLineas(ordenID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}

	lineas := make([]LineaParaPDF, 0, len(rawLineas))
	for _, l := range rawLineas {
		enriquecida := LineaParaPDF{OrdenLinea: *l}
		if cat, cErr := uc.categoriaRepo.GetByID(l.CategoriaID); cErr == nil && cat != nil {
			enriquecida.CategoriaNombre = cat.Nombre
		}
		if l.AreaID != "" {
			if area, aErr := uc.areaRepo.GetByID(l.AreaID); aErr == nil && area != nil {
				enriquecida.AreaNombre = area.Nombre
			}
		}
		if l.BeneficiarioID != "" {
			if b, bErr := uc.beneficiarioRepo.GetByID(l.BeneficiarioID); bErr == nil && b != nil {
				enriquecida.BeneficiarioNombre = b.NombreCompleto()
			}
		}
		lineas = append(lineas, enriquecida)
	}

	pdfBytes, err = uc.generator.GenerarOrdenPDF(ctx, orden, lineas)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("orden_%s.pdf", orden.Numero), nil
}
