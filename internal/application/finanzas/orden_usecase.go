package finanzas

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/dto"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/entity"
	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// OrdenUseCase maneja el ciclo de vida de las órdenes: alta en borrador con
// número autonumerado por rubro, edición solo en borrador y transiciones por
// la tabla de estados. El cierre genera exactamente un movimiento financiero
// en la misma transacción.
type OrdenUseCase struct {
	txRunner      TxRunner
	ordenRepo     repository.OrdenRepository
	proveedorRepo repository.ProveedorRepository
	capacidades   Capacidades
}

// NewOrdenUseCase construye el caso de uso.
func NewOrdenUseCase(
	txRunner TxRunner,
	ordenRepo repository.OrdenRepository,
	proveedorRepo repository.ProveedorRepository,
	capacidades Capacidades,
) *OrdenUseCase {
	return &OrdenUseCase{
		txRunner:      txRunner,
		ordenRepo:     ordenRepo,
		proveedorRepo: proveedorRepo,
		capacidades:   capacidades,
	}
}

// rubroValido informa si el prefijo pertenece al conjunto conocido.
func rubroValido(rubro string) bool {
	switch rubro {
	case entity.RubroAyudasSociales, entity.RubroCombustible, entity.RubroObras,
		entity.RubroServicios, entity.RubroPersonal, entity.RubroHerramientas, entity.RubroOtros:
		return true
	}
	return false
}

// lineasDeRequest convierte las líneas del request en entidades.
func lineasDeRequest(ordenID string, reqs []dto.OrdenLineaRequest) []*entity.OrdenLinea {
	lineas := make([]*entity.OrdenLinea, 0, len(reqs))
	for _, r := range reqs {
		lineas = append(lineas, &entity.OrdenLinea{
			ID:             uuid.New().String(),
			OrdenID:        ordenID,
			CategoriaID:    r.CategoriaID,
			AreaID:         r.AreaID,
			Descripcion:    r.Descripcion,
			Monto:          r.Monto,
			BeneficiarioID: r.BeneficiarioID,
		})
	}
	return lineas
}

// Crear da de alta una orden en BORRADOR. El número se asigna dentro de la
// transacción consultando el máximo del rubro, para que dos altas
// concurrentes no repitan numeración.
func (uc *OrdenUseCase) Crear(ctx context.Context, req dto.CrearOrdenRequest, usuarioID string) (*entity.Orden, error) {
	if !rubroValido(req.Rubro) {
		return nil, domain.ErrInvalidInput
	}
	for _, l := range req.Lineas {
		if l.Monto.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	fecha := req.Fecha
	if fecha.IsZero() {
		fecha = time.Now()
	}
	now := time.Now()
	orden := &entity.Orden{
		ID:            uuid.New().String(),
		Fecha:         fecha,
		Estado:        entity.OrdenBORRADOR,
		Rubro:         req.Rubro,
		Observaciones: req.Observaciones,
		CreadoPorID:   usuarioID,
		CreadoEn:      now,
		ActualizadoEn: now,
	}
	if req.ProveedorID != "" {
		proveedor, err := uc.proveedorRepo.GetByID(req.ProveedorID)
		if err != nil || proveedor == nil {
			return nil, domain.ErrNotFound
		}
		orden.ProveedorID = proveedor.ID
		orden.ProveedorNombre = proveedor.Nombre
		orden.ProveedorCUIT = proveedor.CUIT
	}
	lineas := lineasDeRequest(orden.ID, req.Lineas)

	err := uc.txRunner.RunFinanzas(ctx, func(ordenRepo repository.OrdenRepository, _ repository.MovimientoRepository) error {
		max, err := ordenRepo.MaxNumeroConPrefijo(req.Rubro)
		if err != nil {
			return err
		}
		orden.Numero = fmt.Sprintf("%s-%03d", req.Rubro, max+1)
		return ordenRepo.Create(orden, lineas)
	})
	if err != nil {
		return nil, err
	}
	return orden, nil
}

// Actualizar reemplaza cabecera y líneas de una orden en BORRADOR. Cualquier
// otro estado devuelve ErrConflict: lo autorizado no se edita, se anula.
func (uc *OrdenUseCase) Actualizar(ctx context.Context, id string, req dto.ActualizarOrdenRequest, rol string) (*entity.Orden, error) {
	if !uc.capacidades.PuedeEditarOrden(rol) {
		return nil, domain.ErrForbidden
	}
	for _, l := range req.Lineas {
		if l.Monto.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	var orden *entity.Orden
	err := uc.txRunner.RunFinanzas(ctx, func(ordenRepo repository.OrdenRepository, _ repository.MovimientoRepository) error {
		var err error
		orden, err = ordenRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if orden == nil {
			return domain.ErrNotFound
		}
		if !orden.EsEditable() {
			return domain.ErrConflict
		}

		if req.ProveedorID != "" && req.ProveedorID != orden.ProveedorID {
			proveedor, err := uc.proveedorRepo.GetByID(req.ProveedorID)
			if err != nil || proveedor == nil {
				return domain.ErrNotFound
			}
			orden.ProveedorID = proveedor.ID
			orden.ProveedorNombre = proveedor.Nombre
			orden.ProveedorCUIT = proveedor.CUIT
		} else if req.ProveedorID == "" {
			orden.ProveedorID = ""
			orden.ProveedorNombre = ""
			orden.ProveedorCUIT = ""
		}
		if !req.Fecha.IsZero() {
			orden.Fecha = req.Fecha
		}
		orden.Observaciones = req.Observaciones
		orden.ActualizadoEn = time.Now()

		if err := ordenRepo.Update(orden); err != nil {
			return err
		}
		return ordenRepo.ReplaceLineas(orden.ID, lineasDeRequest(orden.ID, req.Lineas))
	})
	if err != nil {
		return nil, err
	}
	return orden, nil
}

// CambiarEstado aplica una acción de la tabla de transiciones con la fila de
// la orden bloqueada. Las guardas que fallan devuelven ErrTransicionInvalida
// envuelto con el motivo; dos cierres concurrentes no pueden pasar los dos.
func (uc *OrdenUseCase) CambiarEstado(ctx context.Context, id, accion, usuarioID, rol string) (*entity.Orden, error) {
	switch accion {
	case entity.AccionAutorizar:
		if !uc.capacidades.PuedeAutorizar(rol) {
			return nil, domain.ErrForbidden
		}
	case entity.AccionCerrar:
		if !uc.capacidades.PuedeCerrar(rol) {
			return nil, domain.ErrForbidden
		}
	case entity.AccionAnular:
		if !uc.capacidades.PuedeAnular(rol) {
			return nil, domain.ErrForbidden
		}
	case entity.AccionReabrir:
		if !uc.capacidades.PuedeReabrir(rol) {
			return nil, domain.ErrForbidden
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	var orden *entity.Orden
	err := uc.txRunner.RunFinanzas(ctx, func(ordenRepo repository.OrdenRepository, movRepo repository.MovimientoRepository) error {
		var err error
		orden, err = ordenRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if orden == nil {
			return domain.ErrNotFound
		}

		destino, ok := entity.SiguienteEstado(orden.Estado, accion)
		if !ok {
			return fmt.Errorf("%w: %s no admite %s", domain.ErrTransicionInvalida, orden.Estado, accion)
		}

		switch accion {
		case entity.AccionAutorizar:
			lineas, err := ordenRepo.ListLineas(orden.ID)
			if err != nil {
				return err
			}
			if err := validarLineasParaAvanzar(lineas); err != nil {
				return err
			}
			orden.AutorizadoPorID = usuarioID
			if err := ordenRepo.Update(orden); err != nil {
				return err
			}
		case entity.AccionCerrar:
			lineas, err := ordenRepo.ListLineas(orden.ID)
			if err != nil {
				return err
			}
			if err := validarLineasParaAvanzar(lineas); err != nil {
				return err
			}
			if err := uc.generarMovimientoDeCierre(movRepo, orden, lineas, usuarioID); err != nil {
				return err
			}
		}

		orden.Estado = destino
		return ordenRepo.UpdateEstado(orden.ID, destino, usuarioID)
	})
	if err != nil {
		return nil, err
	}
	return orden, nil
}

// validarLineasParaAvanzar: toda línea con categoría y total mayor a cero.
func validarLineasParaAvanzar(lineas []*entity.OrdenLinea) error {
	if len(lineas) == 0 {
		return fmt.Errorf("%w: la orden no tiene líneas", domain.ErrTransicionInvalida)
	}
	for _, l := range lineas {
		if l.CategoriaID == "" {
			return fmt.Errorf("%w: hay líneas sin categoría", domain.ErrTransicionInvalida)
		}
	}
	if !entity.TotalLineas(lineas).GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: el total debe ser mayor a cero", domain.ErrTransicionInvalida)
	}
	return nil
}

// generarMovimientoDeCierre crea el único movimiento financiero del cierre:
// un GASTO aprobado por el total de las líneas, imputado a la categoría de la
// primera línea y vinculado a la orden. La verificación por OrdenID refuerza
// la idempotencia que ya garantiza la guarda de estado.
func (uc *OrdenUseCase) generarMovimientoDeCierre(
	movRepo repository.MovimientoRepository,
	orden *entity.Orden,
	lineas []*entity.OrdenLinea,
	usuarioID string,
) error {
	existe, err := movRepo.ExistsByOrden(orden.ID)
	if err != nil {
		return err
	}
	if existe {
		return fmt.Errorf("%w: la orden ya tiene movimiento generado", domain.ErrTransicionInvalida)
	}

	now := time.Now()
	mov := &entity.Movimiento{
		ID:              uuid.New().String(),
		Tipo:            entity.MovGASTO,
		FechaOperacion:  now,
		Monto:           entity.TotalLineas(lineas),
		CategoriaID:     lineas[0].CategoriaID,
		AreaID:          lineas[0].AreaID,
		ProveedorID:     orden.ProveedorID,
		ProveedorNombre: orden.ProveedorNombre,
		ProveedorCUIT:   orden.ProveedorCUIT,
		OrdenID:         orden.ID,
		Descripcion:     "Cierre de orden " + orden.Numero,
		Estado:          entity.MovAPROBADO,
		CreadoPorID:     usuarioID,
		CreadoEn:        now,
	}
	return movRepo.Create(mov)
}

// Obtener devuelve la orden con sus líneas y el total calculado.
func (uc *OrdenUseCase) Obtener(id string) (*entity.Orden, []*entity.OrdenLinea, error) {
	orden, err := uc.ordenRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if orden == nil {
		return nil, nil, domain.ErrNotFound
	}
	lineas, err := uc.ordenRepo.ListLineas(id)
	if err != nil {
		return nil, nil, err
	}
	return orden, lineas, nil
}

// Listar lista órdenes según filtro.
func (uc *OrdenUseCase) Listar(filtro repository.OrdenFiltro) ([]*entity.Orden, error) {
	if filtro.Limit <= 0 {
		filtro.Limit = 20
	}
	return uc.ordenRepo.List(filtro)
}
