package finanzas

import (
	"context"

	"github.com/Francoamora/munifinanzas-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con
// repositorios atados a esa tx. El cierre de una orden escribe el cambio de
// estado y el movimiento financiero en la misma transacción.
type TxRunner interface {
	RunFinanzas(ctx context.Context, fn func(
		ordenRepo repository.OrdenRepository,
		movRepo repository.MovimientoRepository,
	) error) error
}

// Capacidades decide qué acciones habilita cada rol. Se inyecta para que las
// guardas de la máquina de estados no dependan del esquema de roles concreto.
type Capacidades interface {
	PuedeEditarOrden(rol string) bool
	PuedeAutorizar(rol string) bool
	PuedeCerrar(rol string) bool
	PuedeAnular(rol string) bool
	PuedeReabrir(rol string) bool
	PuedeAprobarMovimiento(rol string) bool
}
