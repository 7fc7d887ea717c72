package finanzas

import "github.com/Francoamora/munifinanzas-sub000/internal/domain"

// CapacidadesPorRol implementación por defecto sobre la jerarquía de roles:
// el operador carga, el staff autoriza y cierra, y reabrir queda reservado
// a administración.
type CapacidadesPorRol struct{}

// NewCapacidadesPorRol construye la implementación por defecto.
func NewCapacidadesPorRol() CapacidadesPorRol { return CapacidadesPorRol{} }

func (CapacidadesPorRol) PuedeEditarOrden(rol string) bool {
	return domain.EsOperadorFinanzas(rol)
}

func (CapacidadesPorRol) PuedeAutorizar(rol string) bool {
	return domain.EsStaffFinanzas(rol)
}

func (CapacidadesPorRol) PuedeCerrar(rol string) bool {
	return domain.EsStaffFinanzas(rol)
}

func (CapacidadesPorRol) PuedeAnular(rol string) bool {
	return domain.EsStaffFinanzas(rol)
}

func (CapacidadesPorRol) PuedeReabrir(rol string) bool {
	return domain.EsAdminSistema(rol)
}

func (CapacidadesPorRol) PuedeAprobarMovimiento(rol string) bool {
	return domain.EsStaffFinanzas(rol)
}
