package domain

// Roles de la aplicación (grupos del sistema municipal).
const (
	RolAdminSistema     = "ADMIN_SISTEMA"
	RolStaffFinanzas    = "STAFF_FINANZAS"
	RolOperadorFinanzas = "OPERADOR_FINANZAS"
	RolOperadorSocial   = "OPERADOR_SOCIAL"
	RolConsultaPolitica = "CONSULTA_POLITICA"
)

// EsAdminSistema informa si el rol es administrador del sistema.
func EsAdminSistema(rol string) bool {
	return rol == RolAdminSistema
}

// EsStaffFinanzas: staff financiero o admin. Puede autorizar y cerrar órdenes.
func EsStaffFinanzas(rol string) bool {
	return rol == RolStaffFinanzas || rol == RolAdminSistema
}

// EsOperadorFinanzas: cualquier rol con permisos de carga en finanzas.
func EsOperadorFinanzas(rol string) bool {
	return rol == RolOperadorFinanzas || EsStaffFinanzas(rol)
}

// EsOperadorSocial: carga de atenciones y ayudas sociales.
func EsOperadorSocial(rol string) bool {
	return rol == RolOperadorSocial || EsStaffFinanzas(rol)
}

// EsConsultaPolitica: lectura de movimientos aprobados y reportes.
func EsConsultaPolitica(rol string) bool {
	return rol == RolConsultaPolitica || EsStaffFinanzas(rol)
}
