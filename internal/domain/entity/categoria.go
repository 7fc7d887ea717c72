package entity

// Tipos de categoría financiera.
const (
	CategoriaINGRESO = "INGRESO"
	CategoriaGASTO   = "GASTO"
	CategoriaAMBOS   = "AMBOS"
)

// Grupos de categorías para la franja de gastos y reportes.
const (
	GrupoVehiculos    = "VEHICULOS"
	GrupoInsumos      = "INSUMOS"
	GrupoConstruccion = "CONSTRUCCION"
	GrupoAyudas       = "AYUDAS"
	GrupoOtros        = "OTROS"
)

// Categoria clasifica movimientos financieros y líneas de órdenes.
// Los flags semánticos alimentan el dashboard (ayudas, personal, combustible).
type Categoria struct {
	ID            string
	Nombre        string
	Tipo          string
	Grupo         string
	EsAyudaSocial bool
	EsServicio    bool
	EsCombustible bool
	EsPersonal    bool
	Descripcion   string
}
