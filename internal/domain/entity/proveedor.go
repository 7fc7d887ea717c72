package entity

// Proveedor de la comuna (corralones, estaciones de servicio, contratistas).
type Proveedor struct {
	ID        string
	Nombre    string
	CUIT      string
	Direccion string
	Telefono  string
	Email     string
	Activo    bool
}

// Area es un sector municipal (Obras, Social, Administración).
type Area struct {
	ID          string
	Nombre      string
	Descripcion string
	Activo      bool
}
