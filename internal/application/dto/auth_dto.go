package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse token emitido tras autenticar.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}

// CrearUsuarioRequest body para POST /api/usuarios (solo administración).
type CrearUsuarioRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Nombre   string `json:"nombre" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Rol      string `json:"rol" validate:"required,oneof=ADMIN_SISTEMA STAFF_FINANZAS OPERADOR_FINANZAS OPERADOR_SOCIAL CONSULTA_POLITICA"`
}

// UsuarioResponse representación de una cuenta.
type UsuarioResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
	Activo bool   `json:"activo"`
}
