package dto

// LoginRequest credenciales de POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UsuarioPublico datos públicos de un usuario (nunca incluye el hash).
type UsuarioPublico struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Rol      string `json:"rol"`
	Activo   bool   `json:"activo"`
}

// LoginResponse respuesta de login correcto.
type LoginResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    UsuarioPublico `json:"user"`
}
