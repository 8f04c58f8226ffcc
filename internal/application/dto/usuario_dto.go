package dto

// CrearUsuarioRequest alta de usuario. Si Password viene vacío se usa la
// contraseña por defecto "1234" (flujo de alta rápida de operarios).
type CrearUsuarioRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Rol      string `json:"rol"` // admin | user
	Activo   *bool  `json:"activo"`
	Password string `json:"password"`
}

// ActualizarUsuarioRequest edición de usuario; la contraseña solo se toca si viene.
type ActualizarUsuarioRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Rol      string `json:"rol"`
	Activo   *bool  `json:"activo"`
	Password string `json:"password"`
}

// CambiarPasswordRequest cambio de contraseña de un usuario.
type CambiarPasswordRequest struct {
	Password string `json:"password"`
}
