package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
	ErrEmailDuplicado      = errors.New("el email ya está registrado")
	ErrEntradaInvalida     = errors.New("entrada inválida")
	ErrAreaInvalida        = errors.New("área no válida")
	ErrCredenciales        = errors.New("contraseña incorrecta")
	ErrUsuarioInactivo     = errors.New("usuario inactivo")
)

// ErrBloqueada indica que la tarea pendiente de un VIN pertenece a otro usuario.
// Lleva el id del registro de área y el propietario para que el handler pueda
// devolver ambos en la respuesta 423.
type ErrBloqueada struct {
	IDArea        int64
	PropietarioID int64
}

func (e *ErrBloqueada) Error() string {
	return fmt.Sprintf("tarea %d bloqueada por el usuario %d", e.IDArea, e.PropietarioID)
}
