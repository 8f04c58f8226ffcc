package repository

import (
	"context"

	"github.com/jhoicas/Planta-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	Crear(ctx context.Context, u *entity.Usuario) (int64, error)
	PorID(ctx context.Context, id int64) (*entity.Usuario, error)
	PorEmail(ctx context.Context, email string) (*entity.Usuario, error)
	Listar(ctx context.Context) ([]*entity.Usuario, error)
	Actualizar(ctx context.Context, u *entity.Usuario) error
	// ActualizarHash persiste solo el password_hash (migración de hashes legados y cambios de contraseña).
	ActualizarHash(ctx context.Context, id int64, hash string) error
	Borrar(ctx context.Context, id int64) error
}
