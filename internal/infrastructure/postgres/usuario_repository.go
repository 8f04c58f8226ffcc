package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const columnasUsuario = `id, full_name, email, rol, activo, password_hash, fecha_alta`

// Crear persiste un nuevo usuario y devuelve su id.
func (r *UsuarioRepo) Crear(ctx context.Context, u *entity.Usuario) (int64, error) {
	query := `
		INSERT INTO usuarios (full_name, email, rol, activo, password_hash, fecha_alta)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		u.FullName, u.Email, u.Rol, u.Activo, u.PasswordHash, u.FechaAlta,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrEmailDuplicado
		}
		return 0, fmt.Errorf("insert usuario: %w", err)
	}
	return id, nil
}

// PorID obtiene un usuario por id, o nil si no existe.
func (r *UsuarioRepo) PorID(ctx context.Context, id int64) (*entity.Usuario, error) {
	query := `SELECT ` + columnasUsuario + ` FROM usuarios WHERE id = $1`
	return r.escanear(r.q.QueryRow(ctx, query, id), "usuario por id")
}

// PorEmail obtiene un usuario por email (ya en minúsculas), o nil.
func (r *UsuarioRepo) PorEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	query := `SELECT ` + columnasUsuario + ` FROM usuarios WHERE email = $1 LIMIT 1`
	return r.escanear(r.q.QueryRow(ctx, query, email), "usuario por email")
}

// Listar devuelve todos los usuarios ordenados por id ascendente.
func (r *UsuarioRepo) Listar(ctx context.Context) ([]*entity.Usuario, error) {
	query := `SELECT ` + columnasUsuario + ` FROM usuarios ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	defer rows.Close()
	var out []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.FullName, &u.Email, &u.Rol, &u.Activo, &u.PasswordHash, &u.FechaAlta); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

// Actualizar persiste los campos editables de un usuario.
func (r *UsuarioRepo) Actualizar(ctx context.Context, u *entity.Usuario) error {
	query := `
		UPDATE usuarios
		SET full_name = $2, email = $3, rol = $4, activo = $5, password_hash = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, u.ID, u.FullName, u.Email, u.Rol, u.Activo, u.PasswordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailDuplicado
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// ActualizarHash persiste solo el password_hash.
func (r *UsuarioRepo) ActualizarHash(ctx context.Context, id int64, hash string) error {
	_, err := r.q.Exec(ctx, `UPDATE usuarios SET password_hash = $2 WHERE id = $1`, id, hash)
	if err != nil {
		return fmt.Errorf("update hash usuario %d: %w", id, err)
	}
	return nil
}

// Borrar elimina un usuario por id.
func (r *UsuarioRepo) Borrar(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) escanear(row pgx.Row, op string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.Rol, &u.Activo, &u.PasswordHash, &u.FechaAlta)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
