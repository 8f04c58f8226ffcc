package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// passwordPorDefecto se asigna en altas sin contraseña y en resets de admin.
const passwordPorDefecto = "1234"

// UsuarioUseCase CRUD de usuarios (colaborador fino; la lógica interesante
// vive en el motor de tareas).
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso de usuarios.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Listar devuelve todos los usuarios ordenados por id.
func (uc *UsuarioUseCase) Listar(ctx context.Context) ([]dto.UsuarioPublico, error) {
	usuarios, err := uc.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioPublico, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, publico(u))
	}
	return out, nil
}

// Crear da de alta un usuario; sin contraseña se usa la por defecto.
func (uc *UsuarioUseCase) Crear(ctx context.Context, in dto.CrearUsuarioRequest) (*dto.UsuarioPublico, error) {
	if err := validarUsuario(in.FullName, in.Email, in.Rol, in.Activo); err != nil {
		return nil, err
	}
	plain := in.Password
	if plain == "" {
		plain = passwordPorDefecto
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	alta := time.Now()
	u := &entity.Usuario{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Rol:          in.Rol,
		Activo:       *in.Activo,
		PasswordHash: string(hash),
		FechaAlta:    &alta,
	}
	id, err := uc.repo.Crear(ctx, u)
	if err != nil {
		return nil, err
	}
	u.ID = id
	p := publico(u)
	return &p, nil
}

// Actualizar edita un usuario; la contraseña solo se toca si viene.
func (uc *UsuarioUseCase) Actualizar(ctx context.Context, id int64, in dto.ActualizarUsuarioRequest) (*dto.UsuarioPublico, error) {
	if err := validarUsuario(in.FullName, in.Email, in.Rol, in.Activo); err != nil {
		return nil, err
	}
	u, err := uc.repo.PorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	u.FullName = strings.TrimSpace(in.FullName)
	u.Email = strings.ToLower(strings.TrimSpace(in.Email))
	u.Rol = in.Rol
	u.Activo = *in.Activo
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if err := uc.repo.Actualizar(ctx, u); err != nil {
		return nil, err
	}
	p := publico(u)
	return &p, nil
}

// Borrar elimina un usuario.
func (uc *UsuarioUseCase) Borrar(ctx context.Context, id int64) error {
	u, err := uc.repo.PorID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUsuarioNoEncontrado
	}
	return uc.repo.Borrar(ctx, id)
}

// ResetPassword restablece la contraseña a la por defecto (acción de admin).
func (uc *UsuarioUseCase) ResetPassword(ctx context.Context, id int64) error {
	return uc.cambiarPassword(ctx, id, passwordPorDefecto)
}

// CambiarPassword establece una contraseña nueva.
func (uc *UsuarioUseCase) CambiarPassword(ctx context.Context, id int64, password string) error {
	if len(password) < 4 {
		return domain.ErrEntradaInvalida
	}
	return uc.cambiarPassword(ctx, id, password)
}

func (uc *UsuarioUseCase) cambiarPassword(ctx context.Context, id int64, plain string) error {
	u, err := uc.repo.PorID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUsuarioNoEncontrado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.repo.ActualizarHash(ctx, id, string(hash))
}

func validarUsuario(fullName, email, rol string, activo *bool) error {
	if strings.TrimSpace(fullName) == "" || activo == nil {
		return domain.ErrEntradaInvalida
	}
	if !strings.Contains(email, "@") {
		return domain.ErrEntradaInvalida
	}
	if rol != entity.RolAdmin && rol != entity.RolUser {
		return domain.ErrEntradaInvalida
	}
	return nil
}

func publico(u *entity.Usuario) dto.UsuarioPublico {
	return dto.UsuarioPublico{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Rol:      u.Rol,
		Activo:   u.Activo,
	}
}
