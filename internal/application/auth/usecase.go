package auth

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	"github.com/jhoicas/Planta-api/internal/domain/repository"
	"github.com/jhoicas/Planta-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de login de operarios.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password y devuelve token + datos públicos del usuario.
//
// Soporta hashes legados: si lo guardado no es bcrypt y coincide en claro con
// la contraseña recibida, el login es válido y el hash se migra a bcrypt en el
// momento. Ese paso es best-effort: si la migración falla, el login sigue.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrEntradaInvalida
	}

	u, err := uc.usuarioRepo.PorEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}

	if !uc.verificar(ctx, u, in.Password) {
		return nil, domain.ErrCredenciales
	}
	if !u.Activo {
		return nil, domain.ErrUsuarioInactivo
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Status:  "success",
		Message: "Login correcto",
		Token:   token,
		User: dto.UsuarioPublico{
			ID:       u.ID,
			FullName: u.FullName,
			Email:    u.Email,
			Rol:      u.Rol,
			Activo:   u.Activo,
		},
	}, nil
}

func (uc *AuthUseCase) verificar(ctx context.Context, u *entity.Usuario, plain string) bool {
	if esBcrypt(u.PasswordHash) {
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
	}
	// Hash legado en texto plano: comparar en tiempo constante y migrar a bcrypt.
	if subtle.ConstantTimeCompare([]byte(u.PasswordHash), []byte(plain)) != 1 {
		return false
	}
	if hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost); err == nil {
		_ = uc.usuarioRepo.ActualizarHash(ctx, u.ID, string(hash))
	}
	return true
}

func esBcrypt(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$") || strings.HasPrefix(hash, "$2y$")
}
