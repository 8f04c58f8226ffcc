package auth_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Planta-api/internal/application/auth"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/domain"
	"github.com/jhoicas/Planta-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Planta-api/pkg/jwt"
)

const (
	testSecret = "secreto-de-test"
	testIssuer = "planta-api-test"
)

// fakeUsuarios guarda usuarios por email y registra las migraciones de hash.
type fakeUsuarios struct {
	porEmail map[string]*entity.Usuario
	migrados map[int64]string
}

func (r *fakeUsuarios) Crear(context.Context, *entity.Usuario) (int64, error) { return 0, nil }
func (r *fakeUsuarios) PorID(context.Context, int64) (*entity.Usuario, error) { return nil, nil }
func (r *fakeUsuarios) PorEmail(_ context.Context, email string) (*entity.Usuario, error) {
	u, ok := r.porEmail[email]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}
func (r *fakeUsuarios) Listar(context.Context) ([]*entity.Usuario, error) { return nil, nil }
func (r *fakeUsuarios) Actualizar(context.Context, *entity.Usuario) error    { return nil }
func (r *fakeUsuarios) ActualizarHash(_ context.Context, id int64, hash string) error {
	if r.migrados == nil {
		r.migrados = make(map[int64]string)
	}
	r.migrados[id] = hash
	return nil
}
func (r *fakeUsuarios) Borrar(context.Context, int64) error { return nil }

func usecaseCon(usuarios ...*entity.Usuario) (*auth.AuthUseCase, *fakeUsuarios) {
	repo := &fakeUsuarios{porEmail: make(map[string]*entity.Usuario)}
	for _, u := range usuarios {
		repo.porEmail[u.Email] = u
	}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: testIssuer})
	return uc, repo
}

func conBcrypt(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Correcto(t *testing.T) {
	uc, _ := usecaseCon(&entity.Usuario{
		ID: 7, FullName: "Ana Ruiz", Email: "ana@planta.es", Rol: entity.RolUser,
		Activo: true, PasswordHash: conBcrypt(t, "secreta"),
	})

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@planta.es", Password: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, "success", out.Status)
	assert.Equal(t, int64(7), out.User.ID)
	assert.Equal(t, "Ana Ruiz", out.User.FullName)

	// El token emitido lleva el usuario y el rol.
	usuarioID, rol, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), usuarioID)
	assert.Equal(t, entity.RolUser, rol)
}

// El email se normaliza antes de buscar: mayúsculas y espacios no importan.
func TestLogin_EmailNormalizado(t *testing.T) {
	uc, _ := usecaseCon(&entity.Usuario{
		ID: 7, Email: "ana@planta.es", Activo: true, PasswordHash: conBcrypt(t, "secreta"),
	})

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "  ANA@Planta.es ", Password: "secreta"})
	assert.NoError(t, err)
}

func TestLogin_Errores(t *testing.T) {
	uc, _ := usecaseCon(&entity.Usuario{
		ID: 7, Email: "ana@planta.es", Activo: true, PasswordHash: conBcrypt(t, "secreta"),
	}, &entity.Usuario{
		ID: 8, Email: "baja@planta.es", Activo: false, PasswordHash: conBcrypt(t, "secreta"),
	})
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Email: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@planta.es", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUsuarioNoEncontrado)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@planta.es", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrCredenciales)

	// La contraseña se comprueba antes que el estado: credenciales válidas con
	// usuario desactivado es 403, no 401.
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "baja@planta.es", Password: "secreta"})
	assert.ErrorIs(t, err, domain.ErrUsuarioInactivo)
}

// Un hash legado en texto plano sigue permitiendo el login y se migra a bcrypt
// en el momento.
func TestLogin_MigraHashLegado(t *testing.T) {
	uc, repo := usecaseCon(&entity.Usuario{
		ID: 7, Email: "ana@planta.es", Activo: true, PasswordHash: "secreta",
	})

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@planta.es", Password: "secreta"})
	require.NoError(t, err)

	migrado, ok := repo.migrados[7]
	require.True(t, ok, "el hash legado debe migrarse")
	assert.True(t, strings.HasPrefix(migrado, "$2"), "el hash migrado es bcrypt")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(migrado), []byte("secreta")))
}

func TestLogin_HashLegadoIncorrectoNoMigra(t *testing.T) {
	uc, repo := usecaseCon(&entity.Usuario{
		ID: 7, Email: "ana@planta.es", Activo: true, PasswordHash: "secreta",
	})

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@planta.es", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrCredenciales)
	assert.Empty(t, repo.migrados)
}
