package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cafeteriasoma/soma-api/internal/application/dto"
	"github.com/cafeteriasoma/soma-api/internal/application/events"
	"github.com/cafeteriasoma/soma-api/internal/domain"
	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
	"github.com/cafeteriasoma/soma-api/internal/infrastructure/localstore"
	"github.com/cafeteriasoma/soma-api/internal/infrastructure/memory"
)

var testAdmin = AdminIdentity{
	Username: "admin",
	Email:    "admin@cafeteriasoma.com",
	Password: "admin123",
}

var testJWT = JWTConfig{
	Secret:     "test-secret",
	ExpMinutes: 60,
	Issuer:     "cafeteria-soma-test",
}

// authUC construye el caso de uso en modo mock sobre un snapshot temporal.
func authUC(t *testing.T) *AuthUseCase {
	t.Helper()
	store, err := localstore.NewFileStore(filepath.Join(t.TempDir(), "localstore.json"))
	require.NoError(t, err)
	return NewAuthUseCase(
		memory.NewAccountRepository(store),
		memory.NewSessionRepository(store),
		nil, // sin backend remoto
		events.NewBus(),
		testJWT,
		testAdmin,
	)
}

func registro(email, password string) dto.RegisterRequest {
	return dto.RegisterRequest{Email: email, Password: password}
}

// La credencial reservada del admin autentica con rol ADMIN y token JWT.
func TestLogin_AdminConCredencialReservada(t *testing.T) {
	uc := authUC(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
	assert.NotEmpty(t, out.Token)
	assert.True(t, uc.IsAuthenticated())
}

func TestLogin_PasswordIncorrectaFalla(t *testing.T) {
	uc := authUC(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.False(t, uc.IsAuthenticated())
}

// Register crea un CLIENT, hashea la contraseña y deja la sesión establecida.
func TestRegister_CreaClienteConAutologin(t *testing.T) {
	uc := authUC(t)

	out, err := uc.Register(context.Background(), registro("ana@mail.com", "secreta1"))
	require.NoError(t, err)
	assert.Equal(t, entity.RoleClient, out.User.Role)
	assert.NotEmpty(t, out.Token)
	assert.True(t, uc.IsAuthenticated())

	// La contraseña nunca queda en claro.
	accounts, err := uc.accounts.List()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.NotEqual(t, "secreta1", accounts[0].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(accounts[0].PasswordHash), []byte("secreta1")))
}

// Un usuario registrado puede volver a entrar con su email y contraseña.
func TestLogin_UsuarioRegistrado(t *testing.T) {
	uc := authUC(t)

	_, err := uc.Register(context.Background(), registro("ana@mail.com", "secreta1"))
	require.NoError(t, err)
	require.NoError(t, uc.Logout())

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana@mail.com", Password: "secreta1"})
	require.NoError(t, err)
	assert.Equal(t, "ana@mail.com", out.User.Email)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "ana@mail.com", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// La identidad del admin no puede registrarse desde el storefront.
func TestRegister_IdentidadAdminReservada(t *testing.T) {
	uc := authUC(t)

	for _, email := range []string{"admin", testAdmin.Username, testAdmin.Email} {
		_, err := uc.Register(context.Background(), registro(email, "loquesea"))
		assert.ErrorIs(t, err, domain.ErrAdminReserved, "email %q debe estar reservado", email)
	}
}

func TestRegister_EmailDuplicadoFalla(t *testing.T) {
	uc := authUC(t)

	_, err := uc.Register(context.Background(), registro("ana@mail.com", "secreta1"))
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), registro("ana@mail.com", "otra"))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Logout limpia la sesión: Current pasa a ErrUnauthorized.
func TestLogout_LimpiaLaSesion(t *testing.T) {
	uc := authUC(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	require.NoError(t, uc.Logout())
	assert.False(t, uc.IsAuthenticated())

	_, err = uc.Current()
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Registro sin nombre: se deriva del email y queda visible en la sesión.
func TestRegister_DerivaNombreDesdeEmail(t *testing.T) {
	uc := authUC(t)

	out, err := uc.Register(context.Background(), registro("juan.perez@mail.com", "secreta1"))
	require.NoError(t, err)
	assert.Equal(t, "Juan Perez", out.User.FullName)
}

// MigrateStoredNames repara cuentas persistidas sin nombre visible.
func TestMigrateStoredNames_ReparaCuentasSinNombre(t *testing.T) {
	uc := authUC(t)

	require.NoError(t, uc.accounts.Append(entity.Account{
		Email:        "maria_gomez@mail.com",
		PasswordHash: "$2a$10$inservible",
		User: entity.User{
			ID:       "u1",
			Username: "maria_gomez@mail.com",
			Email:    "maria_gomez@mail.com",
			Role:     entity.RoleClient,
		},
	}))

	require.NoError(t, uc.MigrateStoredNames())

	accounts, err := uc.accounts.List()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Maria Gomez", accounts[0].User.FullName)
}

func TestGuessFullNameFromEmail(t *testing.T) {
	cases := map[string]string{
		"juan.perez@x.com":  "Juan Perez",
		"maria_gomez@x.com": "Maria Gomez",
		"ana-sofia@x.com":   "Ana Sofia",
		"CARLOS@x.com":      "Carlos",
	}
	for email, want := range cases {
		assert.Equal(t, want, guessFullNameFromEmail(email), "email %q", email)
	}
}
