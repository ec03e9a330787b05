package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cafeteriasoma/soma-api/internal/application/dto"
	"github.com/cafeteriasoma/soma-api/internal/application/events"
	"github.com/cafeteriasoma/soma-api/internal/domain"
	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
	"github.com/cafeteriasoma/soma-api/internal/domain/repository"
	"github.com/cafeteriasoma/soma-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AdminIdentity identidad reservada del administrador. No se puede registrar
// vía storefront y su credencial se verifica antes que la lista persistida.
type AdminIdentity struct {
	Username string
	Email    string
	Password string
}

// AuthUseCase casos de uso de sesión: login, registro, logout y la migración
// de nombres del snapshot. Si hay un RemoteGateway configurado, login y
// registro delegan en el backend y adoptan su respuesta.
type AuthUseCase struct {
	accounts repository.AccountRepository
	sessions repository.SessionRepository
	remote   RemoteGateway // nil = modo mock
	bus      *events.Bus
	jwtCfg   JWTConfig
	admin    AdminIdentity
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	accounts repository.AccountRepository,
	sessions repository.SessionRepository,
	remote RemoteGateway,
	bus *events.Bus,
	jwtCfg JWTConfig,
	admin AdminIdentity,
) *AuthUseCase {
	return &AuthUseCase{
		accounts: accounts,
		sessions: sessions,
		remote:   remote,
		bus:      bus,
		jwtCfg:   jwtCfg,
		admin:    admin,
	}
}

// Login verifica credenciales y establece la sesión. Ruta mock: primero la
// credencial reservada del admin, después la lista persistida de registrados.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	if uc.remote != nil {
		session, err := uc.remote.Login(ctx, in)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return nil, domain.ErrInvalidCredentials
			}
			return nil, err
		}
		return uc.establish(*session)
	}

	if in.Username == uc.admin.Username && in.Password == uc.admin.Password {
		return uc.establishFor(uc.adminUser())
	}

	account, err := uc.accounts.FindByLogin(in.Username)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user := account.User
	if ensureFullName(&user) {
		// Reparación retrocompatible: persistir el nombre derivado.
		account.User = user
		_ = uc.repairAccount(*account)
	}
	return uc.establishFor(user)
}

// Register crea un usuario CLIENT, lo agrega a la lista persistida y deja la
// sesión establecida (auto-login). La identidad del admin está reservada.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if in.Email == uc.admin.Email || in.Email == uc.admin.Username || in.Email == "admin" {
		return nil, domain.ErrAdminReserved
	}

	existing, err := uc.accounts.FindByLogin(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := entity.User{
		ID:        uuid.New().String(),
		Username:  in.Email,
		Email:     in.Email,
		FullName:  in.FullName,
		Role:      entity.RoleClient,
		CreatedAt: time.Now(),
	}
	ensureFullName(&user)

	if err := uc.accounts.Append(entity.Account{
		Email:        in.Email,
		PasswordHash: string(hash),
		User:         user,
	}); err != nil {
		return nil, err
	}

	if uc.remote != nil {
		session, err := uc.remote.Register(ctx, in)
		if err != nil {
			return nil, err
		}
		return uc.establish(*session)
	}
	return uc.establishFor(user)
}

// Logout limpia la sesión persistida; un arranque posterior queda como no
// autenticado.
func (uc *AuthUseCase) Logout() error {
	if err := uc.sessions.Clear(); err != nil {
		return err
	}
	uc.bus.Publish(events.Event{Type: events.TypeDeleted, Entity: events.EntitySession})
	return nil
}

// ForceLogout descarta la sesión local cuando el backend remoto rechaza la
// credencial con 401; el siguiente guard obliga a volver al login. Mejor
// esfuerzo: un fallo al limpiar no altera la respuesta al cliente.
func (uc *AuthUseCase) ForceLogout() {
	if err := uc.sessions.Clear(); err != nil {
		return
	}
	uc.bus.Publish(events.Event{Type: events.TypeDeleted, Entity: events.EntitySession})
}

// Current devuelve el usuario de la sesión activa, o ErrUnauthorized si no
// hay sesión.
func (uc *AuthUseCase) Current() (*dto.UserResponse, error) {
	session, err := uc.sessions.Load()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrUnauthorized
	}
	out := toUserResponse(session.User)
	return &out, nil
}

// IsAuthenticated lectura booleana de la presencia de sesión (guard de rutas).
func (uc *AuthUseCase) IsAuthenticated() bool {
	session, err := uc.sessions.Load()
	return err == nil && session != nil
}

// MigrateStoredNames repara en el arranque los usuarios persistidos sin
// nombre visible, derivándolo del email. Mejor esfuerzo: los errores de
// lectura no detienen el arranque.
func (uc *AuthUseCase) MigrateStoredNames() error {
	accounts, err := uc.accounts.List()
	if err != nil {
		return err
	}
	changed := false
	for i := range accounts {
		if ensureFullName(&accounts[i].User) {
			changed = true
		}
	}
	if changed {
		if err := uc.accounts.ReplaceAll(accounts); err != nil {
			return err
		}
	}

	session, err := uc.sessions.Load()
	if err != nil || session == nil {
		return err
	}
	if ensureFullName(&session.User) {
		return uc.sessions.Save(*session)
	}
	return nil
}

// establishFor genera el token JWT del usuario y persiste la sesión.
func (uc *AuthUseCase) establishFor(user entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return uc.establish(entity.Session{User: user, Token: token})
}

// establish persiste la sesión adoptada (propia o remota) y notifica.
func (uc *AuthUseCase) establish(session entity.Session) (*dto.AuthResponse, error) {
	if err := uc.sessions.Save(session); err != nil {
		return nil, err
	}
	uc.bus.Publish(events.Event{Type: events.TypeCreated, Entity: events.EntitySession})
	return &dto.AuthResponse{User: toUserResponse(session.User), Token: session.Token}, nil
}

// repairAccount reemplaza la entrada de la cuenta dentro de la lista
// persistida (usado por la reparación de nombres en login).
func (uc *AuthUseCase) repairAccount(account entity.Account) error {
	accounts, err := uc.accounts.List()
	if err != nil {
		return err
	}
	for i := range accounts {
		if accounts[i].Email == account.Email {
			accounts[i] = account
		}
	}
	return uc.accounts.ReplaceAll(accounts)
}

func (uc *AuthUseCase) adminUser() entity.User {
	return entity.User{
		ID:        "1",
		Username:  uc.admin.Username,
		Email:     uc.admin.Email,
		FullName:  "Administrador",
		Role:      entity.RoleAdmin,
		CreatedAt: time.Now(),
	}
}

func toUserResponse(u entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
