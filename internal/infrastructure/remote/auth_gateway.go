package remote

import (
	"context"
	"net/http"

	appauth "github.com/cafeteriasoma/soma-api/internal/application/auth"
	"github.com/cafeteriasoma/soma-api/internal/application/dto"
	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
)

var _ appauth.RemoteGateway = (*AuthGateway)(nil)

// AuthGateway delega login y registro en POST {base}/auth/login y
// {base}/auth/register, adoptando el AuthResponse {user, token} del backend.
type AuthGateway struct {
	client *Client
}

// NewAuthGateway construye el gateway de auth remoto.
func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

// authResponse cuerpo {user, token} del backend.
type authResponse struct {
	User  entity.User `json:"user"`
	Token string      `json:"token"`
}

// Login delega la verificación de credenciales.
func (g *AuthGateway) Login(ctx context.Context, in dto.LoginRequest) (*entity.Session, error) {
	var out authResponse
	if err := g.client.doJSON(ctx, http.MethodPost, "/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &entity.Session{User: out.User, Token: out.Token}, nil
}

// Register delega el alta y adopta la sesión resultante.
func (g *AuthGateway) Register(ctx context.Context, in dto.RegisterRequest) (*entity.Session, error) {
	var out authResponse
	if err := g.client.doJSON(ctx, http.MethodPost, "/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &entity.Session{User: out.User, Token: out.Token}, nil
}
