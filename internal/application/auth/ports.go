package auth

import (
	"context"

	"github.com/cafeteriasoma/soma-api/internal/application/dto"
	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
)

// RemoteGateway contrato del backend de autenticación remoto. Cuando está
// configurado, login y registro delegan y adoptan la sesión que responda.
type RemoteGateway interface {
	Login(ctx context.Context, in dto.LoginRequest) (*entity.Session, error)
	Register(ctx context.Context, in dto.RegisterRequest) (*entity.Session, error)
}
