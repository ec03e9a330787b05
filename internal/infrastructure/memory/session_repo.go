package memory

import (
	"encoding/json"
	"fmt"

	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
	"github.com/cafeteriasoma/soma-api/internal/domain/repository"
	"github.com/cafeteriasoma/soma-api/internal/infrastructure/localstore"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo sesión activa espejada a las claves currentUser y token del
// snapshot local. Hay sesión solo cuando ambas claves están presentes.
type SessionRepo struct {
	store localstore.Store
}

// NewSessionRepository construye el repo sobre el snapshot indicado.
func NewSessionRepository(store localstore.Store) *SessionRepo {
	return &SessionRepo{store: store}
}

// Load devuelve la sesión activa o nil cuando no la hay.
func (r *SessionRepo) Load() (*entity.Session, error) {
	rawUser, err := r.store.Get(localstore.KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("session: leer currentUser: %w", err)
	}
	rawToken, err := r.store.Get(localstore.KeyToken)
	if err != nil {
		return nil, fmt.Errorf("session: leer token: %w", err)
	}
	if rawUser == nil || rawToken == nil {
		return nil, nil
	}

	var user entity.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		return nil, nil
	}
	var token string
	if err := json.Unmarshal(rawToken, &token); err != nil {
		return nil, nil
	}
	return &entity.Session{User: user, Token: token}, nil
}

// Save persiste usuario y token.
func (r *SessionRepo) Save(session entity.Session) error {
	rawUser, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("session: serializar usuario: %w", err)
	}
	rawToken, err := json.Marshal(session.Token)
	if err != nil {
		return fmt.Errorf("session: serializar token: %w", err)
	}
	if err := r.store.Set(localstore.KeyCurrentUser, rawUser); err != nil {
		return err
	}
	return r.store.Set(localstore.KeyToken, rawToken)
}

// Clear elimina ambas claves de sesión.
func (r *SessionRepo) Clear() error {
	if err := r.store.Delete(localstore.KeyCurrentUser); err != nil {
		return err
	}
	return r.store.Delete(localstore.KeyToken)
}
