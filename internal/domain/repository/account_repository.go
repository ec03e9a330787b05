package repository

import "github.com/cafeteriasoma/soma-api/internal/domain/entity"

// AccountRepository puerto sobre la lista persistida de usuarios registrados
// (clave users del snapshot local). Solo la usa la ruta mock de credenciales.
type AccountRepository interface {
	List() ([]entity.Account, error)
	// FindByLogin busca por email o username del usuario asociado.
	FindByLogin(login string) (*entity.Account, error)
	Append(account entity.Account) error
	// ReplaceAll sobreescribe la lista completa (migraciones de arranque).
	ReplaceAll(accounts []entity.Account) error
}

// SessionRepository puerto sobre la sesión persistida
// (claves currentUser y token del snapshot local).
type SessionRepository interface {
	// Load devuelve nil sin error cuando no hay sesión activa.
	Load() (*entity.Session, error)
	Save(session entity.Session) error
	Clear() error
}
