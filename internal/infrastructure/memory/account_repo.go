package memory

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
	"github.com/cafeteriasoma/soma-api/internal/domain/repository"
	"github.com/cafeteriasoma/soma-api/internal/infrastructure/localstore"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo lista de usuarios registrados espejada a la clave users del
// snapshot local. Cada mutación reescribe la lista completa.
type AccountRepo struct {
	mu    sync.Mutex
	store localstore.Store
}

// NewAccountRepository construye el repo sobre el snapshot indicado.
func NewAccountRepository(store localstore.Store) *AccountRepo {
	return &AccountRepo{store: store}
}

// List devuelve la lista persistida (vacía si la clave no existe o está corrupta).
func (r *AccountRepo) List() ([]entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// FindByLogin busca por email de la cuenta o username del usuario asociado.
func (r *AccountRepo) FindByLogin(login string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	accounts, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].Email == login || accounts[i].User.Username == login {
			return &accounts[i], nil
		}
	}
	return nil, nil
}

// Append agrega la cuenta y persiste la lista completa.
func (r *AccountRepo) Append(account entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	accounts, err := r.load()
	if err != nil {
		return err
	}
	return r.save(append(accounts, account))
}

// ReplaceAll sobreescribe la lista completa.
func (r *AccountRepo) ReplaceAll(accounts []entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(accounts)
}

func (r *AccountRepo) load() ([]entity.Account, error) {
	raw, err := r.store.Get(localstore.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("accounts: leer snapshot: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	var accounts []entity.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		// Lista corrupta: se comporta como vacía, igual que el arranque
		// tolerante del snapshot.
		return nil, nil
	}
	return accounts, nil
}

func (r *AccountRepo) save(accounts []entity.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("accounts: serializar: %w", err)
	}
	return r.store.Set(localstore.KeyUsers, raw)
}
