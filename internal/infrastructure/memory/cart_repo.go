package memory

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
	"github.com/cafeteriasoma/soma-api/internal/domain/repository"
	"github.com/cafeteriasoma/soma-api/internal/infrastructure/localstore"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo carrito espejado a la clave cart_items del snapshot local.
type CartRepo struct {
	mu    sync.Mutex
	store localstore.Store
}

// NewCartRepository construye el repo sobre el snapshot indicado.
func NewCartRepository(store localstore.Store) *CartRepo {
	return &CartRepo{store: store}
}

// Load devuelve la lista persistida (vacía si la clave no existe o está corrupta).
func (r *CartRepo) Load() ([]entity.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, err := r.store.Get(localstore.KeyCartItems)
	if err != nil {
		return nil, fmt.Errorf("cart: leer snapshot: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	var items []entity.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, nil
	}
	return items, nil
}

// Save persiste la lista completa.
func (r *CartRepo) Save(items []entity.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if items == nil {
		items = []entity.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cart: serializar: %w", err)
	}
	return r.store.Set(localstore.KeyCartItems, raw)
}
