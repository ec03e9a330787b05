// Package events implementa la notificación de cambios de los stores:
// cada mutación publica un evento y los suscriptores (p.ej. clientes
// WebSocket) lo reciben para re-renderizar.
package events

import "sync"

// Tipos de evento publicados por los stores.
const (
	TypeCreated = "created"
	TypeUpdated = "updated"
	TypeDeleted = "deleted"
)

// Entidades sobre las que se publican eventos.
const (
	EntityProduct   = "product"
	EntityPromotion = "promotion"
	EntitySale      = "sale"
	EntityCart      = "cart"
	EntitySession   = "session"
)

// Event cambio de estado de un store.
type Event struct {
	Type    string `json:"type"`
	Entity  string `json:"entity"`
	Payload any    `json:"payload,omitempty"`
}

// Bus difusión de eventos a suscriptores. La publicación nunca bloquea:
// un suscriptor con el buffer lleno pierde el evento (los clientes
// recargan el estado completo al reconectar).
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[int]chan Event
}

// NewBus construye el bus.
func NewBus() *Bus {
	return &Bus{subs: map[int]chan Event{}}
}

// Subscribe registra un suscriptor y devuelve su canal junto con la función
// para darse de baja.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	ch := make(chan Event, 16)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish difunde el evento a todos los suscriptores.
func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
