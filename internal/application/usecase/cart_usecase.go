package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/cafeteriasoma/soma-api/internal/application/dto"
	"github.com/cafeteriasoma/soma-api/internal/application/events"
	"github.com/cafeteriasoma/soma-api/internal/domain"
	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
	"github.com/cafeteriasoma/soma-api/internal/domain/repository"
)

// CartUseCase carrito de compras. Cada mutación persiste la lista completa
// al snapshot antes de notificar; los derivados (conteo y total) se
// recalculan en cada lectura, nunca se cachean.
type CartUseCase struct {
	repo repository.CartRepository
	bus  *events.Bus
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(repo repository.CartRepository, bus *events.Bus) *CartUseCase {
	return &CartUseCase{repo: repo, bus: bus}
}

// Add agrega el ítem; si ya hay una línea con el mismo productId suma las
// cantidades (sin tope y sin validar stock contra el catálogo).
func (uc *CartUseCase) Add(in dto.AddCartItemRequest) (*dto.CartResponse, error) {
	if in.ProductID == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.repo.Load()
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range items {
		if items[i].ProductID == in.ProductID {
			items[i].Quantity += in.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, entity.CartItem{
			ProductID: in.ProductID,
			Name:      in.Name,
			Price:     in.Price,
			Quantity:  in.Quantity,
			Image:     in.Image,
		})
	}
	return uc.persist(items)
}

// Remove elimina la línea del producto (sin error si no estaba).
func (uc *CartUseCase) Remove(productID string) (*dto.CartResponse, error) {
	items, err := uc.repo.Load()
	if err != nil {
		return nil, err
	}
	kept := items[:0:0]
	for _, it := range items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	return uc.persist(kept)
}

// Clear vacía el carrito.
func (uc *CartUseCase) Clear() (*dto.CartResponse, error) {
	return uc.persist(nil)
}

// View devuelve el carrito con sus derivados recalculados.
func (uc *CartUseCase) View() (*dto.CartResponse, error) {
	items, err := uc.repo.Load()
	if err != nil {
		return nil, err
	}
	return toCartResponse(items), nil
}

// persist guarda la lista completa y después notifica a los suscriptores.
func (uc *CartUseCase) persist(items []entity.CartItem) (*dto.CartResponse, error) {
	if err := uc.repo.Save(items); err != nil {
		return nil, err
	}
	out := toCartResponse(items)
	uc.bus.Publish(events.Event{Type: events.TypeUpdated, Entity: events.EntityCart, Payload: out})
	return out, nil
}

func toCartResponse(items []entity.CartItem) *dto.CartResponse {
	out := &dto.CartResponse{
		Items: make([]dto.CartItemResponse, 0, len(items)),
		Total: decimal.Zero,
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.CartItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
		out.Count += it.Quantity
		out.Total = out.Total.Add(it.LineTotal())
	}
	return out
}
