package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cafeteriasoma/soma-api/internal/application/dto"
	"github.com/cafeteriasoma/soma-api/internal/application/events"
	"github.com/cafeteriasoma/soma-api/internal/domain"
	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
	"github.com/cafeteriasoma/soma-api/internal/domain/repository"
)

// PromotionUseCase CRUD de promociones y consulta de descuentos vigentes.
// now es inyectable para poder fijar el reloj en tests.
type PromotionUseCase struct {
	repo repository.PromotionRepository
	bus  *events.Bus
	now  func() time.Time
}

// NewPromotionUseCase construye el caso de uso.
func NewPromotionUseCase(repo repository.PromotionRepository, bus *events.Bus) *PromotionUseCase {
	return &PromotionUseCase{repo: repo, bus: bus, now: time.Now}
}

// List devuelve todas las promociones.
func (uc *PromotionUseCase) List() ([]dto.PromotionResponse, error) {
	promotions, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toPromotionList(promotions), nil
}

// GetByID devuelve la promoción o ErrNotFound.
func (uc *PromotionUseCase) GetByID(id string) (*dto.PromotionResponse, error) {
	promotion, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	out := toPromotionResponse(promotion)
	return &out, nil
}

// Create da de alta una promoción activa.
func (uc *PromotionUseCase) Create(in dto.CreatePromotionRequest) (*dto.PromotionResponse, error) {
	if in.EndDate.Before(in.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	promotion := &entity.Promotion{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		Description:        in.Description,
		DiscountPercentage: in.DiscountPercentage,
		StartDate:          in.StartDate,
		EndDate:            in.EndDate,
		ProductIDs:         in.ProductIDs,
		IsActive:           true,
		CreatedAt:          uc.now(),
	}
	if err := uc.repo.Create(promotion); err != nil {
		return nil, err
	}
	out := toPromotionResponse(promotion)
	uc.bus.Publish(events.Event{Type: events.TypeCreated, Entity: events.EntityPromotion, Payload: out})
	return &out, nil
}

// Update aplica una actualización parcial; ErrNotFound si el id no existe.
func (uc *PromotionUseCase) Update(id string, in dto.UpdatePromotionRequest) (*dto.PromotionResponse, error) {
	promotion, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		promotion.Name = *in.Name
	}
	if in.Description != nil {
		promotion.Description = *in.Description
	}
	if in.DiscountPercentage != nil {
		promotion.DiscountPercentage = *in.DiscountPercentage
	}
	if in.StartDate != nil {
		promotion.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		promotion.EndDate = *in.EndDate
	}
	if in.ProductIDs != nil {
		promotion.ProductIDs = in.ProductIDs
	}
	if promotion.EndDate.Before(promotion.StartDate) {
		return nil, domain.ErrInvalidInput
	}

	if err := uc.repo.Update(promotion); err != nil {
		return nil, err
	}
	out := toPromotionResponse(promotion)
	uc.bus.Publish(events.Event{Type: events.TypeUpdated, Entity: events.EntityPromotion, Payload: out})
	return &out, nil
}

// Delete elimina la promoción; ErrNotFound si no existe.
func (uc *PromotionUseCase) Delete(id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.bus.Publish(events.Event{Type: events.TypeDeleted, Entity: events.EntityPromotion, Payload: id})
	return nil
}

// ToggleActive invierte el estado activo; ErrNotFound si no existe.
func (uc *PromotionUseCase) ToggleActive(id string) (*dto.PromotionResponse, error) {
	promotion, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	promotion.IsActive = !promotion.IsActive
	if err := uc.repo.Update(promotion); err != nil {
		return nil, err
	}
	out := toPromotionResponse(promotion)
	uc.bus.Publish(events.Event{Type: events.TypeUpdated, Entity: events.EntityPromotion, Payload: out})
	return &out, nil
}

// ListActive devuelve las promociones vigentes: activas y con el instante
// actual dentro de [StartDate, EndDate].
func (uc *PromotionUseCase) ListActive() ([]dto.PromotionResponse, error) {
	promotions, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	now := uc.now()
	active := promotions[:0:0]
	for _, p := range promotions {
		if p.ValidAt(now) {
			active = append(active, p)
		}
	}
	return toPromotionList(active), nil
}

// DiscountForProduct devuelve el porcentaje aplicable al producto. Cuando
// varias promociones vigentes lo cubren gana el mayor descuento; 0 si
// ninguna aplica.
func (uc *PromotionUseCase) DiscountForProduct(productID string) (decimal.Decimal, error) {
	promotions, err := uc.repo.List()
	if err != nil {
		return decimal.Zero, err
	}
	now := uc.now()
	best := decimal.Zero
	for _, p := range promotions {
		if p.ValidAt(now) && p.AppliesTo(productID) && p.DiscountPercentage.GreaterThan(best) {
			best = p.DiscountPercentage
		}
	}
	return best, nil
}

func toPromotionResponse(p *entity.Promotion) dto.PromotionResponse {
	return dto.PromotionResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		DiscountPercentage: p.DiscountPercentage,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		ProductIDs:         p.ProductIDs,
		IsActive:           p.IsActive,
		CreatedAt:          p.CreatedAt,
	}
}

func toPromotionList(promotions []*entity.Promotion) []dto.PromotionResponse {
	items := make([]dto.PromotionResponse, 0, len(promotions))
	for _, p := range promotions {
		items = append(items, toPromotionResponse(p))
	}
	return items
}
