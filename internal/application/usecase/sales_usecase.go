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

// ReceiptGenerator puerto del generador de recibos imprimibles.
type ReceiptGenerator interface {
	Generate(sale *entity.Sale) ([]byte, error)
}

// SalesUseCase registro de ventas, agregados del dashboard y recibos.
type SalesUseCase struct {
	repo     repository.SaleRepository
	receipts ReceiptGenerator
	bus      *events.Bus
	now      func() time.Time
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(repo repository.SaleRepository, receipts ReceiptGenerator, bus *events.Bus) *SalesUseCase {
	return &SalesUseCase{repo: repo, receipts: receipts, bus: bus, now: time.Now}
}

// Receipt genera el PDF del recibo de la venta; ErrNotFound si no existe.
func (uc *SalesUseCase) Receipt(id string) ([]byte, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return uc.receipts.Generate(sale)
}

// Create registra una venta COMPLETADA al inicio del historial.
// El subtotal es la suma de los subtotales de ítem tal como vienen: el caller
// puede traer precios ya rebajados por promoción, así que no se recalculan
// desde unitPrice por cantidad. Discount ausente vale 0 y
// Total = Subtotal - Discount.
func (uc *SalesUseCase) Create(in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 || in.CustomerName == "" {
		return nil, domain.ErrInvalidInput
	}

	subtotal := decimal.Zero
	items := make([]entity.SaleItem, 0, len(in.Items))
	for _, it := range in.Items {
		subtotal = subtotal.Add(it.Subtotal)
		items = append(items, entity.SaleItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	discount := decimal.Zero
	if in.Discount != nil {
		discount = *in.Discount
	}

	sale := &entity.Sale{
		ID:           uuid.New().String(),
		CustomerName: in.CustomerName,
		Items:        items,
		Subtotal:     subtotal,
		Discount:     discount,
		Total:        subtotal.Sub(discount),
		Status:       entity.SaleCompleted,
		CreatedAt:    uc.now(),
	}
	if err := uc.repo.Insert(sale); err != nil {
		return nil, err
	}
	out := toSaleResponse(sale)
	uc.bus.Publish(events.Event{Type: events.TypeCreated, Entity: events.EntitySale, Payload: out})
	return &out, nil
}

// UpdateStatus cambia el estado de la venta a COMPLETADA, PENDIENTE o
// CANCELADA. Una venta cancelada es terminal: no vuelve a cambiar de estado.
func (uc *SalesUseCase) UpdateStatus(id, status string) (*dto.SaleResponse, error) {
	if !entity.ValidSaleStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale.Status == entity.SaleCancelled && status != entity.SaleCancelled {
		return nil, domain.ErrInvalidInput
	}
	sale.Status = status
	if err := uc.repo.Update(sale); err != nil {
		return nil, err
	}
	out := toSaleResponse(sale)
	uc.bus.Publish(events.Event{Type: events.TypeUpdated, Entity: events.EntitySale, Payload: out})
	return &out, nil
}

// List devuelve el historial completo, más reciente primero.
func (uc *SalesUseCase) List() (*dto.SaleListResponse, error) {
	sales, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toSaleList(sales), nil
}

// GetByID devuelve la venta o ErrNotFound.
func (uc *SalesUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	out := toSaleResponse(sale)
	return &out, nil
}

// Stats reduce el historial: conteo, ingresos, unidades vendidas, ticket
// promedio (0 sin ventas) y descuento acumulado.
func (uc *SalesUseCase) Stats() (*dto.SalesStatsResponse, error) {
	sales, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	stats := dto.SalesStatsResponse{
		TotalRevenue:  decimal.Zero,
		AverageTicket: decimal.Zero,
		TotalDiscount: decimal.Zero,
	}
	for _, s := range sales {
		stats.TotalSales++
		stats.TotalRevenue = stats.TotalRevenue.Add(s.Total)
		stats.ProductsSold += s.UnitsSold()
		stats.TotalDiscount = stats.TotalDiscount.Add(s.Discount)
	}
	if stats.TotalSales > 0 {
		stats.AverageTicket = stats.TotalRevenue.Div(decimal.NewFromInt(int64(stats.TotalSales)))
	}
	return &stats, nil
}

// ByDateRange filtra el historial por CreatedAt dentro de [start, end],
// extremos inclusivos.
func (uc *SalesUseCase) ByDateRange(start, end time.Time) (*dto.SaleListResponse, error) {
	sales, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	filtered := sales[:0:0]
	for _, s := range sales {
		if !s.CreatedAt.Before(start) && !s.CreatedAt.After(end) {
			filtered = append(filtered, s)
		}
	}
	return toSaleList(filtered), nil
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	items := make([]dto.SaleItemDTO, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemDTO{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return dto.SaleResponse{
		ID:           s.ID,
		CustomerName: s.CustomerName,
		Items:        items,
		Subtotal:     s.Subtotal,
		Discount:     s.Discount,
		Total:        s.Total,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
	}
}

func toSaleList(sales []*entity.Sale) *dto.SaleListResponse {
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, toSaleResponse(s))
	}
	return &dto.SaleListResponse{Items: items, Total: len(items)}
}
