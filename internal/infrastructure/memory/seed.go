// Package memory implementa los puertos de persistencia sobre colecciones
// en memoria, con los datos mock iniciales del modo sin backend.
package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
)

// seedStamp fecha de alta de los datos mock.
var seedStamp = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// SeedProducts catálogo inicial de la cafetería.
func SeedProducts() []*entity.Product {
	rows := []struct {
		id, name, description, category, price, image string
		stock                                         int
	}{
		{"1", "Espresso", "Café espresso italiano tradicional", entity.CategoryCafeCaliente, "3.50", "assets/images/espresso.svg", 100},
		{"2", "Cappuccino", "Espresso con leche vaporizada y espuma", entity.CategoryCafeCaliente, "4.50", "assets/images/cappuccino.svg", 100},
		{"3", "Latte", "Café con leche y arte latte", entity.CategoryCafeCaliente, "4.75", "assets/images/latte.svg", 100},
		{"4", "Americano", "Espresso diluido con agua caliente", entity.CategoryCafeCaliente, "3.75", "assets/images/americano.svg", 100},
		{"5", "Té Verde", "Té verde premium japonés", entity.CategoryBebidasCaliente, "3.25", "assets/images/te-verde.svg", 80},
		{"6", "Té Negro", "Té negro inglés tradicional", entity.CategoryBebidasCaliente, "3.00", "assets/images/te-negro.svg", 80},
	}

	products := make([]*entity.Product, 0, len(rows))
	for _, r := range rows {
		products = append(products, &entity.Product{
			ID:          r.id,
			Name:        r.name,
			Description: r.description,
			Category:    r.category,
			Price:       price(r.price),
			Stock:       r.stock,
			Image:       r.image,
			IsActive:    true,
			CreatedAt:   seedStamp,
			UpdatedAt:   seedStamp,
		})
	}
	return products
}

// SeedPromotions promociones iniciales.
func SeedPromotions() []*entity.Promotion {
	return []*entity.Promotion{
		{
			ID:                 "1",
			Name:               "Descuento Cafés Calientes",
			Description:        "20% de descuento en todos los cafés",
			DiscountPercentage: price("20"),
			StartDate:          time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC),
			EndDate:            time.Date(2024, 10, 30, 0, 0, 0, 0, time.UTC),
			ProductIDs:         []string{"1", "2", "3", "4"},
			IsActive:           true,
			CreatedAt:          time.Date(2024, 9, 25, 0, 0, 0, 0, time.UTC),
		},
	}
}

// SeedSales historial de ventas inicial (más reciente primero).
func SeedSales() []*entity.Sale {
	return []*entity.Sale{
		{
			ID:           "3",
			CustomerName: "Carlos López",
			Items: []entity.SaleItem{
				{ProductID: "3", ProductName: "Latte", Quantity: 2, UnitPrice: price("4.75"), Subtotal: price("9.50")},
				{ProductID: "5", ProductName: "Té Verde", Quantity: 1, UnitPrice: price("3.25"), Subtotal: price("3.25")},
			},
			Subtotal:  price("12.75"),
			Discount:  price("1.90"),
			Total:     price("11.20"),
			Status:    entity.SaleCompleted,
			CreatedAt: time.Date(2024, 10, 17, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:           "1",
			CustomerName: "Juan Pérez",
			Items: []entity.SaleItem{
				{ProductID: "1", ProductName: "Espresso", Quantity: 2, UnitPrice: price("3.50"), Subtotal: price("7.00")},
				{ProductID: "2", ProductName: "Cappuccino", Quantity: 2, UnitPrice: price("4.50"), Subtotal: price("9.00")},
			},
			Subtotal:  price("16.00"),
			Discount:  price("3.20"),
			Total:     price("14.40"),
			Status:    entity.SaleCompleted,
			CreatedAt: time.Date(2024, 10, 15, 10, 30, 0, 0, time.UTC),
		},
	}
}
