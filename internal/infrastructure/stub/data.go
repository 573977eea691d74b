package stub

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
)

// seed carga cuentas y datos de demostración. Contraseñas de las cuentas:
// admin@demo.local/admin1234, editor@demo.local/editor1234,
// revendedor@demo.local/revende1234.
func (s *Server) seed() {
	add := func(name, email, password string, role entity.Role, cat entity.ResellerCategory) {
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		s.accounts[email] = &account{
			ID:       uuid.New().String(),
			Name:     name,
			Email:    email,
			Hash:     hash,
			Role:     role,
			Category: cat,
		}
	}
	add("Admin Demo", "admin@demo.local", "admin1234", entity.RoleAdministrador, "")
	add("Editor Demo", "editor@demo.local", "editor1234", entity.RoleEditor, "")
	add("Revendedor Demo", "revendedor@demo.local", "revende1234", entity.RoleRevendedor, entity.Cat2)

	price := func(base int64) map[entity.ResellerCategory]decimal.Decimal {
		prices := make(map[entity.ResellerCategory]decimal.Decimal, 5)
		cats := []entity.ResellerCategory{entity.Cat1, entity.Cat2, entity.Cat3, entity.Cat4, entity.Cat5}
		for i, c := range cats {
			// tramos decrecientes: cat1 paga más, cat5 menos
			prices[c] = decimal.NewFromInt(base - int64(i)*500)
		}
		return prices
	}

	now := time.Now()
	s.products = []entity.Product{
		{ID: uuid.New().String(), Code: "CAM-001", Name: "Cámara de seguridad WiFi", Prices: price(185900), CountInStock: 24, Active: true, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Code: "AUD-014", Name: "Audífonos inalámbricos", Prices: price(98500), CountInStock: 60, Active: true, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Code: "LAM-203", Name: "Lámpara de escritorio LED", Prices: price(45900), CountInStock: 0, Active: false, CreatedAt: now, UpdatedAt: now},
	}

	reseller := entity.Reseller{
		ID:           uuid.New().String(),
		ResellerCode: newResellerCode(),
		Category:     entity.Cat2,
		Name:         "Distribuciones García",
		Email:        "ventas@garcia.example",
		Phone:        "3001234567",
		City:         "Bogotá",
		CreatedAt:    now,
	}
	s.resellers = []entity.Reseller{reseller}

	item := entity.OrderItem{
		ProductID:   s.products[0].ID,
		Name:        s.products[0].Name,
		Quantity:    2,
		PriceAtSale: s.products[0].Prices[entity.Cat2],
	}
	s.orders = []entity.Order{
		{
			ID:          uuid.New().String(),
			OrderNumber: "PED-1001",
			Status:      entity.OrderPlaced,
			Items:       []entity.OrderItem{item},
			TotalPrice:  item.PriceAtSale.Mul(decimal.NewFromInt(2)),
			Customer:    entity.CustomerDetails{Name: "Cliente Final", Phone: "3109876543", City: "Medellín"},
			ResellerID:  reseller.ID,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			OrderNumber: "PED-1002",
			Status:      entity.OrderDelivered,
			Items:       []entity.OrderItem{item},
			TotalPrice:  item.PriceAtSale,
			Customer:    entity.CustomerDetails{Name: "Otro Cliente", Phone: "3155550000", City: "Cali"},
			ResellerID:  reseller.ID,
			CreatedAt:   now.Add(-72 * time.Hour),
		},
	}

	s.heroes = []entity.HeroSlide{
		{ID: uuid.New().String(), Title: "Nueva colección", Image: "/img/hero-1.jpg", LinkTo: "/products", Active: true, Order: 0},
		{ID: uuid.New().String(), Title: "Envíos a todo el país", Image: "/img/hero-2.jpg", LinkTo: "/shipping", Active: true, Order: 1},
	}
	s.ads = []entity.AdTile{
		{ID: uuid.New().String(), Title: "Descuentos cat5", Image: "/img/ad-1.jpg", LinkTo: "/promo", Active: true, Order: 0},
	}
}
