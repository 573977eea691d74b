package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo. Code es inmutable después de la creación:
// el backend lo rechaza y el cliente ni siquiera lo envía en actualizaciones.
type Product struct {
	ID           string                               `json:"id"`
	Code         string                               `json:"code"`
	Name         string                               `json:"name"`
	Description  string                               `json:"description"`
	Prices       map[ResellerCategory]decimal.Decimal `json:"resellerPrices"`
	CountInStock int                                  `json:"countInStock"`
	Active       bool                                 `json:"active"`
	Images       []string                             `json:"images"`
	CreatedAt    time.Time                            `json:"createdAt"`
	UpdatedAt    time.Time                            `json:"updatedAt"`
}

// PriceFor devuelve el precio del tramo indicado (cero si no está definido).
func (p Product) PriceFor(cat ResellerCategory) decimal.Decimal {
	if price, ok := p.Prices[cat]; ok {
		return price
	}
	return decimal.Zero
}
