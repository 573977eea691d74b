package entity

import "time"

// Reseller cuenta de revendedor. ResellerCode lo emite el servidor y solo
// cambia mediante la operación explícita de reinicio de código.
type Reseller struct {
	ID           string           `json:"id"`
	ResellerCode string           `json:"resellerCode"`
	Category     ResellerCategory `json:"resellerCategory"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	City         string           `json:"city"`
	Address      string           `json:"address"`
	CreatedAt    time.Time        `json:"createdAt"`
}
