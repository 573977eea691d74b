package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto. Code solo existe aquí:
// tras la creación es inmutable y no aparece en el DTO de actualización.
type CreateProductRequest struct {
	Code         string                                      `json:"code"`
	Name         string                                      `json:"name"`
	Description  string                                      `json:"description"`
	Prices       map[entity.ResellerCategory]decimal.Decimal `json:"resellerPrices"`
	CountInStock int                                         `json:"countInStock"`
	Active       bool                                        `json:"active"`
}

// UpdateProductRequest actualización parcial: los campos nil no se tocan.
type UpdateProductRequest struct {
	Name         *string                                     `json:"name,omitempty"`
	Description  *string                                     `json:"description,omitempty"`
	Prices       map[entity.ResellerCategory]decimal.Decimal `json:"resellerPrices,omitempty"`
	CountInStock *int                                        `json:"countInStock,omitempty"`
	Active       *bool                                       `json:"active,omitempty"`
}

// ProductListParams filtros de listado de productos.
type ProductListParams struct {
	PageRequest
	Search     string `query:"search"`
	OnlyActive bool   `query:"active"`
}
