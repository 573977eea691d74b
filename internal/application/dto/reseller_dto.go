package dto

import "github.com/tu-usuario/admin-revendedores/internal/domain/entity"

// CreateResellerRequest alta de revendedor. El código de revendedor no se
// envía: lo emite el servidor.
type CreateResellerRequest struct {
	Name     string                  `json:"name"`
	Email    string                  `json:"email"`
	Phone    string                  `json:"phone"`
	City     string                  `json:"city"`
	Address  string                  `json:"address"`
	Category entity.ResellerCategory `json:"resellerCategory"`
}

// UpdateResellerRequest actualización parcial de un revendedor.
type UpdateResellerRequest struct {
	Name     *string                  `json:"name,omitempty"`
	Phone    *string                  `json:"phone,omitempty"`
	City     *string                  `json:"city,omitempty"`
	Address  *string                  `json:"address,omitempty"`
	Category *entity.ResellerCategory `json:"resellerCategory,omitempty"`
}

// ResellerListParams filtros de listado de revendedores.
type ResellerListParams struct {
	PageRequest
	Category entity.ResellerCategory `query:"category"`
	Search   string                  `query:"search"`
}
