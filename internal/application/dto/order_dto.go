package dto

import "github.com/tu-usuario/admin-revendedores/internal/domain/entity"

// OrderListParams filtros de listado de pedidos.
type OrderListParams struct {
	PageRequest
	Status   entity.OrderStatus `query:"status"`
	Reseller string             `query:"reseller"`
}

// UpdateOrderStatusRequest cambio de estado de un pedido.
type UpdateOrderStatusRequest struct {
	Status entity.OrderStatus `json:"status"`
}

// UpdateOrderItemsRequest reemplazo de las líneas de un pedido aún editable.
type UpdateOrderItemsRequest struct {
	Items []entity.OrderItem `json:"items"`
}
