package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado del ciclo de vida de un pedido.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderPlaced     OrderStatus = "placed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
	OrderExpired    OrderStatus = "expired"
)

// Valid indica si el estado pertenece a la enumeración.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPlaced, OrderProcessing,
		OrderShipped, OrderDelivered, OrderCancelled, OrderExpired:
		return true
	}
	return false
}

// ItemsEditable los ítems solo pueden modificarse mientras el pedido no ha
// salido de bodega. Esta regla se evalúa en el cliente antes de cualquier
// llamada de red.
func (s OrderStatus) ItemsEditable() bool {
	switch s {
	case OrderPending, OrderPlaced, OrderProcessing:
		return true
	}
	return false
}

// OrderItem línea de pedido. PriceAtSale congela el precio del tramo del
// revendedor al momento de la venta.
type OrderItem struct {
	ProductID   string          `json:"productRef"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	PriceAtSale decimal.Decimal `json:"priceAtSale"`
}

// CustomerDetails datos de contacto y envío del cliente final.
type CustomerDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Notes   string `json:"notes,omitempty"`
}

// Order pedido de un revendedor.
type Order struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	Status      OrderStatus     `json:"status"`
	Items       []OrderItem     `json:"items"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	Customer    CustomerDetails `json:"customerDetails"`
	ResellerID  string          `json:"resellerId"`
	CreatedAt   time.Time       `json:"createdAt"`
}
