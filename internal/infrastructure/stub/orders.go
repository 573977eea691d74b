package stub

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/admin-revendedores/internal/application/dto"
	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
)

func (s *Server) listOrders(c *fiber.Ctx) error {
	status := entity.OrderStatus(c.Query("status"))
	reseller := c.Query("reseller")

	s.mu.Lock()
	filtered := make([]entity.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if status != "" && o.Status != status {
			continue
		}
		if reseller != "" && o.ResellerID != reseller {
			continue
		}
		filtered = append(filtered, o)
	}
	s.mu.Unlock()

	items, page := paginate(filtered, c.QueryInt("page"), c.QueryInt("pageSize"))
	return listJSON(c, items, page)
}

func (s *Server) getOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return c.JSON(o)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
}

func (s *Server) updateOrderStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !in.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado de pedido desconocido"})
	}

	id := c.Params("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = in.Status
			return c.JSON(s.orders[i])
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
}

func (s *Server) updateOrderItems(c *fiber.Ctx) error {
	var in dto.UpdateOrderItemsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	id := c.Params("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if !s.orders[i].Status.ItemsEditable() {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ORDER_LOCKED", Message: "los ítems del pedido ya no son editables"})
		}
		s.orders[i].Items = in.Items
		total := decimal.Zero
		for _, it := range in.Items {
			total = total.Add(it.PriceAtSale.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		s.orders[i].TotalPrice = total
		return c.JSON(s.orders[i])
	}
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
}

func (s *Server) deleteOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return c.SendStatus(fiber.StatusNoContent)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
}
