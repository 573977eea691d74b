package stub

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tu-usuario/admin-revendedores/internal/application/dto"
	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
)

// newResellerCode emite un código corto estilo "RV-48213". El backend real
// garantiza unicidad; para el stub basta la aleatoriedad.
func newResellerCode() string {
	return fmt.Sprintf("RV-%05d", rand.Intn(100000))
}

func (s *Server) listResellers(c *fiber.Ctx) error {
	category := entity.ResellerCategory(c.Query("category"))
	search := c.Query("search")

	s.mu.Lock()
	filtered := make([]entity.Reseller, 0, len(s.resellers))
	for _, r := range s.resellers {
		if category != "" && r.Category != category {
			continue
		}
		if !matches(r.Name, search) && !matches(r.Email, search) {
			continue
		}
		filtered = append(filtered, r)
	}
	s.mu.Unlock()

	items, page := paginate(filtered, c.QueryInt("page"), c.QueryInt("pageSize"))
	return listJSON(c, items, page)
}

func (s *Server) getReseller(c *fiber.Ctx) error {
	id := c.Params("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.resellers {
		if r.ID == id {
			return c.JSON(r)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "revendedor no encontrado"})
}

func (s *Server) createReseller(c *fiber.Ctx) error {
	var in dto.CreateResellerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y email son requeridos"})
	}
	if in.Category == "" || !in.Category.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "categoría de revendedor desconocida"})
	}

	r := entity.Reseller{
		ID:           uuid.New().String(),
		ResellerCode: newResellerCode(),
		Category:     in.Category,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		City:         in.City,
		Address:      in.Address,
		CreatedAt:    time.Now(),
	}

	s.mu.Lock()
	s.resellers = append(s.resellers, r)
	s.mu.Unlock()
	return c.Status(fiber.StatusCreated).JSON(r)
}

func (s *Server) updateReseller(c *fiber.Ctx) error {
	var in dto.UpdateResellerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	id := c.Params("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.resellers {
		if s.resellers[i].ID != id {
			continue
		}
		r := &s.resellers[i]
		if in.Name != nil {
			r.Name = *in.Name
		}
		if in.Phone != nil {
			r.Phone = *in.Phone
		}
		if in.City != nil {
			r.City = *in.City
		}
		if in.Address != nil {
			r.Address = *in.Address
		}
		if in.Category != nil {
			if !in.Category.Valid() {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "categoría de revendedor desconocida"})
			}
			r.Category = *in.Category
		}
		return c.JSON(*r)
	}
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "revendedor no encontrado"})
}

func (s *Server) deleteReseller(c *fiber.Ctx) error {
	id := c.Params("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.resellers {
		if s.resellers[i].ID == id {
			s.resellers = append(s.resellers[:i], s.resellers[i+1:]...)
			return c.SendStatus(fiber.StatusNoContent)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "revendedor no encontrado"})
}

// resetResellerCode reemplaza el código emitido; única vía para cambiarlo.
func (s *Server) resetResellerCode(c *fiber.Ctx) error {
	id := c.Params("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.resellers {
		if s.resellers[i].ID == id {
			next := newResellerCode()
			for next == s.resellers[i].ResellerCode {
				next = newResellerCode()
			}
			s.resellers[i].ResellerCode = next
			return c.JSON(s.resellers[i])
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "revendedor no encontrado"})
}
