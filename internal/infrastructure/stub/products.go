package stub

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/admin-revendedores/internal/application/dto"
	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
)

func (s *Server) listProducts(c *fiber.Ctx) error {
	search := c.Query("search")
	onlyActive := c.Query("active") == "true"

	s.mu.Lock()
	filtered := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		if onlyActive && !p.Active {
			continue
		}
		if !matches(p.Name, search) && !matches(p.Code, search) {
			continue
		}
		filtered = append(filtered, p)
	}
	s.mu.Unlock()

	items, page := paginate(filtered, c.QueryInt("page"), c.QueryInt("pageSize"))
	return listJSON(c, items, page)
}

func (s *Server) getProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return c.JSON(p)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
}

// createProduct acepta JSON o multipart (alta con imagen). En multipart los
// precios por tramo llegan como JSON en el campo resellerPrices y la imagen
// solo se registra por nombre: el stub no guarda binarios.
func (s *Server) createProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if strings.HasPrefix(c.Get("Content-Type"), "multipart/form-data") {
		in.Code = c.FormValue("code")
		in.Name = c.FormValue("name")
		in.Description = c.FormValue("description")
		in.CountInStock, _ = strconv.Atoi(c.FormValue("countInStock"))
		in.Active = c.FormValue("active") == "true"
		if raw := c.FormValue("resellerPrices"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &in.Prices); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "resellerPrices inválido"})
			}
		}
	} else if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	if in.Code == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code y name son requeridos"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.Code == in.Code {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código de producto ya existe"})
		}
	}

	now := time.Now()
	prod := entity.Product{
		ID:           uuid.New().String(),
		Code:         in.Code,
		Name:         in.Name,
		Description:  in.Description,
		Prices:       in.Prices,
		CountInStock: in.CountInStock,
		Active:       in.Active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if prod.Prices == nil {
		prod.Prices = map[entity.ResellerCategory]decimal.Decimal{}
	}
	if file, err := c.FormFile("image"); err == nil && file != nil {
		prod.Images = append(prod.Images, "/uploads/"+file.Filename)
	}
	s.products = append(s.products, prod)
	return c.Status(fiber.StatusCreated).JSON(prod)
}

func (s *Server) updateProduct(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	id := c.Params("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.Prices != nil {
			p.Prices = in.Prices
		}
		if in.CountInStock != nil {
			p.CountInStock = *in.CountInStock
		}
		if in.Active != nil {
			p.Active = *in.Active
		}
		p.UpdatedAt = time.Now()
		return c.JSON(*p)
	}
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
}

func (s *Server) deleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return c.SendStatus(fiber.StatusNoContent)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
}
