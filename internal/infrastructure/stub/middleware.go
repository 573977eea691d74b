package stub

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/admin-revendedores/internal/application/dto"
	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
	"github.com/tu-usuario/admin-revendedores/pkg/jwt"
)

// Locals keys para identidad en Fiber.
const (
	localUserID = "user_id"
	localRole   = "role"
)

// requireAuth valida el Bearer Token JWT y deja user_id y role en c.Locals.
func (s *Server) requireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, role, _, err := jwt.Parse(s.cfg.JWTSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if !entity.Role(role).Valid() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token sin rol"})
		}
		c.Locals(localUserID, userID)
		c.Locals(localRole, role)
		return c.Next()
	}
}

// requireRole autoriza el acceso a los roles indicados. Debe usarse DESPUÉS
// de requireAuth.
func (s *Server) requireRole(allowed ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := getRole(c)
		for _, r := range allowed {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "su rol no permite esta operación"})
	}
}

func getRole(c *fiber.Ctx) entity.Role {
	v := c.Locals(localRole)
	if v == nil {
		return ""
	}
	sRole, _ := v.(string)
	return entity.Role(sRole)
}
