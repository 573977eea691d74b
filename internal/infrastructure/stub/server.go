// Package stub implementa en memoria el contrato REST del backend del panel.
// Sirve para desarrollar y probar el cliente sin el backend productivo:
// emite JWT reales, aplica las mismas reglas de rol y pagina igual que el
// servicio real. No persiste nada entre ejecuciones.
package stub

import (
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/admin-revendedores/internal/application/dto"
	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
)

// Config parámetros del stub.
type Config struct {
	JWTSecret  string
	JWTIssuer  string
	Expiration int // minutos
}

type account struct {
	ID       string
	Name     string
	Email    string
	Hash     []byte
	Role     entity.Role
	Category entity.ResellerCategory
}

// Server backend de desarrollo en memoria.
type Server struct {
	cfg Config
	app *fiber.App

	mu          sync.Mutex
	accounts    map[string]*account // por email
	resetTokens map[string]string   // token de recuperación → email
	products    []entity.Product
	orders      []entity.Order
	resellers   []entity.Reseller
	heroes      []entity.HeroSlide
	videos      []entity.VideoSlide
	ads         []entity.AdTile
}

// New construye el stub con datos de demostración sembrados.
func New(cfg Config) *Server {
	s := &Server{
		cfg:         cfg,
		accounts:    make(map[string]*account),
		resetTokens: make(map[string]string),
	}
	s.seed()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	s.routes(app)
	s.app = app
	return s
}

// App expone la aplicación Fiber (para Listen en cmd/stubapi).
func (s *Server) App() *fiber.App { return s.app }

// Handler adapta el stub a net/http; los tests lo montan bajo httptest para
// que el cliente real le hable por un listener de verdad.
func (s *Server) Handler() http.Handler {
	return adaptor.FiberApp(s.app)
}

func (s *Server) routes(app *fiber.App) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", s.register)
	authGroup.Post("/login", s.login)
	authGroup.Post("/forgot-password", s.forgotPassword)
	authGroup.Post("/reset-password", s.resetPassword)

	// Revendedores (protegido; cuelga de /api/auth como en el backend real)
	resellers := authGroup.Group("/resellers", s.requireAuth())
	resellers.Get("/", s.listResellers)
	resellers.Get("/:id", s.getReseller)
	resellers.Post("/", s.requireRole(entity.RoleAdministrador, entity.RoleEditor), s.createReseller)
	resellers.Put("/:id", s.requireRole(entity.RoleAdministrador, entity.RoleEditor), s.updateReseller)
	resellers.Delete("/:id", s.requireRole(entity.RoleAdministrador), s.deleteReseller)
	resellers.Post("/:id/reset-code", s.requireRole(entity.RoleAdministrador), s.resetResellerCode)

	// Productos (protegido)
	products := api.Group("/products", s.requireAuth())
	products.Get("/", s.listProducts)
	products.Get("/:id", s.getProduct)
	products.Post("/", s.requireRole(entity.RoleAdministrador, entity.RoleEditor), s.createProduct)
	products.Put("/:id", s.requireRole(entity.RoleAdministrador, entity.RoleEditor), s.updateProduct)
	products.Delete("/:id", s.requireRole(entity.RoleAdministrador), s.deleteProduct)

	// Pedidos (protegido)
	orders := api.Group("/orders", s.requireAuth())
	orders.Get("/", s.listOrders)
	orders.Get("/:id", s.getOrder)
	orders.Put("/:id/status", s.requireRole(entity.RoleAdministrador, entity.RoleEditor), s.updateOrderStatus)
	orders.Put("/:id/items", s.requireRole(entity.RoleAdministrador, entity.RoleEditor), s.updateOrderItems)
	orders.Delete("/:id", s.requireRole(entity.RoleAdministrador), s.deleteOrder)

	// Contenido promocional: lectura pública + administración protegida
	promoRoutes(api.Group("/promos/hero"), heroSet(s))
	promoRoutes(api.Group("/promos/videos"), videoSet(s))
	promoRoutes(api.Group("/promos/ads"), adSet(s))
}

// paginate corta la porción pedida y arma los metadatos de página.
func paginate[T any](items []T, page, pageSize int) ([]T, dto.PageResponse) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	total := len(items)
	pageCount := (total + pageSize - 1) / pageSize
	if pageCount == 0 {
		pageCount = 1
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, dto.PageResponse{
		Page:       page,
		PageCount:  pageCount,
		TotalCount: total,
		PageSize:   pageSize,
	}
}

func listJSON[T any](c *fiber.Ctx, items []T, page dto.PageResponse) error {
	return c.JSON(fiber.Map{"items": items, "page": page})
}
