package stub

import (
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tu-usuario/admin-revendedores/internal/application/dto"
	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
)

// promoSet adapta una de las tres colecciones promocionales al juego de
// rutas común (listado, lectura pública, CRUD y reordenamiento).
type promoSet[T any] struct {
	s        *Server
	items    *[]T
	getID    func(T) string
	setID    func(*T, string)
	getOrder func(T) int
	setOrder func(*T, int)
	isActive func(T) bool
	decode   func(c *fiber.Ctx) (T, error)
}

func heroSet(s *Server) promoSet[entity.HeroSlide] {
	return promoSet[entity.HeroSlide]{
		s:        s,
		items:    &s.heroes,
		getID:    func(h entity.HeroSlide) string { return h.ID },
		setID:    func(h *entity.HeroSlide, id string) { h.ID = id },
		getOrder: func(h entity.HeroSlide) int { return h.Order },
		setOrder: func(h *entity.HeroSlide, o int) { h.Order = o },
		isActive: func(h entity.HeroSlide) bool { return h.Active },
		decode: func(c *fiber.Ctx) (entity.HeroSlide, error) {
			var in dto.CreateHeroSlideRequest
			if err := c.BodyParser(&in); err != nil {
				return entity.HeroSlide{}, err
			}
			return entity.HeroSlide{
				ID: uuid.New().String(), Title: in.Title, Subtitle: in.Subtitle,
				Image: in.Image, LinkTo: in.LinkTo, Active: in.Active,
			}, nil
		},
	}
}

func videoSet(s *Server) promoSet[entity.VideoSlide] {
	return promoSet[entity.VideoSlide]{
		s:        s,
		items:    &s.videos,
		getID:    func(v entity.VideoSlide) string { return v.ID },
		setID:    func(v *entity.VideoSlide, id string) { v.ID = id },
		getOrder: func(v entity.VideoSlide) int { return v.Order },
		setOrder: func(v *entity.VideoSlide, o int) { v.Order = o },
		isActive: func(v entity.VideoSlide) bool { return v.Active },
		decode: func(c *fiber.Ctx) (entity.VideoSlide, error) {
			var in dto.CreateVideoSlideRequest
			if err := c.BodyParser(&in); err != nil {
				return entity.VideoSlide{}, err
			}
			return entity.VideoSlide{
				ID: uuid.New().String(), Title: in.Title, URL: in.URL,
				PublicID: in.PublicID, Duration: in.Duration, Format: in.Format,
				Bytes: in.Bytes, Active: in.Active,
			}, nil
		},
	}
}

func adSet(s *Server) promoSet[entity.AdTile] {
	return promoSet[entity.AdTile]{
		s:        s,
		items:    &s.ads,
		getID:    func(a entity.AdTile) string { return a.ID },
		setID:    func(a *entity.AdTile, id string) { a.ID = id },
		getOrder: func(a entity.AdTile) int { return a.Order },
		setOrder: func(a *entity.AdTile, o int) { a.Order = o },
		isActive: func(a entity.AdTile) bool { return a.Active },
		decode: func(c *fiber.Ctx) (entity.AdTile, error) {
			var in dto.CreateAdTileRequest
			if err := c.BodyParser(&in); err != nil {
				return entity.AdTile{}, err
			}
			return entity.AdTile{
				ID: uuid.New().String(), Title: in.Title, Image: in.Image,
				LinkTo: in.LinkTo, Active: in.Active,
			}, nil
		},
	}
}

// promoRoutes registra el juego de rutas de una colección promocional.
func promoRoutes[T any](grp fiber.Router, set promoSet[T]) {
	s := set.s
	admin := s.requireRole(entity.RoleAdministrador)
	editors := s.requireRole(entity.RoleAdministrador, entity.RoleEditor)

	grp.Get("/public", set.publicList)
	grp.Get("/", s.requireAuth(), set.list)
	grp.Post("/", s.requireAuth(), editors, set.create)
	grp.Put("/reorder", s.requireAuth(), editors, set.reorder)
	grp.Put("/:id", s.requireAuth(), editors, set.update)
	grp.Delete("/:id", s.requireAuth(), admin, set.remove)
}

func (set promoSet[T]) sorted() []T {
	out := make([]T, len(*set.items))
	copy(out, *set.items)
	sort.SliceStable(out, func(i, j int) bool { return set.getOrder(out[i]) < set.getOrder(out[j]) })
	return out
}

func (set promoSet[T]) list(c *fiber.Ctx) error {
	set.s.mu.Lock()
	all := set.sorted()
	set.s.mu.Unlock()
	items, page := paginate(all, c.QueryInt("page"), c.QueryInt("pageSize"))
	return listJSON(c, items, page)
}

// publicList expone solo los elementos activos, sin exigir sesión.
func (set promoSet[T]) publicList(c *fiber.Ctx) error {
	set.s.mu.Lock()
	all := set.sorted()
	set.s.mu.Unlock()

	active := make([]T, 0, len(all))
	for _, it := range all {
		if set.isActive(it) {
			active = append(active, it)
		}
	}
	items, page := paginate(active, 1, len(active)+1)
	return listJSON(c, items, page)
}

func (set promoSet[T]) create(c *fiber.Ctx) error {
	item, err := set.decode(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	set.s.mu.Lock()
	set.setOrder(&item, len(*set.items))
	*set.items = append(*set.items, item)
	set.s.mu.Unlock()
	return c.Status(fiber.StatusCreated).JSON(item)
}

// update reemplaza el elemento completo conservando su ID y su posición.
func (set promoSet[T]) update(c *fiber.Ctx) error {
	item, err := set.decode(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	id := c.Params("id")
	set.s.mu.Lock()
	defer set.s.mu.Unlock()
	items := *set.items
	for i := range items {
		if set.getID(items[i]) != id {
			continue
		}
		order := set.getOrder(items[i])
		items[i] = item
		set.setID(&items[i], id)
		set.setOrder(&items[i], order)
		return c.JSON(items[i])
	}
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "elemento no encontrado"})
}

func (set promoSet[T]) remove(c *fiber.Ctx) error {
	id := c.Params("id")
	set.s.mu.Lock()
	defer set.s.mu.Unlock()
	items := *set.items
	for i := range items {
		if set.getID(items[i]) == id {
			*set.items = append(items[:i], items[i+1:]...)
			return c.SendStatus(fiber.StatusNoContent)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "elemento no encontrado"})
}

// reorder reasigna el orden completo de la colección y responde la colección
// resultante; el cliente la adopta tal cual.
func (set promoSet[T]) reorder(c *fiber.Ctx) error {
	var entries []dto.ReorderEntry
	if err := c.BodyParser(&entries); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	byID := make(map[string]int, len(entries))
	for _, e := range entries {
		byID[e.ID] = e.Order
	}

	set.s.mu.Lock()
	items := *set.items
	for i := range items {
		if pos, ok := byID[set.getID(items[i])]; ok {
			set.setOrder(&items[i], pos)
		}
	}
	all := set.sorted()
	set.s.mu.Unlock()

	items2, page := paginate(all, 1, len(all)+1)
	return listJSON(c, items2, page)
}
