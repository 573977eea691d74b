package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/admin-revendedores/internal/application/dto"
	"github.com/tu-usuario/admin-revendedores/internal/application/store"
	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
)

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "correo del usuario")
	password := fs.String("password", "", "contraseña")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res := a.session.Login(ctx, *email, *password)
	if !res.Success {
		return fmt.Errorf("%s", res.Message)
	}
	fmt.Println(res.Message)
	return nil
}

func (a *app) cmdWhoami() error {
	sess, ok := a.session.Current()
	if !ok {
		fmt.Println("sin sesión activa")
		return nil
	}
	return printJSON(map[string]any{
		"userId":           sess.UserID,
		"name":             sess.Name,
		"email":            sess.Email,
		"role":             sess.Role,
		"resellerCategory": sess.Category,
	})
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "nombre")
	email := fs.String("email", "", "correo")
	password := fs.String("password", "", "contraseña")
	phone := fs.String("phone", "", "teléfono")
	role := fs.String("role", string(entity.RoleRevendedor), "rol: Administrador|Editor|Revendedor")
	category := fs.String("category", "", "categoría cat1..cat5 (solo revendedores)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res := a.session.Register(ctx, dto.RegisterRequest{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Phone:    *phone,
		Role:     entity.Role(*role),
		Category: entity.ResellerCategory(*category),
	})
	if !res.Success {
		return fmt.Errorf("%s", res.Message)
	}
	fmt.Println(res.Message)
	return nil
}

func (a *app) cmdForgotPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("forgot-password", flag.ContinueOnError)
	email := fs.String("email", "", "correo de la cuenta")
	if err := fs.Parse(args); err != nil {
		return err
	}
	res := a.session.ForgotPassword(ctx, *email)
	fmt.Println(res.Message)
	if !res.Success {
		return fmt.Errorf("no se pudo solicitar la recuperación")
	}
	return nil
}

func (a *app) cmdResetPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset-password", flag.ContinueOnError)
	token := fs.String("token", "", "token recibido por correo")
	password := fs.String("password", "", "nueva contraseña")
	if err := fs.Parse(args); err != nil {
		return err
	}
	res := a.session.ResetPassword(ctx, *token, *password)
	fmt.Println(res.Message)
	if !res.Success {
		return fmt.Errorf("no se pudo restablecer la contraseña")
	}
	return nil
}

// parsePrices interpreta el flag -prices: JSON {"cat1": 185900, ...}.
func parsePrices(raw string) (map[entity.ResellerCategory]decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	var prices map[entity.ResellerCategory]decimal.Decimal
	if err := json.Unmarshal([]byte(raw), &prices); err != nil {
		return nil, fmt.Errorf("prices inválido: %w", err)
	}
	return prices, nil
}

func (a *app) cmdProducts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("products: falta subcomando")
	}
	sub, rest := args[0], args[1:]
	fs := flag.NewFlagSet("products "+sub, flag.ContinueOnError)

	switch sub {
	case "list", "search":
		page := fs.Int("page", 1, "página")
		size := fs.Int("size", 20, "tamaño de página")
		term := fs.String("term", "", "término de búsqueda")
		active := fs.Bool("active", false, "solo activos")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		items, err := a.products.List(ctx, dto.ProductListParams{
			PageRequest: dto.PageRequest{Page: *page, PageSize: *size},
			Search:      *term,
			OnlyActive:  *active,
		})
		if err != nil {
			return err
		}
		return printJSON(map[string]any{"items": items, "page": a.products.Page()})

	case "get":
		id := fs.String("id", "", "id del producto")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		p, err := a.products.GetByID(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(p)

	case "create":
		code := fs.String("code", "", "código (inmutable)")
		name := fs.String("name", "", "nombre")
		desc := fs.String("description", "", "descripción")
		stock := fs.Int("stock", 0, "unidades en stock")
		active := fs.Bool("active", true, "visible en catálogo")
		prices := fs.String("prices", "", `precios por tramo, JSON {"cat1":185900,...}`)
		image := fs.String("image", "", "ruta de la imagen (opcional)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		priceMap, err := parsePrices(*prices)
		if err != nil {
			return err
		}
		in := dto.CreateProductRequest{
			Code: *code, Name: *name, Description: *desc,
			Prices: priceMap, CountInStock: *stock, Active: *active,
		}
		if *image != "" {
			f, err := os.Open(*image)
			if err != nil {
				return err
			}
			defer f.Close()
			p, err := a.products.CreateWithImage(ctx, in, f.Name(), f)
			if err != nil {
				return err
			}
			return printJSON(p)
		}
		p, err := a.products.Create(ctx, in)
		if err != nil {
			return err
		}
		return printJSON(p)

	case "update":
		id := fs.String("id", "", "id del producto")
		name := fs.String("name", "", "nombre")
		desc := fs.String("description", "", "descripción")
		stock := fs.Int("stock", 0, "unidades en stock")
		active := fs.Bool("active", true, "visible en catálogo")
		prices := fs.String("prices", "", "precios por tramo (JSON)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		// Solo los flags presentes viajan en el parche.
		var in dto.UpdateProductRequest
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "name":
				in.Name = name
			case "description":
				in.Description = desc
			case "stock":
				in.CountInStock = stock
			case "active":
				in.Active = active
			}
		})
		if *prices != "" {
			priceMap, err := parsePrices(*prices)
			if err != nil {
				return err
			}
			in.Prices = priceMap
		}
		p, err := a.products.Update(ctx, *id, in)
		if err != nil {
			return err
		}
		return printJSON(p)

	case "delete":
		id := fs.String("id", "", "id del producto")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return a.products.Remove(ctx, *id)
	}
	return fmt.Errorf("products: subcomando desconocido %q", sub)
}

func (a *app) cmdOrders(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("orders: falta subcomando")
	}
	sub, rest := args[0], args[1:]
	fs := flag.NewFlagSet("orders "+sub, flag.ContinueOnError)

	page := fs.Int("page", 1, "página")
	size := fs.Int("size", 20, "tamaño de página")
	status := fs.String("status", "", "filtro/valor de estado")
	id := fs.String("id", "", "id del pedido")
	items := fs.String("items", "", "líneas del pedido (JSON)")
	if err := fs.Parse(rest); err != nil {
		return err
	}
	params := dto.OrderListParams{
		PageRequest: dto.PageRequest{Page: *page, PageSize: *size},
	}

	switch sub {
	case "list":
		params.Status = entity.OrderStatus(*status)
		list, err := a.orders.List(ctx, params)
		if err != nil {
			return err
		}
		return printJSON(map[string]any{"items": list, "page": a.orders.Page()})

	case "get":
		// El detalle se resuelve contra la página cargada, igual que en el
		// panel: primero se lista, luego se busca localmente.
		if _, err := a.orders.List(ctx, params); err != nil {
			return err
		}
		ord, err := a.orders.GetByID(*id)
		if err != nil {
			return err
		}
		return printJSON(ord)

	case "set-status":
		if _, err := a.orders.List(ctx, params); err != nil {
			return err
		}
		return a.orders.UpdateStatus(ctx, *id, entity.OrderStatus(*status))

	case "set-items":
		if _, err := a.orders.List(ctx, params); err != nil {
			return err
		}
		var lines []entity.OrderItem
		if err := json.Unmarshal([]byte(*items), &lines); err != nil {
			return fmt.Errorf("items inválido: %w", err)
		}
		return a.orders.UpdateItems(ctx, *id, lines)
	}
	return fmt.Errorf("orders: subcomando desconocido %q", sub)
}

func (a *app) cmdResellers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("resellers: falta subcomando")
	}
	sub, rest := args[0], args[1:]
	fs := flag.NewFlagSet("resellers "+sub, flag.ContinueOnError)

	switch sub {
	case "list":
		page := fs.Int("page", 1, "página")
		size := fs.Int("size", 20, "tamaño de página")
		category := fs.String("category", "", "filtro por categoría")
		term := fs.String("term", "", "búsqueda por nombre o correo")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		list, err := a.resellers.List(ctx, dto.ResellerListParams{
			PageRequest: dto.PageRequest{Page: *page, PageSize: *size},
			Category:    entity.ResellerCategory(*category),
			Search:      *term,
		})
		if err != nil {
			return err
		}
		return printJSON(map[string]any{"items": list, "page": a.resellers.Page()})

	case "get":
		id := fs.String("id", "", "id del revendedor")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		r, err := a.resellers.GetByID(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(r)

	case "create":
		name := fs.String("name", "", "nombre")
		email := fs.String("email", "", "correo")
		phone := fs.String("phone", "", "teléfono")
		city := fs.String("city", "", "ciudad")
		address := fs.String("address", "", "dirección")
		category := fs.String("category", "", "categoría cat1..cat5")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		r, err := a.resellers.Create(ctx, dto.CreateResellerRequest{
			Name: *name, Email: *email, Phone: *phone,
			City: *city, Address: *address,
			Category: entity.ResellerCategory(*category),
		})
		if err != nil {
			return err
		}
		return printJSON(r)

	case "update":
		id := fs.String("id", "", "id del revendedor")
		name := fs.String("name", "", "nombre")
		phone := fs.String("phone", "", "teléfono")
		city := fs.String("city", "", "ciudad")
		category := fs.String("category", "", "categoría")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		var in dto.UpdateResellerRequest
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "name":
				in.Name = name
			case "phone":
				in.Phone = phone
			case "city":
				in.City = city
			case "category":
				c := entity.ResellerCategory(*category)
				in.Category = &c
			}
		})
		r, err := a.resellers.Update(ctx, *id, in)
		if err != nil {
			return err
		}
		return printJSON(r)

	case "delete":
		id := fs.String("id", "", "id del revendedor")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return a.resellers.Remove(ctx, *id)

	case "reset-code":
		id := fs.String("id", "", "id del revendedor")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		r, err := a.resellers.ResetCode(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(r)
	}
	return fmt.Errorf("resellers: subcomando desconocido %q", sub)
}

func (a *app) cmdPromos(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("promos: uso: promos <hero|videos|ads> <subcomando>")
	}
	kind, sub, rest := args[0], args[1], args[2:]
	fs := flag.NewFlagSet("promos "+kind+" "+sub, flag.ContinueOnError)

	// Subida de videos: pasa por el servicio de medios antes del backend.
	if kind == "videos" && sub == "upload" {
		title := fs.String("title", "", "título del video")
		file := fs.String("file", "", "ruta del archivo de video")
		active := fs.Bool("active", true, "visible en el carrusel")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		f, err := os.Open(*file)
		if err != nil {
			return err
		}
		defer f.Close()
		v, err := a.promos.CreateVideo(ctx, *title, f.Name(), f, *active)
		if err != nil {
			return err
		}
		return printJSON(v)
	}

	switch kind {
	case "hero":
		return promoCommands(ctx, fs, sub, rest, a.promos.Hero, func() (any, error) {
			var in dto.CreateHeroSlideRequest
			return in, json.Unmarshal([]byte(fs.Lookup("body").Value.String()), &in)
		})
	case "videos":
		return promoCommands(ctx, fs, sub, rest, a.promos.Videos, func() (any, error) {
			var in dto.CreateVideoSlideRequest
			return in, json.Unmarshal([]byte(fs.Lookup("body").Value.String()), &in)
		})
	case "ads":
		return promoCommands(ctx, fs, sub, rest, a.promos.Ads, func() (any, error) {
			var in dto.CreateAdTileRequest
			return in, json.Unmarshal([]byte(fs.Lookup("body").Value.String()), &in)
		})
	}
	return fmt.Errorf("promos: colección desconocida %q", kind)
}

// promoCommands despacha los subcomandos comunes de una colección
// promocional.
func promoCommands[T any](ctx context.Context, fs *flag.FlagSet, sub string, rest []string, col *store.Collection[T], decodeBody func() (any, error)) error {
	switch sub {
	case "list":
		if err := fs.Parse(rest); err != nil {
			return err
		}
		items, err := col.List(ctx, nil)
		if err != nil {
			return err
		}
		return printJSON(items)

	case "public":
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return printJSON(col.PublicList(ctx))

	case "create":
		fs.String("body", "", "cuerpo JSON del elemento")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		body, err := decodeBody()
		if err != nil {
			return fmt.Errorf("body inválido: %w", err)
		}
		item, err := col.Create(ctx, body)
		if err != nil {
			return err
		}
		return printJSON(item)

	case "reorder":
		ids := fs.String("ids", "", "ids en el orden final, separados por coma")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		ordered := strings.Split(*ids, ",")
		for i := range ordered {
			ordered[i] = strings.TrimSpace(ordered[i])
		}
		return col.Reorder(ctx, ordered)

	case "delete":
		id := fs.String("id", "", "id del elemento")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return col.Remove(ctx, *id)
	}
	return fmt.Errorf("promos: subcomando desconocido %q", sub)
}
