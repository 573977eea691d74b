package store

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/tu-usuario/admin-revendedores/internal/application/dto"
	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
	"github.com/tu-usuario/admin-revendedores/internal/infrastructure/api"
	"github.com/tu-usuario/admin-revendedores/internal/notify"
)

// Products almacén del catálogo de productos. Añade sobre el patrón genérico
// la búsqueda con retardo mientras se escribe y las altas/ediciones con
// imagen vía formulario multipart.
type Products struct {
	*Collection[entity.Product]

	debounce time.Duration
	tmu      sync.Mutex
	timer    *time.Timer
}

// NewProducts construye el almacén de productos.
func NewProducts(apiClient *api.Client, session SessionReader, notifier notify.Notifier, debounce time.Duration) *Products {
	return &Products{
		Collection: NewCollection[entity.Product](
			"producto", "/api/products", apiClient, session, notifier, entity.CatalogPermissions),
		debounce: debounce,
	}
}

// queryOf traduce los filtros al query string del backend.
func queryOf(params dto.ProductListParams) url.Values {
	params.DefaultPage()
	q := url.Values{}
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("pageSize", strconv.Itoa(params.PageSize))
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.OnlyActive {
		q.Set("active", "true")
	}
	return q
}

// List carga una página del catálogo con los filtros dados.
func (p *Products) List(ctx context.Context, params dto.ProductListParams) ([]entity.Product, error) {
	return p.Collection.List(ctx, queryOf(params))
}

// SearchDebounced programa un listado filtrado por el término tras el
// intervalo configurado. Una tecla posterior dentro de la ventana cancela el
// disparo pendiente, así "abc" seguido de "abcd" produce una sola llamada.
func (p *Products) SearchDebounced(ctx context.Context, term string) {
	p.tmu.Lock()
	defer p.tmu.Unlock()
	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(p.debounce, func() {
		_, _ = p.List(ctx, dto.ProductListParams{Search: term})
	})
}

// CancelSearch descarta cualquier búsqueda pendiente (al salir de la vista).
func (p *Products) CancelSearch() {
	p.tmu.Lock()
	defer p.tmu.Unlock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

// CreateWithImage da de alta un producto junto con su imagen en un
// formulario multipart. Los precios por tramo viajan como JSON dentro del
// campo resellerPrices, igual que lo espera el backend.
func (p *Products) CreateWithImage(ctx context.Context, in dto.CreateProductRequest, fileName string, image io.Reader) (*entity.Product, error) {
	if err := p.authorize(entity.ActionCreate); err != nil {
		p.notifier.Error(err.Error())
		return nil, err
	}

	prices, err := json.Marshal(in.Prices)
	if err != nil {
		p.notifier.Error("crear producto: precios inválidos")
		return nil, err
	}
	fields := map[string]string{
		"code":           in.Code,
		"name":           in.Name,
		"description":    in.Description,
		"countInStock":   strconv.Itoa(in.CountInStock),
		"active":         strconv.FormatBool(in.Active),
		"resellerPrices": string(prices),
	}

	var out entity.Product
	if err := p.api.PostMultipart(ctx, "crear producto", p.basePath, fields, "image", fileName, image, &out); err != nil {
		p.notifier.Error(err.Error())
		return nil, err
	}
	p.notifier.Success("producto creado")
	p.refresh(ctx)
	return &out, nil
}
