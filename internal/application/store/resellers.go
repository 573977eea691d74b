package store

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tu-usuario/admin-revendedores/internal/application/dto"
	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
	"github.com/tu-usuario/admin-revendedores/internal/infrastructure/api"
	"github.com/tu-usuario/admin-revendedores/internal/notify"
)

// Resellers almacén de cuentas de revendedor. Vive bajo /api/auth porque las
// cuentas son también credenciales de acceso al panel.
type Resellers struct {
	*Collection[entity.Reseller]
}

// NewResellers construye el almacén de revendedores.
func NewResellers(apiClient *api.Client, session SessionReader, notifier notify.Notifier) *Resellers {
	return &Resellers{
		Collection: NewCollection[entity.Reseller](
			"revendedor", "/api/auth/resellers", apiClient, session, notifier, entity.CatalogPermissions),
	}
}

// List carga una página de revendedores con los filtros dados.
func (r *Resellers) List(ctx context.Context, params dto.ResellerListParams) ([]entity.Reseller, error) {
	params.DefaultPage()
	q := url.Values{}
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("pageSize", strconv.Itoa(params.PageSize))
	if params.Category != "" {
		q.Set("category", string(params.Category))
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	return r.Collection.List(ctx, q)
}

// ResetCode pide al servidor un código de revendedor nuevo. Es la única vía
// para reemplazar el código emitido; reconstruye la página actual.
func (r *Resellers) ResetCode(ctx context.Context, id string) (*entity.Reseller, error) {
	if err := r.authorize(entity.ActionReset); err != nil {
		r.notifier.Error(err.Error())
		return nil, err
	}
	var out entity.Reseller
	if err := r.api.Post(ctx, "reiniciar código de revendedor", r.basePath+"/"+id+"/reset-code", nil, &out); err != nil {
		r.notifier.Error(err.Error())
		return nil, err
	}
	r.notifier.Success("código de revendedor reiniciado")
	r.refresh(ctx)
	return &out, nil
}
