package store

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tu-usuario/admin-revendedores/internal/application/dto"
	"github.com/tu-usuario/admin-revendedores/internal/domain"
	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
	"github.com/tu-usuario/admin-revendedores/internal/infrastructure/api"
	"github.com/tu-usuario/admin-revendedores/internal/notify"
)

// Orders almacén de pedidos. El cambio de estado está restringido por rol y
// la edición de ítems además por el estado actual del pedido, verificado en
// el cliente antes de cualquier llamada.
type Orders struct {
	*Collection[entity.Order]
}

// NewOrders construye el almacén de pedidos.
func NewOrders(apiClient *api.Client, session SessionReader, notifier notify.Notifier) *Orders {
	return &Orders{
		Collection: NewCollection[entity.Order](
			"pedido", "/api/orders", apiClient, session, notifier, entity.OrderPermissions),
	}
}

// List carga una página de pedidos con los filtros dados.
func (o *Orders) List(ctx context.Context, params dto.OrderListParams) ([]entity.Order, error) {
	params.DefaultPage()
	q := url.Values{}
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("pageSize", strconv.Itoa(params.PageSize))
	if params.Status != "" {
		q.Set("status", string(params.Status))
	}
	if params.Reseller != "" {
		q.Set("reseller", params.Reseller)
	}
	return o.Collection.List(ctx, q)
}

// GetByID busca el pedido SOLO en la página ya cargada; un pedido fuera de la
// página o filtro actual responde ErrNotFoundLocally sin ir a la red. Es una
// garantía más débil que la de los demás almacenes y los llamadores deben
// tolerarla; el detalle de pedidos siempre se navega desde la página visible.
func (o *Orders) GetByID(id string) (entity.Order, error) {
	for _, ord := range o.Items() {
		if ord.ID == id {
			return ord, nil
		}
	}
	return entity.Order{}, fmt.Errorf("%w: pedido %s", domain.ErrNotFoundLocally, id)
}

// UpdateStatus cambia el estado del pedido (solo Administrador/Editor) y
// reconstruye la página actual.
func (o *Orders) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	if !status.Valid() {
		err := fmt.Errorf("%w: estado de pedido desconocido %q", domain.ErrInvalidInput, status)
		o.notifier.Error(err.Error())
		return err
	}
	if err := o.authorize(entity.ActionStatus); err != nil {
		o.notifier.Error(err.Error())
		return err
	}

	body := dto.UpdateOrderStatusRequest{Status: status}
	if err := o.api.Put(ctx, "cambiar estado del pedido", o.basePath+"/"+id+"/status", body, nil); err != nil {
		o.notifier.Error(err.Error())
		return err
	}
	o.notifier.Success("estado del pedido actualizado")
	o.refresh(ctx)
	return nil
}

// UpdateItems reemplaza las líneas de un pedido aún editable. La regla de
// editabilidad se evalúa localmente sobre la página cargada: un pedido ya
// despachado se rechaza sin intentar la red.
func (o *Orders) UpdateItems(ctx context.Context, id string, items []entity.OrderItem) error {
	ord, err := o.GetByID(id)
	if err != nil {
		o.notifier.Error(err.Error())
		return err
	}
	if !ord.Status.ItemsEditable() {
		err := fmt.Errorf("%w (estado %s)", domain.ErrOrderLocked, ord.Status)
		o.notifier.Error(err.Error())
		return err
	}
	if err := o.authorize(entity.ActionUpdate); err != nil {
		o.notifier.Error(err.Error())
		return err
	}

	body := dto.UpdateOrderItemsRequest{Items: items}
	if err := o.api.Put(ctx, "editar ítems del pedido", o.basePath+"/"+id+"/items", body, nil); err != nil {
		o.notifier.Error(err.Error())
		return err
	}
	o.notifier.Success("ítems del pedido actualizados")
	o.refresh(ctx)
	return nil
}
