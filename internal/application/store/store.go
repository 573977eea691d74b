// Package store implementa los almacenes de recursos del panel: una caché en
// memoria por colección, alimentada por el backend y reconstruida con un
// listado completo después de cada mutación. El patrón se implementa una sola
// vez en Collection y cada recurso lo instancia con su ruta y su tabla de
// permisos.
package store

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/tu-usuario/admin-revendedores/internal/application/dto"
	"github.com/tu-usuario/admin-revendedores/internal/domain"
	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
	"github.com/tu-usuario/admin-revendedores/internal/infrastructure/api"
	"github.com/tu-usuario/admin-revendedores/internal/notify"
)

// SessionReader vista de solo lectura de la sesión activa. La implementa el
// administrador de sesión; los stores jamás la mutan.
type SessionReader interface {
	Current() (entity.Session, bool)
}

// ListResponse respuesta de listado del backend.
type ListResponse[T any] struct {
	Items []T              `json:"items"`
	Page  dto.PageResponse `json:"page"`
}

// Collection almacén genérico de un recurso. El estado visible es siempre el
// resultado del último listado exitoso; ante un error de listado la colección
// queda vacía y el error expuesto, nunca ambos a la vez.
type Collection[T any] struct {
	name     string // sustantivo masculino singular, para mensajes
	basePath string

	api      *api.Client
	session  SessionReader
	notifier notify.Notifier
	perms    entity.PermissionTable

	mu        sync.Mutex
	items     []T
	page      dto.PageResponse
	lastErr   error
	lastQuery url.Values
}

// NewCollection instancia el almacén de un recurso.
func NewCollection[T any](name, basePath string, apiClient *api.Client, session SessionReader, notifier notify.Notifier, perms entity.PermissionTable) *Collection[T] {
	return &Collection[T]{
		name:     name,
		basePath: basePath,
		api:      apiClient,
		session:  session,
		notifier: notifier,
		perms:    perms,
	}
}

// authorize guardia local: exige sesión y rol permitido antes de cualquier
// intento de red. Produce la misma forma de error que un rechazo del
// servidor, así el llamador tiene una sola ruta de manejo.
func (c *Collection[T]) authorize(action entity.StoreAction) error {
	sess, ok := c.session.Current()
	if !ok {
		return fmt.Errorf("%w: inicie sesión para continuar", domain.ErrUnauthorized)
	}
	if !c.perms.Allows(action, sess.Role) {
		return fmt.Errorf("%w: su rol no permite esta operación sobre %s", domain.ErrForbidden, c.name)
	}
	return nil
}

// List carga una página de la colección. En fallo la colección queda vacía y
// el error registrado; el llamador decide cómo ofrecer el reintento.
func (c *Collection[T]) List(ctx context.Context, query url.Values) ([]T, error) {
	if err := c.authorize(entity.ActionList); err != nil {
		c.adoptFailure(err)
		return nil, err
	}

	var resp ListResponse[T]
	err := c.api.Get(ctx, "listar "+c.name, c.basePath, query, &resp)
	if err != nil {
		c.adoptFailure(err)
		return nil, err
	}

	c.mu.Lock()
	c.items = resp.Items
	c.page = resp.Page
	c.lastErr = nil
	c.lastQuery = query
	c.mu.Unlock()
	return resp.Items, nil
}

// PublicList variante pública de lectura (contenido promocional del sitio).
// Degrada a lista vacía sin notificar: la vitrina pública nunca muestra un
// error por contenido faltante.
func (c *Collection[T]) PublicList(ctx context.Context) []T {
	var resp ListResponse[T]
	if err := c.api.PublicGet(ctx, "listar "+c.name, c.basePath+"/public", nil, &resp); err != nil {
		return nil
	}
	return resp.Items
}

// refresh repite el último listado (misma página y filtros) tras una
// mutación exitosa. La respuesta que llegue última gana.
func (c *Collection[T]) refresh(ctx context.Context) {
	c.mu.Lock()
	query := c.lastQuery
	c.mu.Unlock()
	_, _ = c.List(ctx, query)
}

func (c *Collection[T]) adoptFailure(err error) {
	c.mu.Lock()
	c.items = nil
	c.page = dto.PageResponse{}
	c.lastErr = err
	c.mu.Unlock()
}

// GetByID obtiene una entidad por ID directamente del backend.
func (c *Collection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	if err := c.authorize(entity.ActionGet); err != nil {
		return nil, err
	}
	var out T
	if err := c.api.Get(ctx, "consultar "+c.name, c.basePath+"/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create da de alta una entidad y reconstruye la página actual.
func (c *Collection[T]) Create(ctx context.Context, body any) (*T, error) {
	if err := c.authorize(entity.ActionCreate); err != nil {
		c.notifier.Error(err.Error())
		return nil, err
	}
	var out T
	if err := c.api.Post(ctx, "crear "+c.name, c.basePath, body, &out); err != nil {
		c.notifier.Error(err.Error())
		return nil, err
	}
	c.notifier.Success(c.name + " creado")
	c.refresh(ctx)
	return &out, nil
}

// Update modifica una entidad y reconstruye la página actual.
func (c *Collection[T]) Update(ctx context.Context, id string, patch any) (*T, error) {
	if err := c.authorize(entity.ActionUpdate); err != nil {
		c.notifier.Error(err.Error())
		return nil, err
	}
	var out T
	if err := c.api.Put(ctx, "actualizar "+c.name, c.basePath+"/"+id, patch, &out); err != nil {
		c.notifier.Error(err.Error())
		return nil, err
	}
	c.notifier.Success(c.name + " actualizado")
	c.refresh(ctx)
	return &out, nil
}

// Remove elimina una entidad y reconstruye la página actual.
func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	if err := c.authorize(entity.ActionDelete); err != nil {
		c.notifier.Error(err.Error())
		return err
	}
	if err := c.api.Delete(ctx, "eliminar "+c.name, c.basePath+"/"+id); err != nil {
		c.notifier.Error(err.Error())
		return err
	}
	c.notifier.Success(c.name + " eliminado")
	c.refresh(ctx)
	return nil
}

// Reorder reemplaza el orden autoritativo de la colección en una sola
// llamada. El backend responde la colección completa ya ordenada y esta se
// adopta tal cual, sin re-fetch adicional.
func (c *Collection[T]) Reorder(ctx context.Context, orderedIDs []string) error {
	if err := c.authorize(entity.ActionReorder); err != nil {
		c.notifier.Error(err.Error())
		return err
	}

	entries := make([]dto.ReorderEntry, len(orderedIDs))
	for i, id := range orderedIDs {
		entries[i] = dto.ReorderEntry{ID: id, Order: i}
	}

	var resp ListResponse[T]
	if err := c.api.Put(ctx, "reordenar "+c.name, c.basePath+"/reorder", entries, &resp); err != nil {
		c.notifier.Error(err.Error())
		return err
	}

	c.mu.Lock()
	c.items = resp.Items
	c.page = resp.Page
	c.lastErr = nil
	c.mu.Unlock()

	c.notifier.Success(c.name + " reordenado")
	return nil
}

// Items devuelve una copia de la colección cargada.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Page devuelve los metadatos de paginación del último listado.
func (c *Collection[T]) Page() dto.PageResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Err devuelve el error del último listado fallido (nil tras uno exitoso).
func (c *Collection[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Name devuelve el nombre del recurso (para mensajes del llamador).
func (c *Collection[T]) Name() string { return c.name }
