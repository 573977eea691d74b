package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Sesión — invariante token⇔rol
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionComplete_TokenYRolPresentes(t *testing.T) {
	s := entity.Session{Token: "t1", Role: entity.RoleAdministrador}
	assert.True(t, s.Complete())
}

func TestSessionComplete_RechazaEstadosAMedias(t *testing.T) {
	casos := []struct {
		nombre string
		sess   entity.Session
	}{
		{"token sin rol", entity.Session{Token: "t1"}},
		{"rol sin token", entity.Session{Role: entity.RoleEditor}},
		{"rol desconocido", entity.Session{Token: "t1", Role: "SuperUsuario"}},
		{"vacía", entity.Session{}},
	}
	for _, c := range casos {
		assert.False(t, c.sess.Complete(), c.nombre)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tablas de permisos
// ──────────────────────────────────────────────────────────────────────────────

// Borrar en catálogo es exclusivo del administrador; crear y editar admiten
// editor; listar no tiene entrada y por tanto admite a cualquier autenticado.
func TestCatalogPermissions_ReglasPorRol(t *testing.T) {
	p := entity.CatalogPermissions

	assert.True(t, p.Allows(entity.ActionDelete, entity.RoleAdministrador))
	assert.False(t, p.Allows(entity.ActionDelete, entity.RoleEditor))
	assert.False(t, p.Allows(entity.ActionDelete, entity.RoleRevendedor))

	assert.True(t, p.Allows(entity.ActionCreate, entity.RoleEditor))
	assert.True(t, p.Allows(entity.ActionReorder, entity.RoleEditor))
	assert.False(t, p.Allows(entity.ActionReorder, entity.RoleRevendedor))

	// Acción sin entrada en la tabla: cualquier autenticado.
	assert.True(t, p.Allows(entity.ActionList, entity.RoleRevendedor))
	assert.True(t, p.Allows(entity.ActionGet, entity.RoleEditor))
}

func TestOrderPermissions_CambioDeEstado(t *testing.T) {
	p := entity.OrderPermissions

	assert.True(t, p.Allows(entity.ActionStatus, entity.RoleAdministrador))
	assert.True(t, p.Allows(entity.ActionStatus, entity.RoleEditor))
	assert.False(t, p.Allows(entity.ActionStatus, entity.RoleRevendedor))
	assert.False(t, p.Allows(entity.ActionDelete, entity.RoleEditor))
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos — editabilidad de ítems por estado
// ──────────────────────────────────────────────────────────────────────────────

func TestItemsEditable_SoloAntesDeDespacho(t *testing.T) {
	editables := []entity.OrderStatus{entity.OrderPending, entity.OrderPlaced, entity.OrderProcessing}
	bloqueados := []entity.OrderStatus{entity.OrderShipped, entity.OrderDelivered, entity.OrderCancelled, entity.OrderExpired}

	for _, st := range editables {
		assert.True(t, st.ItemsEditable(), "estado %s debe permitir editar ítems", st)
	}
	for _, st := range bloqueados {
		assert.False(t, st.ItemsEditable(), "estado %s no debe permitir editar ítems", st)
	}
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, entity.OrderDelivered.Valid())
	assert.False(t, entity.OrderStatus("enviado").Valid(), "los estados viajan en inglés")
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos — precio por tramo
// ──────────────────────────────────────────────────────────────────────────────

func TestPriceFor_TramoExistenteYFaltante(t *testing.T) {
	p := entity.Product{
		Prices: map[entity.ResellerCategory]decimal.Decimal{
			entity.Cat1: decimal.NewFromInt(185900),
			entity.Cat2: decimal.NewFromInt(185400),
		},
	}

	assert.True(t, p.PriceFor(entity.Cat2).Equal(decimal.NewFromInt(185400)))
	assert.True(t, p.PriceFor(entity.Cat5).IsZero(), "tramo sin precio definido responde cero")
}

func TestResellerCategoryValid(t *testing.T) {
	assert.True(t, entity.Cat3.Valid())
	assert.True(t, entity.ResellerCategory("").Valid(), "los no-revendedores no llevan categoría")
	assert.False(t, entity.ResellerCategory("cat9").Valid())
}
