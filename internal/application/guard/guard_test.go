package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/admin-revendedores/internal/application/guard"
	"github.com/tu-usuario/admin-revendedores/internal/application/session"
	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Evaluate — la guardia de rutas protegidas
// ──────────────────────────────────────────────────────────────────────────────

// Mientras la sesión se inicializa ninguna vista protegida puede decidirse:
// la guardia responde "cargando" aunque se exijan roles.
func TestEvaluate_Inicializando_Carga(t *testing.T) {
	d := guard.Evaluate(session.StateInitializing, entity.Session{}, entity.RoleAdministrador)
	assert.Equal(t, guard.KindLoading, d.Kind)
}

func TestEvaluate_Anonimo_RedirigeAlLogin(t *testing.T) {
	d := guard.Evaluate(session.StateAnonymous, entity.Session{})
	assert.Equal(t, guard.KindRedirect, d.Kind)
	assert.Equal(t, guard.SignInPath, d.Target)
	assert.Empty(t, d.Notice, "la redirección al login no lleva aviso")
}

// Sesión con token "t1" y rol Administrador: toda vista del panel renderiza.
func TestEvaluate_AdministradorAutenticado_Renderiza(t *testing.T) {
	sess := entity.Session{Token: "t1", Role: entity.RoleAdministrador}

	d := guard.Evaluate(session.StateAuthenticated, sess, entity.RoleAdministrador, entity.RoleEditor)
	assert.Equal(t, guard.KindRender, d.Kind)
}

func TestEvaluate_SinRolesRequeridos_BastaAutenticado(t *testing.T) {
	sess := entity.Session{Token: "t1", Role: entity.RoleRevendedor}

	d := guard.Evaluate(session.StateAuthenticated, sess)
	assert.Equal(t, guard.KindRender, d.Kind)
}

// Rol insuficiente: redirección al tablero con aviso, nunca al login.
func TestEvaluate_RolInsuficiente_RedirigeAlTableroConAviso(t *testing.T) {
	sess := entity.Session{Token: "t1", Role: entity.RoleRevendedor}

	d := guard.Evaluate(session.StateAuthenticated, sess, entity.RoleAdministrador, entity.RoleEditor)
	assert.Equal(t, guard.KindRedirect, d.Kind)
	assert.Equal(t, guard.DashboardPath, d.Target)
	assert.NotEmpty(t, d.Notice, "el acceso denegado por rol debe avisar al usuario")
}

func TestEvaluate_EditorEnSeccionDeEditores_Renderiza(t *testing.T) {
	sess := entity.Session{Token: "t1", Role: entity.RoleEditor}

	d := guard.Evaluate(session.StateAuthenticated, sess, entity.RoleAdministrador, entity.RoleEditor)
	assert.Equal(t, guard.KindRender, d.Kind)
}
