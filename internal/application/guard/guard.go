// Package guard decide si una vista protegida puede renderizarse dada la
// sesión actual y los roles requeridos. Es una función pura: se evalúa en
// cada pasada y no muta ningún estado; el aviso de acceso denegado viaja en
// la decisión para que lo emita el llamador.
package guard

import (
	"github.com/tu-usuario/admin-revendedores/internal/application/session"
	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
)

// Destinos de redirección del panel.
const (
	SignInPath    = "/authentication/sign-in"
	DashboardPath = "/dashboard"
)

// Kind clase de decisión.
type Kind int

const (
	// KindLoading la sesión aún se inicializa: mostrar el marcador de carga.
	KindLoading Kind = iota
	// KindRender la vista puede renderizarse.
	KindRender
	// KindRedirect redirigir a Target; Notice trae el aviso si corresponde.
	KindRedirect
)

// Decision resultado de evaluar la guardia.
type Decision struct {
	Kind   Kind
	Target string
	Notice string
}

// Evaluate aplica la guardia de ruta. Sin roles requeridos, basta cualquier
// sesión autenticada.
func Evaluate(state session.State, sess entity.Session, required ...entity.Role) Decision {
	switch state {
	case session.StateInitializing:
		return Decision{Kind: KindLoading}
	case session.StateAnonymous:
		return Decision{Kind: KindRedirect, Target: SignInPath}
	}

	if len(required) == 0 {
		return Decision{Kind: KindRender}
	}
	for _, r := range required {
		if sess.Role == r {
			return Decision{Kind: KindRender}
		}
	}
	return Decision{
		Kind:   KindRedirect,
		Target: DashboardPath,
		Notice: "no tiene permisos para acceder a esta sección",
	}
}
