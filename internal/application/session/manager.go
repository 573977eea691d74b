// Package session administra el ciclo de vida de la identidad autenticada:
// la máquina de estados Initializing → Anonymous | Authenticated, las
// operaciones de login/registro/cierre y la recuperación de contraseña.
// Es el único escritor de la sesión; los stores la leen a través de Current.
package session

import (
	"context"
	"sync"

	"github.com/tu-usuario/admin-revendedores/internal/application/dto"
	"github.com/tu-usuario/admin-revendedores/internal/domain"
	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
	"github.com/tu-usuario/admin-revendedores/internal/infrastructure/api"
	"github.com/tu-usuario/admin-revendedores/internal/infrastructure/credentials"
	"github.com/tu-usuario/admin-revendedores/pkg/logger"
)

// State estado de la máquina de sesión.
type State int

const (
	StateInitializing State = iota
	StateAnonymous
	StateAuthenticated
)

// String para logs.
func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "initializing"
	}
}

// Result desenlace de una operación de sesión de cara al usuario. Las
// operaciones nunca propagan errores de transporte crudos.
type Result struct {
	Success bool
	Message string
}

// Manager máquina de estados de la sesión.
type Manager struct {
	mu      sync.Mutex
	state   State
	current *entity.Session

	api   *api.Client
	creds *credentials.Store
	log   *logger.Logger
}

// NewManager construye el administrador en estado Initializing y se registra
// como fuente de token del cliente HTTP.
func NewManager(apiClient *api.Client, creds *credentials.Store, log *logger.Logger) *Manager {
	m := &Manager{
		state: StateInitializing,
		api:   apiClient,
		creds: creds,
		log:   log,
	}
	apiClient.SetTokenSource(m)
	return m
}

// Init consume la copia persistida y transiciona a un estado terminal. Debe
// completarse antes de evaluar cualquier vista protegida; nunca falla: una
// copia corrupta simplemente arranca anónimo.
func (m *Manager) Init() {
	sess, err := m.creds.Load()

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil || sess == nil {
		if err != nil {
			m.log.Warn().Err(err).Msg("no se pudo leer la sesión persistida")
		}
		m.state = StateAnonymous
		m.current = nil
	} else {
		m.state = StateAuthenticated
		m.current = sess
	}
	m.log.Info().Str("estado", m.state.String()).Msg("sesión inicializada")
}

// State devuelve el estado actual.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Ready indica si la inicialización terminó (la bandera que en el panel
// bloqueaba el render de rutas protegidas).
func (m *Manager) Ready() bool {
	return m.State() != StateInitializing
}

// Current devuelve una copia de la sesión activa. ok=false si no hay sesión.
func (m *Manager) Current() (entity.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAuthenticated || m.current == nil {
		return entity.Session{}, false
	}
	return *m.current, true
}

// Token implementa api.TokenSource.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return ""
	}
	return m.current.Token
}

// Login valida credenciales contra el backend. Una respuesta exitosa sin rol
// se trata como fallo y no se persiste nada.
func (m *Manager) Login(ctx context.Context, email, password string) Result {
	var resp dto.CredentialsResponse
	err := m.api.PublicPost(ctx, "iniciar sesión", "/api/auth/login",
		dto.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return Result{Success: false, Message: err.Error()}
	}
	return m.adopt(resp)
}

// Register da de alta un usuario con rol fijado en el registro. Mismo
// contrato que Login.
func (m *Manager) Register(ctx context.Context, in dto.RegisterRequest) Result {
	var resp dto.CredentialsResponse
	err := m.api.PublicPost(ctx, "registrar usuario", "/api/auth/register", in, &resp)
	if err != nil {
		return Result{Success: false, Message: err.Error()}
	}
	return m.adopt(resp)
}

// adopt valida la respuesta credencializada y, si está completa, persiste y
// transiciona a Authenticated.
func (m *Manager) adopt(resp dto.CredentialsResponse) Result {
	if resp.Token == "" || !resp.Role.Valid() {
		return Result{Success: false, Message: domain.ErrMissingRole.Error()}
	}

	sess := entity.Session{
		UserID:   resp.UserID,
		Name:     resp.Name,
		Email:    resp.Email,
		Role:     resp.Role,
		Category: resp.Category,
		Token:    resp.Token,
	}
	if err := m.creds.Save(sess); err != nil {
		// La sesión en memoria sigue siendo válida; solo no sobrevivirá al
		// reinicio.
		m.log.Warn().Err(err).Msg("no se pudo persistir la sesión")
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.current = &sess
	m.mu.Unlock()

	m.log.Info().Str("rol", string(sess.Role)).Msg("sesión iniciada")
	return Result{Success: true, Message: "sesión iniciada"}
}

// Logout limpia las credenciales y pasa a Anonymous incondicionalmente; no
// hay llamada remota que pueda fallar.
func (m *Manager) Logout() {
	if err := m.creds.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("no se pudo limpiar la sesión persistida")
	}
	m.mu.Lock()
	m.state = StateAnonymous
	m.current = nil
	m.mu.Unlock()
	m.log.Info().Msg("sesión cerrada")
}

// ForgotPassword solicita el correo de recuperación. No toca el estado de la
// sesión ni la bandera de carga: un intento concurrente jamás perturba una
// verificación de sesión en curso.
func (m *Manager) ForgotPassword(ctx context.Context, email string) Result {
	var resp dto.MessageResponse
	err := m.api.PublicPost(ctx, "recuperar contraseña", "/api/auth/forgot-password",
		dto.ForgotPasswordRequest{Email: email}, &resp)
	if err != nil {
		return Result{Success: false, Message: err.Error()}
	}
	msg := resp.Message
	if msg == "" {
		msg = "correo de recuperación enviado"
	}
	return Result{Success: true, Message: msg}
}

// ResetPassword cambia la contraseña con el token recibido por correo.
// Igual que ForgotPassword, es independiente del estado global.
func (m *Manager) ResetPassword(ctx context.Context, token, newPassword string) Result {
	var resp dto.MessageResponse
	err := m.api.PublicPost(ctx, "restablecer contraseña", "/api/auth/reset-password",
		dto.ResetPasswordRequest{Token: token, Password: newPassword}, &resp)
	if err != nil {
		return Result{Success: false, Message: err.Error()}
	}
	msg := resp.Message
	if msg == "" {
		msg = "contraseña actualizada"
	}
	return Result{Success: true, Message: msg}
}
