package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/admin-revendedores/internal/application/dto"
	"github.com/tu-usuario/admin-revendedores/internal/application/session"
	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
	"github.com/tu-usuario/admin-revendedores/internal/infrastructure/api"
	"github.com/tu-usuario/admin-revendedores/internal/infrastructure/credentials"
	"github.com/tu-usuario/admin-revendedores/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// newManager arma un administrador de sesión contra el backend de prueba dado.
// Devuelve también la ruta del archivo de credenciales para inspeccionarlo.
func newManager(t *testing.T, backend http.Handler) (*session.Manager, string) {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), "session.json")
	client := api.New(srv.URL)
	return session.NewManager(client, credentials.New(path), logger.Nop()), path
}

// loginBackend responde cualquier petición con el cuerpo JSON dado.
func loginBackend(resp any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(resp)
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Init — máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestInit_SinCopiaPersistida_ArrancaAnonimo(t *testing.T) {
	m, _ := newManager(t, http.NotFoundHandler())

	assert.Equal(t, session.StateInitializing, m.State(), "antes de Init la sesión está inicializando")
	assert.False(t, m.Ready())

	m.Init()
	assert.Equal(t, session.StateAnonymous, m.State())
	assert.True(t, m.Ready())
}

// Copia persistida corrupta: Init jamás falla, simplemente arranca anónimo.
func TestInit_CopiaCorrupta_ArrancaAnonimo(t *testing.T) {
	m, path := newManager(t, http.NotFoundHandler())
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("{corrupto"), 0o600))

	m.Init()
	assert.Equal(t, session.StateAnonymous, m.State())
	_, ok := m.Current()
	assert.False(t, ok)
}

// Copia persistida con token pero sin rol: se descarta y arranca anónimo.
func TestInit_CopiaSinRol_ArrancaAnonimo(t *testing.T) {
	m, path := newManager(t, http.NotFoundHandler())
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"userId":"u1","email":"u1@demo.local","token":"t1"}`), 0o600))

	m.Init()
	assert.Equal(t, session.StateAnonymous, m.State())
}

func TestInit_CopiaValida_ArrancaAutenticado(t *testing.T) {
	m, path := newManager(t, http.NotFoundHandler())
	store := credentials.New(path)
	require.NoError(t, store.Save(entity.Session{
		UserID: "u1", Email: "u1@demo.local",
		Role: entity.RoleAdministrador, Token: "t1",
	}))

	m.Init()
	assert.Equal(t, session.StateAuthenticated, m.State())

	sess, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, entity.RoleAdministrador, sess.Role)
	assert.Equal(t, "t1", m.Token())
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso_AutenticaYPersiste(t *testing.T) {
	m, path := newManager(t, loginBackend(map[string]string{
		"userId": "u1", "name": "Admin", "email": "admin@demo.local",
		"role": "Administrador", "token": "t1",
	}))
	m.Init()

	res := m.Login(context.Background(), "admin@demo.local", "admin1234")
	require.True(t, res.Success, res.Message)
	assert.Equal(t, session.StateAuthenticated, m.State())
	assert.Equal(t, "t1", m.Token())

	// La sesión debe sobrevivir al reinicio: otra instancia del almacén la lee.
	loaded, err := credentials.New(path).Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, entity.RoleAdministrador, loaded.Role)
}

// Respuesta 200 sin rol: se trata como fallo, nada se persiste y el estado no
// cambia.
func TestLogin_RespuestaSinRol_FallaYNoPersiste(t *testing.T) {
	m, path := newManager(t, loginBackend(map[string]string{
		"userId": "u1", "email": "u1@demo.local", "token": "t1",
	}))
	m.Init()

	res := m.Login(context.Background(), "u1@demo.local", "clave")
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "rol")
	assert.Equal(t, session.StateAnonymous, m.State())

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "una respuesta sin rol no debe persistirse")
}

func TestLogin_RespuestaSinToken_Falla(t *testing.T) {
	m, _ := newManager(t, loginBackend(map[string]string{
		"userId": "u1", "role": "Administrador",
	}))
	m.Init()

	res := m.Login(context.Background(), "u1@demo.local", "clave")
	assert.False(t, res.Success)
	assert.Equal(t, session.StateAnonymous, m.State())
}

// Credenciales rechazadas: el mensaje del servidor llega al usuario tal cual.
func TestLogin_CredencialesInvalidas_MensajeDelServidor(t *testing.T) {
	m, _ := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{
			"code": "INVALID_CREDENTIALS", "message": "credenciales inválidas",
		})
	}))
	m.Init()

	res := m.Login(context.Background(), "u1@demo.local", "mala")
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "credenciales inválidas")
	assert.Equal(t, session.StateAnonymous, m.State())
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_LimpiaSesionYCredenciales(t *testing.T) {
	m, path := newManager(t, loginBackend(map[string]string{
		"userId": "u1", "role": "Editor", "token": "t1",
	}))
	m.Init()
	require.True(t, m.Login(context.Background(), "e@demo.local", "clave").Success)

	m.Logout()
	assert.Equal(t, session.StateAnonymous, m.State())
	assert.Empty(t, m.Token())
	_, ok := m.Current()
	assert.False(t, ok)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "el archivo de sesión debe eliminarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Recuperación de contraseña — no toca el estado de la sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestForgotPassword_NoPerturbaElEstado(t *testing.T) {
	m, _ := newManager(t, loginBackend(map[string]string{
		"message": "si la cuenta existe, enviamos un correo",
	}))
	m.Init()

	res := m.ForgotPassword(context.Background(), "u1@demo.local")
	assert.True(t, res.Success)
	assert.Contains(t, res.Message, "correo")
	assert.Equal(t, session.StateAnonymous, m.State(), "la recuperación no cambia el estado")
}

func TestResetPassword_conTokenValido(t *testing.T) {
	m, _ := newManager(t, loginBackend(map[string]string{
		"message": "contraseña actualizada",
	}))
	m.Init()

	res := m.ResetPassword(context.Background(), "token-recuperacion", "clave-nueva")
	assert.True(t, res.Success)
	assert.Equal(t, "contraseña actualizada", res.Message)
}

// Registro con respuesta completa: mismo contrato que Login.
func TestRegister_Exitoso_Autentica(t *testing.T) {
	m, _ := newManager(t, loginBackend(map[string]string{
		"userId": "u2", "name": "Nuevo", "email": "nuevo@demo.local",
		"role": "Revendedor", "resellerCategory": "cat3", "token": "t2",
	}))
	m.Init()

	res := m.Register(context.Background(), dto.RegisterRequest{
		Name: "Nuevo", Email: "nuevo@demo.local", Password: "clave",
		Role: entity.RoleRevendedor, Category: entity.Cat3,
	})
	require.True(t, res.Success, res.Message)

	sess, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, entity.RoleRevendedor, sess.Role)
	assert.Equal(t, entity.Cat3, sess.Category)
}
