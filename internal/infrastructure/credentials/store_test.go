package credentials_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
	"github.com/tu-usuario/admin-revendedores/internal/infrastructure/credentials"
	pkgjwt "github.com/tu-usuario/admin-revendedores/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newStore(t *testing.T) (*credentials.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return credentials.New(path), path
}

func sessionWithToken(t *testing.T, role entity.Role, expMinutes int) entity.Session {
	t.Helper()
	tok, err := pkgjwt.Generate("secreto-de-prueba", "u1", string(role), "", "test", expMinutes)
	require.NoError(t, err)
	return entity.Session{
		UserID: "u1",
		Name:   "Usuario Prueba",
		Email:  "u1@demo.local",
		Role:   role,
		Token:  tok,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Save / Load
// ──────────────────────────────────────────────────────────────────────────────

func TestSaveLoad_RoundTrip(t *testing.T) {
	store, path := newStore(t)
	sess := sessionWithToken(t, entity.RoleAdministrador, 60)

	require.NoError(t, store.Save(sess))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "el archivo de sesión es privado del usuario")

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, sess.Email, loaded.Email)
	assert.Equal(t, sess.Role, loaded.Role)
	assert.Equal(t, sess.Token, loaded.Token)
}

func TestSave_RechazaSesionIncompleta(t *testing.T) {
	store, path := newStore(t)

	err := store.Save(entity.Session{Token: "t1"}) // token sin rol
	assert.Error(t, err, "una sesión que viola token⇔rol no debe persistirse")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no debe quedar archivo tras el rechazo")
}

func TestLoad_SinArchivo_ArrancaAnonimo(t *testing.T) {
	store, _ := newStore(t)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

// Copia corrupta: se limpia el archivo y se arranca anónimo, jamás es error.
func TestLoad_ArchivoCorrupto_LimpiaYArrancaAnonimo(t *testing.T) {
	store, path := newStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o600))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "la copia corrupta debe eliminarse")
}

// Copia persistida con token pero sin rol (formato viejo o manipulado): se
// descarta igual que una corrupta.
func TestLoad_CopiaSinRol_SeDescarta(t *testing.T) {
	store, path := newStore(t)
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"userId":"u1","email":"u1@demo.local","token":"t1"}`), 0o600))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoad_CategoriaInvalida_SeDescarta(t *testing.T) {
	store, path := newStore(t)
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"userId":"u1","role":"Revendedor","resellerCategory":"cat9","token":"t1"}`), 0o600))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

// Token JWT vencido: la copia se limpia aunque la firma no pueda verificarse.
func TestLoad_TokenVencido_SeDescarta(t *testing.T) {
	store, path := newStore(t)
	require.NoError(t, store.Save(sessionWithToken(t, entity.RoleEditor, -5)))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

// Token opaco (no JWT): se considera vigente; la validez la decide el backend.
func TestLoad_TokenOpaco_SeConservaVigente(t *testing.T) {
	store, _ := newStore(t)
	sess := entity.Session{UserID: "u1", Role: entity.RoleAdministrador, Token: "token-opaco"}
	require.NoError(t, store.Save(sess))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "token-opaco", loaded.Token)
}

func TestClear_Idempotente(t *testing.T) {
	store, _ := newStore(t)
	require.NoError(t, store.Clear(), "limpiar sin archivo no es error")

	require.NoError(t, store.Save(sessionWithToken(t, entity.RoleAdministrador, 60)))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}
