package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/admin-revendedores/internal/domain"
	"github.com/tu-usuario/admin-revendedores/internal/infrastructure/api"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// staticToken fuente de token fija para los tests.
type staticToken string

func (s staticToken) Token() string { return string(s) }

// countingServer servidor de prueba que cuenta las peticiones recibidas.
func countingServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardia local — sin token no se toca la red
// ──────────────────────────────────────────────────────────────────────────────

func TestGet_SinToken_NoTocaLaRed(t *testing.T) {
	srv, hits := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{}"))
	})

	client := api.New(srv.URL)
	client.SetTokenSource(staticToken(""))

	err := client.Get(context.Background(), "listar producto", "/api/products", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, int32(0), hits.Load(), "sin token la petición ni siquiera debe intentarse")
}

func TestGet_ConToken_AdjuntaBearer(t *testing.T) {
	var gotAuth string
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true}`))
	})

	client := api.New(srv.URL)
	client.SetTokenSource(staticToken("t1"))

	var out map[string]bool
	require.NoError(t, client.Get(context.Background(), "listar producto", "/api/products", nil, &out))
	assert.Equal(t, "Bearer t1", gotAuth)
	assert.True(t, out["ok"])
}

// Las lecturas públicas no exigen sesión ni adjuntan el encabezado.
func TestPublicGet_SinSesion_NoAdjuntaBearer(t *testing.T) {
	var gotAuth string
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("{}"))
	})

	client := api.New(srv.URL)
	require.NoError(t, client.PublicGet(context.Background(), "listar anuncio", "/api/promos/ads/public", nil, nil))
	assert.Empty(t, gotAuth)
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de errores
// ──────────────────────────────────────────────────────────────────────────────

// El mensaje del servidor, si viene en el cuerpo, es el que ve el usuario.
func TestDecodeError_MensajeDelServidor(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"code": "FORBIDDEN", "message": "su rol no permite esta operación"})
	})

	client := api.New(srv.URL)
	client.SetTokenSource(staticToken("t1"))

	err := client.Delete(context.Background(), "eliminar producto", "/api/products/p1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Contains(t, err.Error(), "su rol no permite esta operación")
}

// Cuerpo sin mensaje: se sintetiza uno con la operación y el estado HTTP.
func TestDecodeError_SinCuerpo_SintetizaMensaje(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	client := api.New(srv.URL)
	client.SetTokenSource(staticToken("t1"))

	err := client.Get(context.Background(), "listar pedido", "/api/orders", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServer)
	assert.Contains(t, err.Error(), "listar pedido")
	assert.Contains(t, err.Error(), "500")
}

func TestDecodeError_MapeoDeEstados(t *testing.T) {
	casos := []struct {
		status   int
		sentinel error
	}{
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusBadRequest, domain.ErrInvalidInput},
		{http.StatusUnprocessableEntity, domain.ErrInvalidInput},
		{http.StatusBadGateway, domain.ErrServer},
	}

	for _, c := range casos {
		status := c.status
		srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})
		client := api.New(srv.URL)
		client.SetTokenSource(staticToken("t1"))

		err := client.Get(context.Background(), "listar producto", "/api/products", nil, nil)
		assert.ErrorIs(t, err, c.sentinel, "estado %d", c.status)
	}
}

func TestDo_ServidorInalcanzable_ErrNetwork(t *testing.T) {
	// Puerto cerrado: la petición falla antes de cualquier respuesta.
	client := api.New("http://127.0.0.1:1")
	client.SetTokenSource(staticToken("t1"))

	err := client.Get(context.Background(), "listar producto", "/api/products", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNetwork)
}

// ──────────────────────────────────────────────────────────────────────────────
// Multipart
// ──────────────────────────────────────────────────────────────────────────────

func TestPostMultipart_CamposYArchivo(t *testing.T) {
	var gotPreset, gotFile string
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotPreset = r.FormValue("code")
		_, header, err := r.FormFile("image")
		require.NoError(t, err)
		gotFile = header.Filename
		w.Write([]byte(`{"id":"p9"}`))
	})

	client := api.New(srv.URL)
	client.SetTokenSource(staticToken("t1"))

	var out map[string]string
	err := client.PostMultipart(context.Background(), "crear producto", "/api/products",
		map[string]string{"code": "CAM-002"}, "image", "foto.jpg",
		strings.NewReader("contenido-imagen"), &out)
	require.NoError(t, err)

	assert.Equal(t, "CAM-002", gotPreset)
	assert.Equal(t, "foto.jpg", gotFile)
	assert.Equal(t, "p9", out["id"])
}

func TestPostMultipart_SinToken_NoTocaLaRed(t *testing.T) {
	srv, hits := countingServer(t, func(w http.ResponseWriter, r *http.Request) {})

	client := api.New(srv.URL)
	client.SetTokenSource(staticToken(""))

	err := client.PostMultipart(context.Background(), "crear producto", "/api/products",
		nil, "image", "foto.jpg", nil, nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, int32(0), hits.Load())
}
