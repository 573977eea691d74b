package media_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/admin-revendedores/internal/domain"
	"github.com/tu-usuario/admin-revendedores/internal/infrastructure/media"
)

func TestUploadVideo_PresetYArchivo(t *testing.T) {
	var gotPreset, gotFile string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotPreset = r.FormValue("upload_preset")
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		gotFile = header.Filename
		json.NewEncoder(w).Encode(map[string]any{
			"secure_url": "https://media.example/v/x.mp4",
			"public_id":  "v/x",
			"duration":   3.2,
			"format":     "mp4",
			"bytes":      512,
		})
	}))
	t.Cleanup(srv.Close)

	up := media.New(srv.URL, "reseller_videos")
	res, err := up.UploadVideo(context.Background(), "clip.mp4", strings.NewReader("datos"))
	require.NoError(t, err)

	assert.Equal(t, "reseller_videos", gotPreset)
	assert.Equal(t, "clip.mp4", gotFile)
	assert.Equal(t, "https://media.example/v/x.mp4", res.URL)
	assert.Equal(t, "v/x", res.PublicID)
	assert.InDelta(t, 3.2, res.Duration, 0.001)
}

func TestUploadVideo_SinConfigurar_RechazoLocal(t *testing.T) {
	up := media.New("", "reseller_videos")
	_, err := up.UploadVideo(context.Background(), "clip.mp4", strings.NewReader("datos"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUploadVideo_Rechazada_ErrServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	up := media.New(srv.URL, "reseller_videos")
	_, err := up.UploadVideo(context.Background(), "clip.mp4", strings.NewReader("datos"))
	assert.ErrorIs(t, err, domain.ErrServer)
}
