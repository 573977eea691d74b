// Package media sube videos directamente al servicio de medios alojado,
// usando un preset fijo de subida. Para el resto del sistema es una llamada
// remota opaca que devuelve la URL segura y los metadatos del recurso; esos
// campos se reenvían luego al backend como valores planos.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/tu-usuario/admin-revendedores/internal/domain"
)

// Upload resultado de una subida al servicio de medios.
type Upload struct {
	URL      string  `json:"secure_url"`
	PublicID string  `json:"public_id"`
	Duration float64 `json:"duration"`
	Format   string  `json:"format"`
	Bytes    int64   `json:"bytes"`
}

// Uploader cliente del servicio de medios.
type Uploader struct {
	uploadURL  string
	preset     string
	httpClient *http.Client
}

// New construye el uploader con la URL del endpoint y el preset configurado.
func New(uploadURL, preset string) *Uploader {
	return &Uploader{
		uploadURL:  uploadURL,
		preset:     preset,
		httpClient: &http.Client{},
	}
}

// UploadVideo envía el archivo con el preset fijo. La subida no requiere la
// sesión del backend: el servicio de medios autentica por preset.
func (u *Uploader) UploadVideo(ctx context.Context, fileName string, file io.Reader) (*Upload, error) {
	if u.uploadURL == "" {
		return nil, fmt.Errorf("%w: servicio de medios no configurado", domain.ErrInvalidInput)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("upload_preset", u.preset); err != nil {
		return nil, fmt.Errorf("subir video: armar formulario: %w", err)
	}
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("subir video: armar formulario: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("subir video: copiar archivo: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("subir video: cerrar formulario: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, &buf)
	if err != nil {
		return nil, fmt.Errorf("subir video: crear petición: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: no se pudo contactar al servicio de medios", domain.ErrNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: subida de video rechazada (estado HTTP %d)", domain.ErrServer, resp.StatusCode)
	}

	var result Upload
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("subir video: decodificar respuesta: %w", err)
	}
	return &result, nil
}
