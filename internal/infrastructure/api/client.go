// Package api implementa el transporte HTTP autorizado hacia el backend del
// panel. Toda operación de los stores pasa por aquí: se adjunta el bearer
// token, se verifica localmente su presencia antes de tocar la red y los
// errores se normalizan a los centinelas de dominio con un mensaje legible.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/tu-usuario/admin-revendedores/internal/application/dto"
	"github.com/tu-usuario/admin-revendedores/internal/domain"
)

// TokenSource provee el token de la sesión activa. Lo implementa el
// administrador de sesión; los stores nunca leen el token directamente.
type TokenSource interface {
	Token() string
}

// Client encapsula la interacción HTTP con el backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// New crea el cliente para el backend en la dirección indicada. Sin timeout
// propio: una petición colgada deja la operación ocupada, igual que en el
// panel original; el llamador puede acotar con el contexto.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// SetTokenSource conecta la fuente del token (se asigna tras construir el
// administrador de sesión, que a su vez necesita este cliente).
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// AuthHeader devuelve el valor del encabezado Authorization, o cadena vacía
// si no hay sesión activa.
func (c *Client) AuthHeader() string {
	if c.tokens == nil {
		return ""
	}
	tok := c.tokens.Token()
	if tok == "" {
		return ""
	}
	return "Bearer " + tok
}

func (c *Client) endpoint(path string, query url.Values) string {
	base := c.baseURL
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}
	u := base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Get ejecuta un GET autorizado y decodifica la respuesta JSON en out.
func (c *Client) Get(ctx context.Context, op, path string, query url.Values, out any) error {
	return c.do(ctx, op, http.MethodGet, path, query, nil, out, true)
}

// Post ejecuta un POST autorizado con cuerpo JSON.
func (c *Client) Post(ctx context.Context, op, path string, body, out any) error {
	return c.do(ctx, op, http.MethodPost, path, nil, body, out, true)
}

// Put ejecuta un PUT autorizado con cuerpo JSON.
func (c *Client) Put(ctx context.Context, op, path string, body, out any) error {
	return c.do(ctx, op, http.MethodPut, path, nil, body, out, true)
}

// Delete ejecuta un DELETE autorizado.
func (c *Client) Delete(ctx context.Context, op, path string) error {
	return c.do(ctx, op, http.MethodDelete, path, nil, nil, nil, true)
}

// PublicGet ejecuta un GET sin exigir sesión (lecturas públicas, como el
// contenido promocional del sitio).
func (c *Client) PublicGet(ctx context.Context, op, path string, query url.Values, out any) error {
	return c.do(ctx, op, http.MethodGet, path, query, nil, out, false)
}

// PublicPost ejecuta un POST sin sesión (login, registro, recuperación).
func (c *Client) PublicPost(ctx context.Context, op, path string, body, out any) error {
	return c.do(ctx, op, http.MethodPost, path, nil, body, out, false)
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any, authorized bool) error {
	var auth string
	if authorized {
		// Guardia local: sin token no se intenta la llamada.
		auth = c.AuthHeader()
		if auth == "" {
			return fmt.Errorf("%w: inicie sesión para continuar", domain.ErrUnauthorized)
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: codificar cuerpo: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return fmt.Errorf("%s: crear petición: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: no se pudo contactar al servidor", domain.ErrNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp, op)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s: decodificar respuesta: %w", op, err)
		}
	}
	return nil
}

// PostMultipart envía un formulario multipart autorizado (subida de imágenes
// en altas/ediciones de catálogo). fields son los campos planos; el archivo
// viaja bajo fileField.
func (c *Client) PostMultipart(ctx context.Context, op, path string, fields map[string]string, fileField, fileName string, file io.Reader, out any) error {
	auth := c.AuthHeader()
	if auth == "" {
		return fmt.Errorf("%w: inicie sesión para continuar", domain.ErrUnauthorized)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("%s: armar formulario: %w", op, err)
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			return fmt.Errorf("%s: armar formulario: %w", op, err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return fmt.Errorf("%s: copiar archivo: %w", op, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%s: cerrar formulario: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), &buf)
	if err != nil {
		return fmt.Errorf("%s: crear petición: %w", op, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", auth)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: no se pudo contactar al servidor", domain.ErrNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp, op)
	}
	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s: decodificar respuesta: %w", op, err)
		}
	}
	return nil
}

// decodeError extrae el mensaje del servidor si viene en el cuerpo; si no,
// sintetiza uno con el estado HTTP y el nombre de la operación. Ese mensaje
// es el que ve el usuario final.
func decodeError(resp *http.Response, op string) error {
	msg := ""
	var body dto.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		msg = body.Message
	}
	if msg == "" {
		msg = fmt.Sprintf("operación %s: estado HTTP %d", op, resp.StatusCode)
	}

	var sentinel error
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		sentinel = domain.ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		sentinel = domain.ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		sentinel = domain.ErrInvalidInput
	default:
		sentinel = domain.ErrServer
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}
