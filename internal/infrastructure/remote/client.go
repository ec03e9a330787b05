// Package remote implementa el pass-through opcional hacia un backend HTTP.
// Se activa solo cuando hay una base URL configurada; una petición en vuelo
// por operación, sin reintentos.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cafeteriasoma/soma-api/internal/domain"
)

// Client cliente HTTP mínimo contra el backend remoto.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente para la base URL indicada (sin slash final).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// doJSON ejecuta la petición y decodifica la respuesta JSON en out (out nil =
// descartar cuerpo). Fallos de red o 5xx se reportan como ErrRemoteUnavailable;
// 401 como ErrUnauthorized; 404 como ErrNotFound.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("remote: serializar petición: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("remote: construir petición: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrRemoteUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s %s: status %d", domain.ErrRemoteUnavailable, method, path, resp.StatusCode)
	case resp.StatusCode >= 400:
		return fmt.Errorf("remote: %s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decodificar respuesta: %v", domain.ErrRemoteUnavailable, err)
	}
	return nil
}
