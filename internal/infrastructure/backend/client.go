// Package backend implementa los puertos de lectura sobre la API REST del
// backend de la tienda (transacciones, usuarios, productos y deudas).
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	pathTransactions = "/transactions"
	pathSellers      = "/users/store"
	pathProducts     = "/products/products"
	pathDebts        = "/debts"

	maxBodyBytes = 32 << 20
)

// Config parámetros de conexión al backend.
type Config struct {
	BaseURL   string        // ej: http://localhost:3500
	Timeout   time.Duration // timeout por petición; 0 = 15 s
	AuthToken string        // opcional, se envía como Bearer
}

// Client cliente HTTP compartido por los cuatro repositorios.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// NewClient construye el cliente. Devuelve error si BaseURL no es una URL absoluta.
func NewClient(cfg Config) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend: BACKEND_BASE_URL inválida: %q", cfg.BaseURL)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(u.String(), "/"),
		authToken:  cfg.AuthToken,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// getList hace GET {base}{path}?storeId= y decodifica un arreglo JSON en out.
// Un cuerpo null se trata como arreglo vacío.
func (c *Client) getList(ctx context.Context, path, storeID string, out interface{}) error {
	endpoint := c.baseURL + path + "?" + url.Values{"storeId": {storeID}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("backend: crear request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("backend: %s cancelado: %w", path, ctx.Err())
		}
		return fmt.Errorf("backend: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("backend: leer respuesta %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("backend: GET %s HTTP %d: %s", path, resp.StatusCode, truncate(string(body), 200))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("backend: deserializar %s: %w", path, err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
