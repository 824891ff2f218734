// Package client es el acceso a datos del lado cliente: una función de fetch
// y una de mutación por entidad, construidas sobre la misma tabla de contract
// y los mismos modelos que usa el servidor, así cliente y servidor no pueden
// divergir en forma. Las listas se cachean en memoria y cada mutación exitosa
// invalida la lista afectada, de modo que la siguiente lectura ve el cambio.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"baby-tracker/internal/contract"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// APIError es una respuesta no-2xx del servidor, con el ErrorBody decodificado.
type APIError struct {
	Status  int
	Message string
	Field   string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("api error: status=%d field=%s message=%s", e.Status, e.Field, e.Message)
	}
	return fmt.Sprintf("api error: status=%d message=%s", e.Status, e.Message)
}

type Client struct {
	http  *resty.Client
	cache *listCache
}

type Option func(*Client)

// WithSessionToken manda el token como cookie de sesión en cada request.
func WithSessionToken(token string) Option {
	return func(c *Client) {
		c.http.SetCookie(&http.Cookie{Name: "session", Value: token})
	}
}

// WithDebugUser usa el modo dev del servidor (X-Debug-User-ID).
func WithDebugUser(userID string) Option {
	return func(c *Client) {
		c.http.SetHeader("X-Debug-User-ID", userID)
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http:  resty.New().SetBaseURL(baseURL).SetTimeout(10 * time.Second),
		cache: newListCache(),
	}

	// Correlación: un X-Request-ID fresco por request.
	c.http.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do ejecuta el request contra un endpoint del contrato. out debe ser puntero
// al tipo de respuesta esperado (nil para 204). Un body que no decodifica en
// out es un desajuste cliente/servidor y sale como error, nunca se ignora.
func (c *Client) do(ctx context.Context, ep contract.Endpoint, params map[string]any, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	apiErr := &APIError{}
	req.SetError(apiErr)

	resp, err := req.Execute(ep.Method, contract.BuildURL(ep.Path, params))
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", ep.Method, ep.Path, err)
	}

	if resp.StatusCode() != ep.Success {
		apiErr.Status = resp.StatusCode()
		if apiErr.Message == "" {
			apiErr.Message = resp.Status()
		}
		return apiErr
	}
	return nil
}

// SetError decodifica en APIError vía estos tags.
func (e *APIError) UnmarshalJSON(b []byte) error {
	var body contract.ErrorBody
	if err := json.Unmarshal(b, &body); err != nil {
		return err
	}
	e.Message = body.Message
	e.Field = body.Field
	return nil
}

// --- cache de listas ---

type listCache struct {
	mu sync.RWMutex
	m  map[string]any
}

func newListCache() *listCache {
	return &listCache{m: make(map[string]any)}
}

func listKey(path string, babyID int64) string {
	return fmt.Sprintf("%s|%d", path, babyID)
}

func (c *listCache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[key]
	return v, ok
}

func (c *listCache) set(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = v
}

func (c *listCache) invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, key)
}
