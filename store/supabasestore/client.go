// Package supabasestore implementa el contrato de store contra la API REST
// de Supabase (PostgREST). El cliente se construye explícitamente desde la
// configuración y se inyecta; no hay singleton global.
package supabasestore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"context"

	"github.com/genexamen/genexamen-backend/store"
)

type Client struct {
	baseURL string // <STORE_URL>/rest/v1
	apiKey  string
	httpc   *http.Client
}

// NewClient arma el cliente REST. storeURL es la URL base del proyecto
// (sin /rest/v1) y apiKey es la service key o, en su defecto, la anon key.
func NewClient(storeURL, apiKey string, policy RetryPolicy) (*Client, error) {
	if storeURL == "" || apiKey == "" {
		return nil, fmt.Errorf("supabasestore: faltan STORE_URL y/o STORE_SERVICE_KEY/STORE_ANON_KEY")
	}
	return &Client{
		baseURL: strings.TrimRight(storeURL, "/") + "/rest/v1",
		apiKey:  apiKey,
		httpc: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &retryTransport{
				base:   http.DefaultTransport,
				policy: policy,
			},
		},
	}, nil
}

// New construye el Store completo sobre el cliente REST.
func New(c *Client) *store.Store {
	return &store.Store{
		Carreras:    &carreraRepo{c},
		Asignaturas: &asignaturaRepo{c},
		Partidas:    &partidaRepo{c},
		Programas:   &programaRepo{c},
		Unidades:    &unidadRepo{c},
		Preguntas:   &preguntaRepo{c},
		Opciones:    &opcionRepo{c},
	}
}

// Ping verifica que la API REST responda. Se usa en el healthcheck.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 500 {
		return fmt.Errorf("supabasestore: ping status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
}

func (c *Client) do(ctx context.Context, method, tabla string, query url.Values, accept, prefer string, payload any) ([]byte, int, error) {
	endpoint := c.baseURL + "/" + tabla
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, 0, err
	}
	c.setHeaders(req)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return raw, resp.StatusCode, nil
}

// selectList hace un GET y decodifica la lista de filas en dest.
func (c *Client) selectList(ctx context.Context, op, tabla string, query url.Values, dest any) error {
	raw, status, err := c.do(ctx, http.MethodGet, tabla, query, "", "", nil)
	if err != nil {
		return &store.StoreError{Op: op, Tabla: tabla, Err: err}
	}
	if status >= 400 {
		return statusError(op, tabla, status, raw)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return &store.StoreError{Op: op, Tabla: tabla, Err: err}
	}
	return nil
}

// selectSingle pide exactamente una fila (Accept de objeto de PostgREST).
// Cero filas se traduce a store.ErrNotFound.
func (c *Client) selectSingle(ctx context.Context, op, tabla string, query url.Values, dest any) error {
	raw, status, err := c.do(ctx, http.MethodGet, tabla, query, "application/vnd.pgrst.object+json", "", nil)
	if err != nil {
		return &store.StoreError{Op: op, Tabla: tabla, Err: err}
	}
	if status == http.StatusNotFound || status == http.StatusNotAcceptable {
		return store.ErrNotFound
	}
	if status >= 400 {
		return statusError(op, tabla, status, raw)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return &store.StoreError{Op: op, Tabla: tabla, Err: err}
	}
	return nil
}

// insert hace un POST con return=representation y decodifica la fila creada.
func (c *Client) insert(ctx context.Context, tabla string, payload any, dest any) error {
	raw, status, err := c.do(ctx, http.MethodPost, tabla, nil, "", "return=representation", payload)
	if err != nil {
		return &store.StoreError{Op: "create", Tabla: tabla, Err: err}
	}
	if status >= 400 {
		return statusError("create", tabla, status, raw)
	}
	return decodeFirst(raw, dest, "create", tabla)
}

// patch hace un PATCH filtrado y decodifica la fila actualizada.
// Una representación vacía significa que el id no existe.
func (c *Client) patch(ctx context.Context, tabla string, query url.Values, patch any, dest any) error {
	raw, status, err := c.do(ctx, http.MethodPatch, tabla, query, "", "return=representation", patch)
	if err != nil {
		return &store.StoreError{Op: "update", Tabla: tabla, Err: err}
	}
	if status == http.StatusNotFound {
		return store.ErrNotFound
	}
	if status >= 400 {
		return statusError("update", tabla, status, raw)
	}
	return decodeFirst(raw, dest, "update", tabla)
}

func (c *Client) remove(ctx context.Context, tabla string, query url.Values) error {
	raw, status, err := c.do(ctx, http.MethodDelete, tabla, query, "", "return=representation", nil)
	if err != nil {
		return &store.StoreError{Op: "delete", Tabla: tabla, Err: err}
	}
	if status == http.StatusNotFound {
		return store.ErrNotFound
	}
	if status >= 400 {
		return statusError("delete", tabla, status, raw)
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return &store.StoreError{Op: "delete", Tabla: tabla, Err: err}
	}
	if len(rows) == 0 {
		return store.ErrNotFound
	}
	return nil
}

// decodeFirst toma el primer elemento de la representación devuelta.
func decodeFirst(raw []byte, dest any, op, tabla string) error {
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return &store.StoreError{Op: op, Tabla: tabla, Err: err}
	}
	if len(rows) == 0 {
		return store.ErrNotFound
	}
	if err := json.Unmarshal(rows[0], dest); err != nil {
		return &store.StoreError{Op: op, Tabla: tabla, Err: err}
	}
	return nil
}

func statusError(op, tabla string, status int, raw []byte) error {
	msg := strings.TrimSpace(string(raw))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return &store.StoreError{
		Op:    op,
		Tabla: tabla,
		Err:   fmt.Errorf("status %d: %s", status, msg),
	}
}

func eqID(column string, id int64) url.Values {
	q := url.Values{}
	q.Set(column, fmt.Sprintf("eq.%d", id))
	return q
}

func withPage(q url.Values, limit, offset int) url.Values {
	if q == nil {
		q = url.Values{}
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", limit))
	}
	if offset > 0 {
		q.Set("offset", fmt.Sprintf("%d", offset))
	}
	return q
}
