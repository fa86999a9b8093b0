package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product fila de producto tal como la ve la consola. Las claves JSON son los
// nombres de columna de la hoja del backend; se consumen tal cual, no se
// rediseñan.
type Product struct {
	Name         string          `json:"Products"`
	Stock        int             `json:"Stock"`
	SellingPrice decimal.Decimal `json:"Selling Price"`
}

// TransferRequest petición de traslado que envía la consola.
type TransferRequest struct {
	WarehouseID string `json:"warehouseId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// TransferResult respuesta autoritativa del backend a un traslado.
type TransferResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	NewStock    int    `json:"newStock"`
	TargetStore string `json:"targetStore"`
}

// Gateway cliente HTTP mínimo hacia el backend de inventario. Sin caché, sin
// dedupe de requests ni reintentos: la política de reintento (si existiera)
// pertenece al caller.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
}

// NewGateway construye el gateway. baseURL sin slash final.
func NewGateway(baseURL string) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListWarehouses trae los IDs de bodega del backend.
func (g *Gateway) ListWarehouses(ctx context.Context) ([]string, error) {
	body, err := g.get(ctx, "/api/warehouses")
	if err != nil {
		return nil, err
	}
	var out struct {
		Warehouses []string `json:"warehouses"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("respuesta inesperada del backend: %v", err)}
	}
	return out.Warehouses, nil
}

// ListProducts trae las filas de una bodega. El backend puede responder un
// array pelado o un objeto {"products": [...]}: ambas formas se normalizan
// aquí y nada aguas abajo ve la diferencia.
func (g *Gateway) ListProducts(ctx context.Context, warehouseID string) ([]Product, error) {
	body, err := g.get(ctx, "/api/products/"+warehouseID)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var products []Product
		if err := json.Unmarshal(trimmed, &products); err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("respuesta inesperada del backend: %v", err)}
		}
		return products, nil
	}

	var wrapped struct {
		Products []Product `json:"products"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("respuesta inesperada del backend: %v", err)}
	}
	return wrapped.Products, nil
}

// SubmitTransfer envía el traslado y devuelve el resultado autoritativo.
// Los fallos nunca se reintentan desde aquí.
func (g *Gateway) SubmitTransfer(ctx context.Context, in TransferRequest) (*TransferResult, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("serializar traslado: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/transfer", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp.StatusCode, body)
	}

	var result TransferResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("respuesta inesperada del backend: %v", err)}
	}
	return &result, nil
}

func (g *Gateway) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp.StatusCode, body)
	}
	return body, nil
}

// decodeError distingue errores estructurados ({"error": msg}, texto verbatim
// para el usuario) de fallos sin mensaje (ServerError genérico).
func decodeError(status int, body []byte) error {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return &ValidationError{Message: envelope.Error}
	}
	return &ServerError{Status: status}
}
