package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/smartstock/stockops-api/internal/application/dto"
	"github.com/smartstock/stockops-api/internal/application/ports"
	"github.com/smartstock/stockops-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que GeminiService implementa los puertos.
var _ ports.StockAnalyzer = (*GeminiService)(nil)
var _ ports.TravelEstimator = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// stockPrompt define el rol del modelo y el formato de salida.
	// Usar response_mime_type=application/json obliga a Gemini a devolver JSON puro,
	// eliminando la necesidad de limpiar bloques de markdown.
	stockPrompt = `Eres un analista de inventario de retail.
Dada una lista de productos con su stock y cantidad vendida, devuelve ÚNICAMENTE un objeto JSON (sin texto adicional) con esta estructura exacta:
{
  "high_demand_low_stock": ["<nombre de producto>", ...],
  "low_demand_high_stock": ["<nombre de producto>", ...]
}

Reglas:
- high_demand_low_stock: productos con ventas altas relativas a su stock actual (riesgo de quiebre).
- low_demand_high_stock: productos con stock alto y ventas bajas (capital inmovilizado).
- Usa los nombres tal como aparecen en la lista. Listas vacías si no aplica.`

	travelPrompt = `Eres un estimador logístico. Responde ÚNICAMENTE con el número entero de minutos estimados de viaje por carretera entre el origen y el destino indicados. Sin unidades, sin texto adicional.`
)

// GeminiService adaptador que implementa StockAnalyzer y TravelEstimator
// llamando a la API REST de Google Gemini.
// Usa únicamente la librería estándar de Go (net/http) para no añadir dependencias externas.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-2.0-flash".
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación de los puertos ─────────────────────────────────────────────

// AnalyzeStock envía el inventario a Gemini y devuelve los productos que el
// modelo clasifica como demanda alta/stock bajo y demanda baja/stock alto.
func (s *GeminiService) AnalyzeStock(ctx context.Context, rows []*entity.ProductRow) (*dto.StockInsightsResponse, error) {
	var sb strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&sb, "- %s: stock=%d, vendidos=%d\n", r.Name, r.Stock, r.SalesQuantity)
	}

	raw, err := s.generate(ctx, stockPrompt, sb.String(), "application/json", 512)
	if err != nil {
		return nil, err
	}

	var insights dto.StockInsightsResponse
	if err := json.Unmarshal([]byte(raw), &insights); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w (respuesta: %s)", err, raw)
	}
	if insights.HighDemandLowStock == nil {
		insights.HighDemandLowStock = []string{}
	}
	if insights.LowDemandHighStock == nil {
		insights.LowDemandHighStock = []string{}
	}
	return &insights, nil
}

var firstInteger = regexp.MustCompile(`\d+`)

// EstimateTravelTime pide a Gemini los minutos de viaje entre origen y destino.
// El modelo a veces responde con texto alrededor del número; se extrae el
// primer entero de la respuesta.
func (s *GeminiService) EstimateTravelTime(ctx context.Context, origin, destination string) (int, error) {
	userText := fmt.Sprintf("Origen: %s\nDestino: %s", origin, destination)
	raw, err := s.generate(ctx, travelPrompt, userText, "", 32)
	if err != nil {
		return 0, err
	}
	match := firstInteger.FindString(raw)
	if match == "" {
		return 0, fmt.Errorf("AI: el modelo no devolvió un número (respuesta: %s)", raw)
	}
	minutes, err := strconv.Atoi(match)
	if err != nil {
		return 0, fmt.Errorf("AI: parsear minutos: %w", err)
	}
	return minutes, nil
}

// generate hace la llamada HTTP a Gemini y devuelve el texto del primer candidato.
func (s *GeminiService) generate(ctx context.Context, system, user, mimeType string, maxTokens int) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: system}},
		},
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: user}},
			},
		},
		GenerationConfig: genConfig{
			ResponseMIMEType: mimeType,
			Temperature:      0.2, // baja temperatura para respuestas más deterministas
			MaxOutputTokens:  maxTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}

	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}
