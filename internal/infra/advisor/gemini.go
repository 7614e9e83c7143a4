// Package advisor asks a generative model for a flash-sale strategy.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"flashsale-scheduler/internal/domain/product"
	"flashsale-scheduler/internal/domain/schedule"
	"flashsale-scheduler/internal/pkg/config"
	"flashsale-scheduler/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

var (
	ErrNotConfigured     = errs.New("advisor api key not configured")
	ErrUnexpectedStatus  = errs.New("unexpected advisor response status")
	ErrInvalidSuggestion = errs.New("advisor returned an unusable suggestion")
)

const promptTemplate = `Act as an e-commerce pricing expert for Mercado Libre Mexico.
Product:
Name: %s
Current price: $%s MXN
Category: %s
Stock: %d

My goal is: %q.

Suggest a flash sale strategy. Return ONLY a JSON object with the suggestion.`

// responseSchema constrains the model output to the suggestion shape.
var responseSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"reasoning":              map[string]any{"type": "STRING", "description": "Short explanation of the strategy (max 15 words)"},
		"suggestedType":          map[string]any{"type": "STRING", "enum": []string{"percentage", "fixed"}},
		"suggestedValue":         map[string]any{"type": "NUMBER", "description": "Discount value (20 for 20%, or an amount in pesos)"},
		"suggestedDurationHours": map[string]any{"type": "NUMBER", "description": "Suggested duration in hours"},
	},
	"required": []string{"reasoning", "suggestedType", "suggestedValue", "suggestedDurationHours"},
}

type GeminiAdvisor struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewGeminiAdvisor(cfg config.AdvisorConfig, logger *slog.Logger) *GeminiAdvisor {
	return &GeminiAdvisor{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

func (g *GeminiAdvisor) Suggest(ctx context.Context, p product.Product, goal string) (schedule.Suggestion, error) {
	if g.apiKey == "" {
		return schedule.Suggestion{}, ErrNotConfigured
	}

	payload, err := json.Marshal(map[string]any{
		"contents": []any{
			map[string]any{"parts": []any{map[string]any{"text": buildPrompt(p, goal)}}},
		},
		"generationConfig": map[string]any{
			"responseMimeType": "application/json",
			"responseSchema":   responseSchema,
		},
	})
	if err != nil {
		return schedule.Suggestion{}, errs.Wrap(err, "encode advisor request")
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return schedule.Suggestion{}, errs.Wrap(err, "build advisor request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.http.Do(req)
	if err != nil {
		return schedule.Suggestion{}, errs.Wrap(err, "call advisor")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return schedule.Suggestion{}, errs.Wrap(err, "read advisor response")
	}
	if resp.StatusCode != http.StatusOK {
		return schedule.Suggestion{}, errs.Wrap(ErrUnexpectedStatus, fmt.Sprintf("%d %s", resp.StatusCode, gjson.GetBytes(body, "error.message").String()))
	}

	text := gjson.GetBytes(body, "candidates.0.content.parts.0.text").String()
	if text == "" {
		return schedule.Suggestion{}, errs.Wrap(ErrInvalidSuggestion, "empty response text")
	}

	suggestion, err := ParseSuggestion(text)
	if err != nil {
		return schedule.Suggestion{}, err
	}
	g.logger.Debug("advisor suggestion", "product_id", p.ID(), "type", suggestion.Type, "value", suggestion.Value.String())
	return suggestion, nil
}

// ParseSuggestion validates the model's JSON answer.
func ParseSuggestion(text string) (schedule.Suggestion, error) {
	if !gjson.Valid(text) {
		return schedule.Suggestion{}, errs.Wrap(ErrInvalidSuggestion, "response is not JSON")
	}
	res := gjson.Parse(text)

	kind, err := schedule.NewType(res.Get("suggestedType").String())
	if err != nil {
		return schedule.Suggestion{}, errs.Mark(err, ErrInvalidSuggestion)
	}

	valueField := res.Get("suggestedValue")
	if valueField.Type != gjson.Number {
		return schedule.Suggestion{}, errs.Wrap(ErrInvalidSuggestion, "suggestedValue is not a number")
	}
	value, err := decimal.NewFromString(valueField.String())
	if err != nil || value.IsNegative() {
		return schedule.Suggestion{}, errs.Wrap(ErrInvalidSuggestion, "suggestedValue out of range")
	}
	if kind == schedule.TypePercentage && value.GreaterThan(decimal.NewFromInt(100)) {
		return schedule.Suggestion{}, errs.Wrap(ErrInvalidSuggestion, "percentage above 100")
	}

	hours := res.Get("suggestedDurationHours").Float()
	if hours <= 0 {
		return schedule.Suggestion{}, errs.Wrap(ErrInvalidSuggestion, "duration must be positive")
	}

	return schedule.Suggestion{
		Reasoning: res.Get("reasoning").String(),
		Type:      kind,
		Value:     value,
		Duration:  time.Duration(hours * float64(time.Hour)),
	}, nil
}

func buildPrompt(p product.Product, goal string) string {
	return fmt.Sprintf(promptTemplate, p.Title(), p.OriginalPrice().String(), p.Category(), p.Stock(), goal)
}
