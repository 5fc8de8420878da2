package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/charmbracelet/log"

	"github.com/Rshep3087/fintui/api"
)

const anthropicModel = "claude-3-5-haiku-latest"

// AnthropicProvider implements AIProvider with the Anthropic Messages API.
type AnthropicProvider struct {
	client *anthropic.Client
}

func NewAnthropicProvider(apiKey string) *AnthropicProvider {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicProvider{client: &client}
}

func (p *AnthropicProvider) RecommendCategory(
	ctx context.Context,
	t api.Transaction,
	categories []string,
) (*CategoryRecommendation, error) {
	log.Debug("requesting category suggestion", "name", t.Name)

	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropicModel,
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(categoryPrompt(t, categories))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call Anthropic API: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		text.WriteString(block.Text)
	}
	if text.Len() == 0 {
		return nil, errors.New("empty response from Anthropic API")
	}

	rec, err := parseRecommendation(text.String(), categories)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return rec, nil
}

func categoryPrompt(t api.Transaction, categories []string) string {
	return fmt.Sprintf(`Pick the category that best fits this personal expense.

%s
%s
Reply with only a JSON object:
{"category": "<one of the categories above>", "confidence": <0-100>, "reasoning": "<one sentence>"}

Use "Other" with a low confidence if nothing fits.`, describeTransaction(t), describeCategories(categories))
}

// parseRecommendation reads the JSON object in response and matches its
// category against categories, ignoring case.
func parseRecommendation(response string, categories []string) (*CategoryRecommendation, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end < start {
		return nil, fmt.Errorf("no JSON object in %q", response)
	}

	var rec CategoryRecommendation
	if err := json.Unmarshal([]byte(response[start:end+1]), &rec); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	name := strings.TrimSpace(rec.Category)
	matched := ""
	for _, c := range categories {
		if strings.EqualFold(c, name) {
			matched = c
			break
		}
	}
	if matched == "" {
		return nil, fmt.Errorf("unknown category %q", rec.Category)
	}
	rec.Category = matched

	rec.Confidence = max(0, min(rec.Confidence, maxConfidenceScore))
	rec.Reasoning = strings.TrimSpace(rec.Reasoning)
	return &rec, nil
}
