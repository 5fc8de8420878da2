package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Rshep3087/fintui/api"
	"github.com/Rshep3087/fintui/dashboard"
)

// AIProvider suggests a category for a transaction.
type AIProvider interface {
	// RecommendCategory picks one of categories for t, with a confidence
	// score between 0 and 100.
	RecommendCategory(ctx context.Context, t api.Transaction, categories []string) (*CategoryRecommendation, error)
}

// CategoryRecommendation is a suggested category and why it was picked.
type CategoryRecommendation struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// AIRecommendationMsg carries a finished suggestion.
type AIRecommendationMsg struct {
	Recommendation *CategoryRecommendation
	Error          error
	TransactionID  int64
}

// AIRecommender wraps an optional provider; without one it does nothing.
type AIRecommender struct {
	provider AIProvider
}

func NewAIRecommender(provider AIProvider) *AIRecommender {
	return &AIRecommender{provider: provider}
}

func (r *AIRecommender) IsEnabled() bool {
	return r != nil && r.provider != nil
}

// Recommend calls the provider with the expense categories.
func (r *AIRecommender) Recommend(ctx context.Context, t api.Transaction) (*CategoryRecommendation, error) {
	if !r.IsEnabled() {
		return nil, errSuggestionsDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, aiRecommendationTimeout)
	defer cancel()

	rec, err := r.provider.RecommendCategory(ctx, t, dashboard.ExpenseCategories)
	if err != nil {
		log.Error("category suggestion failed", "error", err, "description", t.Description)
		return nil, err
	}

	log.Debug("category suggested", "category", rec.Category, "confidence", rec.Confidence)
	return rec, nil
}

// RecommendCmd runs Recommend as a tea.Cmd.
func (r *AIRecommender) RecommendCmd(t api.Transaction) tea.Cmd {
	if !r.IsEnabled() {
		return nil
	}

	return func() tea.Msg {
		rec, err := r.Recommend(context.Background(), t)
		return AIRecommendationMsg{Recommendation: rec, Error: err, TransactionID: t.ID}
	}
}

var errSuggestionsDisabled = errors.New("category suggestions need an Anthropic API key")

// suggestCategory asks for a category for the selected history row.
func (m *model) suggestCategory(row dashboard.LedgerRow) tea.Cmd {
	if !m.aiRecommender.IsEnabled() {
		m.setError(errSuggestionsDisabled.Error())
		return nil
	}

	m.setStatus(fmt.Sprintf("Suggesting a category for %q...", row.Description))
	return m.aiRecommender.RecommendCmd(api.Transaction{
		ID:          row.ID,
		Name:        row.Description,
		Description: row.Description,
		Category:    row.Category,
	})
}

func (m model) handleAIRecommendation(msg AIRecommendationMsg) (tea.Model, tea.Cmd) {
	if msg.Error != nil {
		m.setError(fmt.Sprintf("Could not suggest a category: %v", msg.Error))
		return m, nil
	}

	m.setStatus(formatRecommendation(msg.TransactionID, msg.Recommendation))
	return m, nil
}

func formatRecommendation(id int64, rec *CategoryRecommendation) string {
	return fmt.Sprintf("#%d: %s (%.0f%%) %s", id, rec.Category, rec.Confidence, rec.Reasoning)
}

// describeTransaction is the transaction as the model sees it.
func describeTransaction(t api.Transaction) string {
	var sb strings.Builder
	sb.WriteString("Transaction:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", t.Name)
	if t.Description != "" && t.Description != t.Name {
		fmt.Fprintf(&sb, "- Description: %s\n", t.Description)
	}
	if amount := t.Amount(); amount != 0 {
		fmt.Fprintf(&sb, "- Amount: %.2f\n", amount)
	}
	if !t.Date.IsZero() {
		fmt.Fprintf(&sb, "- Date: %s\n", t.Date)
	}
	return sb.String()
}

func describeCategories(categories []string) string {
	var sb strings.Builder
	sb.WriteString("Categories:\n")
	for _, c := range categories {
		fmt.Fprintf(&sb, "- %s\n", c)
	}
	return sb.String()
}
