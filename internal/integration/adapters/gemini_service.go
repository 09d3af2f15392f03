package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/finance-tracker/reports-api/internal/application/adapter"
	"github.com/finance-tracker/reports-api/internal/domain/report"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-1.5-flash"

const insightCategoryLimit = 3

var errEmptyInsight = errors.New("empty response from gemini")

// GeminiService implements adapter.InsightService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable reports whether an API key is configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Summarize asks Gemini for a short commentary on a monthly report.
func (s *GeminiService) Summarize(ctx context.Context, monthly *report.MonthlyReport) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}
	if monthly == nil {
		return "", fmt.Errorf("no report to summarize")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.4)
	model.SetMaxOutputTokens(400)

	resp, err := model.GenerateContent(ctx, genai.Text(buildInsightPrompt(monthly)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return responseText(resp)
}

// buildInsightPrompt renders the report figures the model comments on.
// Amounts use two decimals.
func buildInsightPrompt(monthly *report.MonthlyReport) string {
	var sb strings.Builder

	sb.WriteString(`You are a personal finance assistant. Write a short commentary (at most 4 sentences) on the user's month.
Mention whether they saved or overspent, name the largest expense categories, and give one concrete suggestion.
Use plain text only, no markdown and no lists. Do not invent figures that are not listed below.

`)
	fmt.Fprintf(&sb, "PERIOD: %s %d\n", monthly.Period.MonthName, monthly.Period.Year)
	fmt.Fprintf(&sb, "INCOME: %s\n", monthly.Summary.Income.StringFixed(2))
	fmt.Fprintf(&sb, "EXPENSES: %s\n", monthly.Summary.Expenses.StringFixed(2))
	fmt.Fprintf(&sb, "NET: %s\n", monthly.Summary.Net.StringFixed(2))
	fmt.Fprintf(&sb, "TRANSACTIONS: %d\n", monthly.Summary.TransactionCount)

	if goal := monthly.Summary.Goal; goal != nil {
		outcome := "not achieved"
		if goal.Achieved {
			outcome = "achieved"
		}
		fmt.Fprintf(&sb, "SAVINGS GOAL: target %s, progress %s%%, %s\n",
			goal.Target.StringFixed(2), goal.Progress.StringFixed(2), outcome)
	} else {
		sb.WriteString("SAVINGS GOAL: none set\n")
	}

	writeCategories(&sb, "TOP EXPENSE CATEGORIES", monthly.Analytics.TopCategories.Expenses)
	writeCategories(&sb, "TOP INCOME CATEGORIES", monthly.Analytics.TopCategories.Income)

	return sb.String()
}

func writeCategories(sb *strings.Builder, title string, items []report.CategoryAmount) {
	sb.WriteString(title + ":\n")
	if len(items) == 0 {
		sb.WriteString("- none\n")
		return
	}
	if len(items) > insightCategoryLimit {
		items = items[:insightCategoryLimit]
	}
	for _, item := range items {
		fmt.Fprintf(sb, "- %s: %s\n", item.Category, item.Amount.StringFixed(2))
	}
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errEmptyInsight
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errEmptyInsight
	}
	return text, nil
}

var _ adapter.InsightService = (*GeminiService)(nil)
