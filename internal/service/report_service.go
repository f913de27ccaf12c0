package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/mindtrace/bpdscreen/config"
	"github.com/mindtrace/bpdscreen/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// ReportService composes the clinician-facing note attached when a user
// sends results to a specialist. Generation goes through Gemini; when the
// client is unavailable or the call fails, a deterministic template note is
// produced instead so the feature never blocks on the LLM.
type ReportService interface {
	SpecialistNote(ctx context.Context, result *model.TestResult) (note string, source string, err error)
}

type reportService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewReportService(cfg *config.Config) (ReportService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Specialist notes will use the template fallback.")
		return &reportService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &reportService{client: model, cfg: cfg}, nil
}

func (s *reportService) SpecialistNote(ctx context.Context, result *model.TestResult) (string, string, error) {
	if s.client == nil {
		return templateNote(result), "template", nil
	}

	prompt := buildNotePrompt(result)
	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Str("resultID", result.ID).Msg("SpecialistNote: Gemini call failed, using template fallback")
		return templateNote(result), "template", nil
	}

	text := extractText(resp)
	if text == "" {
		log.Warn().Str("resultID", result.ID).Msg("SpecialistNote: empty Gemini response, using template fallback")
		return templateNote(result), "template", nil
	}
	return text, "ai", nil
}

func buildNotePrompt(result *model.TestResult) string {
	var b strings.Builder
	b.WriteString("You are assisting a mental health specialist reviewing a self-administered ")
	b.WriteString("BPD symptom screening (DSM-5-style criteria, 0-4 ordinal scale per item).\n")
	b.WriteString("Write a short, neutral intake note (max 150 words) summarizing the profile below. ")
	b.WriteString("Do not diagnose; highlight the dimensions with the highest load.\n\n")
	fmt.Fprintf(&b, "Total score: %.1f (severity band: %s)\n", result.TotalScore, result.Severity)
	b.WriteString("Per-dimension scores:\n")
	for _, line := range scoreLines(result.CategoryScores) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// templateNote is the deterministic fallback used when no LLM is available.
func templateNote(result *model.TestResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Self-administered BPD screening completed %s.\n", result.CompletedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "Total score %.1f, severity band: %s.\n", result.TotalScore, result.Severity)
	b.WriteString("Per-dimension scores:\n")
	for _, line := range scoreLines(result.CategoryScores) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("Screening instrument output; not a diagnosis.")
	return b.String()
}

func scoreLines(scores model.ScoreMap) []string {
	categories := make([]string, 0, len(scores))
	for c := range scores {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	lines := make([]string, 0, len(categories))
	for _, c := range categories {
		lines = append(lines, fmt.Sprintf("  - %s: %.1f", strings.ReplaceAll(c, "_", " "), scores[c]))
	}
	return lines
}

func extractText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(b.String())
}
