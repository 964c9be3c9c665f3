package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/job-advisor/internal/advisor"
	"github.com/spigell/job-advisor/internal/ai"
	"github.com/spigell/job-advisor/internal/logger"
	"github.com/spigell/job-advisor/internal/scoring"
)

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Explainer produces natural-language rationales for recommended advices
// through a Gemini content generator.
type Explainer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewExplainer(generator contentGenerator, maxLogLength int, log *zap.Logger) *Explainer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Explainer{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

func (e *Explainer) Explain(ctx context.Context, subject *advisor.Subject, advice *scoring.Advice) (*ai.Explanation, error) {
	if subject == nil {
		return nil, fmt.Errorf("subject is required")
	}
	if advice == nil {
		return nil, fmt.Errorf("advice is required")
	}

	subjectJSON, err := json.MarshalIndent(subject, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal subject payload: %w", err)
	}

	adviceJSON, err := json.MarshalIndent(advice, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal advice payload: %w", err)
	}

	prompt := buildPrompt(string(subjectJSON), string(adviceJSON))

	e.logger.Debug("gemini explain request",
		zap.String("advice_id", advice.ID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, e.maxLogLen)),
	)

	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("gemini explain response",
		zap.String("advice_id", advice.ID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, e.maxLogLen)),
	)

	explanation, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	explanation.Raw = raw
	return explanation, nil
}

func buildPrompt(subjectJSON, adviceJSON string) string {
	prompt := strings.ReplaceAll(promptTemplate, "{{SUBJECT_JSON}}", subjectJSON)
	return strings.ReplaceAll(prompt, "{{ADVICE_JSON}}", adviceJSON)
}

func parseResponse(raw string) (*ai.Explanation, error) {
	cleaned := extractJSON(raw)

	var data struct {
		Summary string `json:"summary"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	summary := strings.TrimSpace(data.Summary)
	if summary == "" {
		return nil, fmt.Errorf("gemini response has no summary")
	}

	return &ai.Explanation{
		Summary: summary,
		Details: strings.TrimSpace(data.Details),
	}, nil
}

// extractJSON strips a markdown code fence when the model wraps its answer
// in one.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
