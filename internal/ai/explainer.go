package ai

import (
	"context"

	"github.com/spigell/job-advisor/internal/advisor"
	"github.com/spigell/job-advisor/internal/scoring"
)

// Explanation is a natural-language rationale for one recommended advice.
type Explanation struct {
	Summary string
	Details string
	Raw     string
}

// Explainer turns a scored advice into a short explanation for the seeker.
type Explainer interface {
	Explain(ctx context.Context, subject *advisor.Subject, advice *scoring.Advice) (*Explanation, error)
}
