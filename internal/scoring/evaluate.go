package scoring

import (
	"slices"

	"go.uber.org/zap"

	"github.com/spigell/job-advisor/internal/advisor"
)

// Advice is one recommended advice card: the module that produced it, its
// score and the optional presentation payload its model computed.
type Advice struct {
	ID             string  `json:"id"`
	Title          string  `json:"title,omitempty"`
	Score          float64 `json:"score"`
	OffersIncrease float64 `json:"offers_increase,omitempty"`
	ExtraData      any     `json:"extra_data,omitempty"`
}

// EvaluateModules scores the advice catalog against one context and returns
// the recommended cards, best first. A module is recommended when all its
// trigger models score positive and its own scoring model does too; an
// unset or unresolvable scoring model falls back to the default model, so a
// triggered module is never silently dropped by a configuration typo.
func EvaluateModules(p *Context, modules []*advisor.AdviceModule) []*Advice {
	scorer := NewScorer(p.registry, p, p.logger)

	advices := make([]*Advice, 0, len(modules))
	for _, module := range modules {
		if !scorer.Passes(module.Triggers) {
			p.logger.Debug("advice module filtered out", zap.String("module", module.ID))
			continue
		}
		score := scorer.GetScore(module.ScoringModel)
		if score.Value <= 0 {
			p.logger.Debug("advice module scored zero", zap.String("module", module.ID))
			continue
		}
		p.logger.Debug("advice module recommended",
			zap.String("module", module.ID), zap.Float64("score", score.Value))

		advice := &Advice{
			ID:             module.ID,
			Title:          module.Title,
			Score:          score.Value,
			OffersIncrease: score.OffersIncrease,
		}
		if model := p.registry.Resolve(module.ScoringModel); model != nil {
			advice.ExtraData = ComputeExtraData(model, p)
		}
		advices = append(advices, advice)
	}

	slices.SortStableFunc(advices, func(a, b *Advice) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	return advices
}
