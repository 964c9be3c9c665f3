package scoring

import (
	"iter"

	"go.uber.org/zap"
)

// Scorer evaluates models by name against one context, caching every score
// so that a model runs at most once per context. Like the context it wraps,
// a scorer belongs to a single goroutine.
type Scorer struct {
	registry *Registry
	project  *Context
	logger   *zap.Logger

	// scores caches results by model name, including the fallback score
	// stored under unresolvable names so their diagnostic fires only once.
	scores map[string]Score
}

// NewScorer creates a scorer for the given context.
func NewScorer(registry *Registry, project *Context, logger *zap.Logger) *Scorer {
	return &Scorer{
		registry: registry,
		project:  project,
		logger:   logger,
		scores:   make(map[string]Score),
	}
}

// GetScore evaluates the named model against the scorer's context. A name
// that does not resolve falls back to the default model (registered under
// the empty name) after a warning; the fallback score is cached under the
// unresolved name too.
func (s *Scorer) GetScore(name string) Score {
	if score, ok := s.scores[name]; ok {
		return score
	}

	model := s.registry.Resolve(name)
	if model == nil {
		if name == "" {
			// A registry without a default model still has to produce one.
			score := baseModel{}.Score(s.project)
			s.scores[name] = score
			return score
		}
		s.logger.Warn("unknown scoring model, falling back to default", zap.String("model", name))
		score := s.GetScore("")
		s.scores[name] = score
		return score
	}

	score := model.Score(s.project)
	s.scores[name] = score
	return score
}

// Passes reports whether every named model scores strictly positive for the
// scorer's context. An empty list passes.
func (s *Scorer) Passes(names []string) bool {
	for _, name := range names {
		if s.GetScore(name).Value <= 0 {
			return false
		}
	}
	return true
}

// FilterByScore filters items by their scoring-model names, reusing the
// scorer's cache across items. The returned sequence is lazy, single-pass
// and preserves input order.
func FilterByScore[T any](items []T, namesOf func(T) []string, scorer *Scorer) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if scorer.Passes(namesOf(item)) {
				if !yield(item) {
					return
				}
			}
		}
	}
}
