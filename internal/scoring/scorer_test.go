package scoring

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// countingModel records how many times it was evaluated.
type countingModel struct {
	calls int
}

func (m *countingModel) Score(*Context) Score {
	m.calls++
	return Score{Value: 2}
}

func TestScorerEvaluatesEachModelOnce(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	counting := &countingModel{}
	r.Register("counting", counting)

	s := NewScorer(r, newTestContext(t, nil, nil), zap.NewNop())
	for range 3 {
		if got := s.GetScore("counting").Value; got != 2 {
			t.Fatalf("expected score 2, got %v", got)
		}
	}
	if counting.calls != 1 {
		t.Fatalf("expected a single evaluation, got %d", counting.calls)
	}
}

func TestScorerFallsBackToDefaultWithOneWarning(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.WarnLevel)
	s := NewScorer(NewRegistry(), newTestContext(t, nil, nil), zap.New(core))

	first := s.GetScore("no-such-model")
	if first.Value <= 0 || first.Value > 3 {
		t.Fatalf("expected a default score in (0, 3], got %v", first.Value)
	}
	if second := s.GetScore("no-such-model"); second != first {
		t.Fatalf("expected the fallback score to be cached, got %v then %v", first, second)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected exactly one warning, got %d", logs.Len())
	}
}

func TestDefaultModelScoreRange(t *testing.T) {
	t.Parallel()

	p := newTestContext(t, nil, nil)
	for range 100 {
		s := NewScorer(NewRegistry(), p, zap.NewNop())
		if got := s.GetScore("").Value; got <= 0 || got > 3 {
			t.Fatalf("expected a default score in (0, 3], got %v", got)
		}
	}
}

func TestPasses(t *testing.T) {
	t.Parallel()

	s := NewScorer(NewRegistry(), newTestContext(t, nil, nil), zap.NewNop())

	if !s.Passes(nil) {
		t.Fatalf("expected an empty filter list to pass")
	}
	// The test subject lives in departement 31.
	if !s.Passes([]string{"for-departement(31, 75)"}) {
		t.Fatalf("expected the departement filter to pass")
	}
	if s.Passes([]string{"for-departement(75)"}) {
		t.Fatalf("expected the departement filter to reject")
	}
	if s.Passes([]string{"for-departement(31)", "constant(0)"}) {
		t.Fatalf("expected one failing filter to reject the whole list")
	}
}

func TestFilterByScorePreservesOrder(t *testing.T) {
	t.Parallel()

	filters := map[string][]string{
		"a": {"constant(1)"},
		"b": {"constant(0)"},
		"c": nil,
	}
	s := NewScorer(NewRegistry(), newTestContext(t, nil, nil), zap.NewNop())

	var kept []string
	for item := range FilterByScore([]string{"a", "b", "c"}, func(i string) []string { return filters[i] }, s) {
		kept = append(kept, item)
	}
	if len(kept) != 2 || kept[0] != "a" || kept[1] != "c" {
		t.Fatalf("expected [a c], got %v", kept)
	}
}

func TestFilterByScoreIsLazy(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	counting := &countingModel{}
	r.Register("counting", counting)

	filters := map[string][]string{
		"a": nil,
		"b": {"counting"},
	}
	s := NewScorer(r, newTestContext(t, nil, nil), zap.NewNop())

	for range FilterByScore([]string{"a", "b"}, func(i string) []string { return filters[i] }, s) {
		break
	}
	if counting.calls != 0 {
		t.Fatalf("expected no evaluation past the consumed prefix, got %d", counting.calls)
	}
}
