package scoring

import (
	"testing"

	"github.com/spigell/job-advisor/internal/advisor"
)

func TestEvaluateModules(t *testing.T) {
	t.Parallel()

	modules := []*advisor.AdviceModule{
		{ID: "low", ScoringModel: "constant(1)"},
		{ID: "filtered-out", ScoringModel: "constant(3)", Triggers: []string{"for-women"}},
		{ID: "high", ScoringModel: "constant(2.5)"},
		{ID: "scored-zero", ScoringModel: "constant(0)"},
	}

	subject := testSubject()
	subject.Profile.Gender = advisor.Masculine
	p := newTestContext(t, subject, nil)

	advices := EvaluateModules(p, modules)
	if len(advices) != 2 {
		t.Fatalf("expected 2 advices, got %d", len(advices))
	}
	if advices[0].ID != "high" || advices[1].ID != "low" {
		t.Fatalf("expected [high low], got [%s %s]", advices[0].ID, advices[1].ID)
	}
	if advices[0].Score != 2.5 {
		t.Fatalf("expected score 2.5, got %v", advices[0].Score)
	}
}

func TestEvaluateModulesUnsetModelUsesDefault(t *testing.T) {
	t.Parallel()

	modules := []*advisor.AdviceModule{{ID: "bare"}}
	advices := EvaluateModules(newTestContext(t, nil, nil), modules)
	if len(advices) != 1 {
		t.Fatalf("expected the bare module to be recommended, got %d advices", len(advices))
	}
	if advices[0].Score <= 0 || advices[0].Score > 3 {
		t.Fatalf("expected a default score in (0, 3], got %v", advices[0].Score)
	}
}
