package scoring

import (
	"math"
	"testing"

	"github.com/spigell/job-advisor/internal/advisor"
	"github.com/spigell/job-advisor/internal/store"
)

func TestStableRandomIsStablePerSubjectAndModel(t *testing.T) {
	t.Parallel()

	p := newTestContext(t, nil, nil)
	first := StableRandom(p, "strategy-use-network")
	if second := StableRandom(p, "strategy-use-network"); second != first {
		t.Fatalf("expected a stable value, got %v then %v", first, second)
	}
	if other := StableRandom(p, "strategy-resume"); other == first {
		t.Fatalf("expected different models to diverge, both got %v", first)
	}

	otherSubject := testSubject()
	otherSubject.Project.ID = "another-project"
	q := newTestContext(t, otherSubject, nil)
	if other := StableRandom(q, "strategy-use-network"); other == first {
		t.Fatalf("expected different subjects to diverge, both got %v", first)
	}
}

func TestJobGroupFilter(t *testing.T) {
	t.Parallel()

	model := NewJobGroupFilter([]string{"A12", "M16"})
	p := newTestContext(t, nil, nil) // targets job group A1234

	if got := model.Score(p).Value; got != 3 {
		t.Fatalf("expected the prefix A12 to match A1234, got score %v", got)
	}

	other := testSubject()
	other.Project.TargetJob.JobGroup.RomeID = "B9999"
	q := newTestContext(t, other, nil)
	if got := model.Score(q).Value; got != 0 {
		t.Fatalf("expected B9999 to be rejected, got score %v", got)
	}
}

func TestActiveExperimentFilter(t *testing.T) {
	t.Parallel()

	subject := testSubject()
	subject.FeaturesEnabled.LBBIntegration = advisor.FeatureActive
	p := newTestContext(t, subject, nil)

	active := &activeExperimentFilter{feature: "lbb_integration"}
	if got := active.Score(p).Value; got != 3 {
		t.Fatalf("expected an active flag to score 3, got %v", got)
	}

	control := &activeExperimentFilter{feature: "alpha"}
	if got := control.Score(p).Value; got != 0 {
		t.Fatalf("expected an unset flag to score 0, got %v", got)
	}

	unknown := &activeExperimentFilter{feature: "no_such_flag"}
	if got := unknown.Score(p).Value; got != 0 {
		t.Fatalf("expected an unknown flag to score 0, got %v", got)
	}
}

func TestPercentToIncrease(t *testing.T) {
	t.Parallel()

	if got := percentToIncrease(0); got != 0 {
		t.Fatalf("expected no increase for 0%%, got %v", got)
	}
	// Unlocking the half of the market currently out of reach doubles the
	// number of reachable offers.
	if got := percentToIncrease(50); math.Abs(got-100) > 1e-9 {
		t.Fatalf("expected a 100%% increase for 50%%, got %v", got)
	}
}

func TestUseNetworkScore(t *testing.T) {
	t.Parallel()

	mem := store.NewMemory()
	mem.Put(store.CollectionLocalStats, "31:A1234", store.Document{
		"imt": map[string]any{
			"yearly_avg_offers_denominator":       10,
			"yearly_avg_offers_per_10_candidates": 4,
		},
	})
	subject := testSubject()
	subject.Project.NetworkEstimate = 5
	p := newTestContext(t, subject, mem)

	// 1 + .5 * (5 - 3) + .5 * 2.5
	if got := (useNetworkModel{}).Score(p).Value; math.Abs(got-3.25) > 1e-9 {
		t.Fatalf("expected 3.25, got %v", got)
	}
}

func TestGetMoreOffersFrustration(t *testing.T) {
	t.Parallel()

	subject := testSubject()
	subject.Profile.Frustrations = []advisor.Frustration{advisor.FrustrationNoOffers}
	p := newTestContext(t, subject, nil)

	if got := (getMoreOffersModel{}).Score(p).Value; got != 4 {
		t.Fatalf("expected the frustration to score 4, got %v", got)
	}
}

func TestIncreaseOffersReportsThePercentage(t *testing.T) {
	t.Parallel()

	subject := testSubject()
	subject.Project.MinSalary = 25000
	p := newTestContext(t, subject, nil)

	model := &increaseOffersModel{increaser: reduceSalaryIncrease{}}
	score := model.Score(p)
	if score.OffersIncrease != staticIncreasePercent {
		t.Fatalf("expected a %v%% increase, got %v", float64(staticIncreasePercent), score.OffersIncrease)
	}
	if math.Abs(score.Value-staticIncreasePercent*scorePerOffersPercent) > 1e-9 {
		t.Fatalf("unexpected score %v", score.Value)
	}
}

func TestApprenticeshipAge(t *testing.T) {
	t.Parallel()

	subject := testSubject()
	subject.Profile.YearOfBirth = 1995 // 22 at the test context's fixed date.
	subject.Project.Seniority = advisor.SeniorityJunior
	p := newTestContext(t, subject, nil)
	if got := (apprenticeshipModel{}).Score(p).Value; got != 3 {
		t.Fatalf("expected a young junior to score 3, got %v", got)
	}

	subject = testSubject()
	subject.Profile.YearOfBirth = 1980
	subject.Project.Seniority = advisor.SeniorityJunior
	q := newTestContext(t, subject, nil)
	if got := (apprenticeshipModel{}).Score(q).Value; got != 0 {
		t.Fatalf("expected an older seeker to score 0, got %v", got)
	}
}

func TestBlueTargetEarlySearch(t *testing.T) {
	t.Parallel()

	subject := testSubject()
	subject.Project.JobSearchLengthMonths = 1
	p := newTestContext(t, subject, nil)

	if got := (blueTargetModel{}).Score(p).Value; got != 5 {
		t.Fatalf("expected a fixed target early in the search, got %v", got)
	}
}

func TestAdviceJobBoardsExtraData(t *testing.T) {
	t.Parallel()

	mem := store.NewMemory()
	mem.Put(store.CollectionJobBoards, "1", store.Document{"title": "Generic"})
	mem.Put(store.CollectionJobBoards, "2", store.Document{
		"title":   "Specific",
		"filters": []any{"for-departement(31)", "for-job-group(A)"},
	})
	p := newTestContext(t, nil, mem)

	data, ok := newAdviceJobBoardsModel().ComputeExtraData(p).(*advisor.JobBoardsData)
	if !ok {
		t.Fatalf("expected job boards data")
	}
	if data.JobBoardTitle != "Specific" {
		t.Fatalf("expected the most specific board, got %q", data.JobBoardTitle)
	}
}

func TestBetterJobInGroupExtraData(t *testing.T) {
	t.Parallel()

	mem := store.NewMemory()
	mem.Put(store.CollectionJobGroups, "A1234", store.Document{
		"rome_id": "A1234",
		"jobs": []any{
			map[string]any{"code_ogr": "10200", "name": "Better job"},
			map[string]any{"code_ogr": "12006", "name": "Target job"},
		},
		"requirements": map[string]any{
			"specific_jobs": []any{
				map[string]any{"code_ogr": "10200", "percent_suggested": 70},
				map[string]any{"code_ogr": "12006", "percent_suggested": 30},
			},
		},
	})
	p := newTestContext(t, nil, mem)

	model := adviceBetterJobInGroupModel{}
	if got := model.Score(p).Value; got != 2 {
		t.Fatalf("expected a strong suggestion, got score %v", got)
	}

	data, ok := model.ComputeExtraData(p).(*advisor.BetterJobInGroupData)
	if !ok {
		t.Fatalf("expected better job data")
	}
	if data.NumBetterJobs != 1 {
		t.Fatalf("expected 1 better job, got %d", data.NumBetterJobs)
	}
	if data.BetterJob == nil || data.BetterJob.Name != "Better job" {
		t.Fatalf("unexpected better job: %+v", data.BetterJob)
	}
}
