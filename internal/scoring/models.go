package scoring

import (
	"hash/fnv"
	"io"
	"math"
	"math/rand/v2"
	"slices"

	"go.uber.org/zap"

	"github.com/spigell/job-advisor/internal/advisor"
)

// Percent of additional offers assumed for strategies whose data has not
// been analyzed yet: they can help everybody a bit.
const staticIncreasePercent = 15

// baseModel is the default model registered under the empty name. It has no
// business logic: it returns a random value in (0, 3] without looking at the
// context, and exists purely as a safe fallback for unresolvable names.
type baseModel struct{}

func (baseModel) Score(*Context) Score {
	return Score{Value: 3 * (1 - rand.Float64())}
}

// StableRandom returns a pseudo-random number in [0, 1) that is stable per
// (subject, model) pair: the same project id scored by the same model always
// yields the same value, while different projects or models diverge. Models
// that inject randomness as a tie-breaker rather than noise use this.
func StableRandom(p *Context, modelID string) float64 {
	h := fnv.New64a()
	io.WriteString(h, p.Project().ID)
	io.WriteString(h, modelID)
	return rand.New(rand.NewPCG(h.Sum64(), 0)).Float64()
}

// age returns the subject's age in years, or 0 when the birth year is not
// filled in.
func age(p *Context) int {
	year := p.Profile().YearOfBirth
	if year <= 0 {
		return 0
	}
	return p.Now().Year() - year
}

// profileFilter scores 3 when its predicate holds for the subject, 0
// otherwise.
type profileFilter struct {
	fn func(p *Context) bool
}

func (f *profileFilter) Score(p *Context) Score {
	if f.fn(p) {
		return Score{Value: 3}
	}
	return Score{}
}

// projectFilter scores 3 when its predicate holds for the project.
type projectFilter struct {
	fn func(project *advisor.Project) bool
}

func (f *projectFilter) Score(p *Context) Score {
	if f.fn(p.Project()) {
		return Score{Value: 3}
	}
	return Score{}
}

// NewJobGroupFilter creates a filter passing projects whose job group id
// starts with one of the given prefixes.
func NewJobGroupFilter(prefixes []string) Model {
	starts := slices.Clone(prefixes)
	return &projectFilter{fn: func(project *advisor.Project) bool {
		for _, start := range starts {
			if len(project.RomeID()) >= len(start) && project.RomeID()[:len(start)] == start {
				return true
			}
		}
		return false
	}}
}

// NewDepartementFilter creates a filter passing projects located in one of
// the given departements.
func NewDepartementFilter(departements []string) Model {
	set := make(map[string]bool, len(departements))
	for _, d := range departements {
		set[d] = true
	}
	return &projectFilter{fn: func(project *advisor.Project) bool {
		return set[project.Mobility.City.DepartementID]
	}}
}

// negateFilter scores the opposite of another filter. The target is
// resolved once at construction time.
type negateFilter struct {
	target Model
}

func (f *negateFilter) Score(p *Context) Score {
	return Score{Value: 3 - f.target.Score(p).Value}
}

// activeExperimentFilter passes subjects with a feature flag active.
type activeExperimentFilter struct {
	feature string
}

func (f *activeExperimentFilter) Score(p *Context) Score {
	status, ok := p.Features().Status(f.feature)
	if !ok {
		p.Logger().Warn("scoring model refers to a non-existent feature flag",
			zap.String("feature", f.feature))
		return Score{}
	}
	if status == advisor.FeatureActive {
		return Score{Value: 3}
	}
	return Score{}
}

// constantModel always returns the same score.
type constantModel struct {
	value float64
}

func (m *constantModel) Score(*Context) Score {
	return Score{Value: m.value}
}

// offersIncreaser computes the percentage of additional job offers a
// strategy would unlock for a project.
type offersIncreaser interface {
	additionalOffersPercent(p *Context) float64
}

// increaseOffersModel scores proportionally to the offers increase its
// strategy unlocks, and reports that increase alongside the score.
type increaseOffersModel struct {
	increaser offersIncreaser
}

func (m *increaseOffersModel) Score(p *Context) Score {
	percent := m.increaser.additionalOffersPercent(p)
	return Score{Value: percent * scorePerOffersPercent, OffersIncrease: percent}
}

// percentToIncrease converts a share of offers currently out of reach into
// the relative increase unlocking them would bring.
func percentToIncrease(percent float64) float64 {
	return 100/(1-math.Min(percent, 99)/100) - 100
}

// acceptContractTypeIncrease models accepting additional contract types.
type acceptContractTypeIncrease struct {
	types []advisor.EmploymentType
}

func (m *acceptContractTypeIncrease) additionalOffersPercent(p *Context) float64 {
	if p.Project().TargetsEmploymentType(m.types) {
		// The project already targets one of these contract types.
		return 0
	}
	var percent float64
	for _, c := range p.Requirements().ContractTypes {
		if slices.Contains(m.types, c.ContractType) {
			percent += c.PercentSuggested
		}
	}
	return percentToIncrease(percent)
}

// drivingLicenseIncrease models obtaining a driving license.
type drivingLicenseIncrease struct {
	license advisor.DrivingLicense
}

func (m *drivingLicenseIncrease) additionalOffersPercent(p *Context) float64 {
	profile := p.Profile()
	project := p.Project()
	if profile.HasFrustration(advisor.FrustrationHandicaped) || profile.HasHandicap ||
		(project.Mobility.City.DepartementID == "75" &&
			project.Mobility.AreaType <= advisor.AreaDepartement) {
		return 0
	}
	for _, r := range p.Requirements().DrivingLicenses {
		if r.DrivingLicense != m.license {
			continue
		}
		// Employers often forget to mention the requirement, so take the
		// geometric mean of the two estimates we have.
		percentRequired := r.PercentSuggested * r.PercentRequired / 100
		fakePercentRequired := math.Sqrt(percentRequired * r.PercentRequired)
		return percentToIncrease(fakePercentRequired)
	}
	return 0
}

// partTimeIncrease models accepting part-time positions.
type partTimeIncrease struct{}

func (partTimeIncrease) additionalOffersPercent(p *Context) float64 {
	if p.Project().TargetsWorkload(advisor.WorkloadPartTime) {
		return 0
	}
	return staticIncreasePercent
}

// trainingIncrease models planning a training.
type trainingIncrease struct{}

func (trainingIncrease) additionalOffersPercent(p *Context) float64 {
	project := p.Project()
	switch project.TrainingFulfillmentEstimate {
	case advisor.TrainingEnoughDiplomas, advisor.TrainingEnoughExperience, advisor.TrainingCurrentlyIn:
		return 0
	}
	if project.DiplomaFulfillmentEstimate == advisor.DiplomaFulfilled ||
		p.Profile().Situation == advisor.SituationInTraining {
		return 0
	}
	return staticIncreasePercent
}

// reduceSalaryIncrease models lowering salary expectations.
type reduceSalaryIncrease struct{}

func (reduceSalaryIncrease) additionalOffersPercent(p *Context) float64 {
	if p.Project().MinSalary == 0 {
		return 0
	}
	return staticIncreasePercent
}

// useNetworkModel scores the "use your network" strategy.
type useNetworkModel struct{}

func (useNetworkModel) Score(p *Context) Score {
	score := 1.0
	if p.Project().NetworkEstimate > 0 {
		score += .5 * float64(p.Project().NetworkEstimate-3)
	}
	if stress, ok := p.MarketStress(); ok {
		score += .5 * stress
	}
	return Score{Value: score}
}

// firstApplicationModes collects the dominant hiring channel of every market
// segment, ignoring undefined ones.
func firstApplicationModes(p *Context) map[advisor.ApplicationMode]bool {
	modes := make(map[advisor.ApplicationMode]bool)
	for _, pair := range p.Imt().ApplicationModes {
		if pair.First != advisor.ApplicationModeUndefined {
			modes[pair.First] = true
		}
	}
	return modes
}

// adviceEventModel recommends going to events.
type adviceEventModel struct{}

func (adviceEventModel) Score(p *Context) Score {
	modes := firstApplicationModes(p)
	if len(modes) == 1 && modes[advisor.ApplicationModePersonalContacts] {
		return Score{Value: 2}
	}
	return Score{Value: 1}
}

// improveNetworkModel recommends improving the network, targeted at one
// self-estimated network level.
type improveNetworkModel struct {
	networkLevel int
}

func (m *improveNetworkModel) Score(p *Context) Score {
	if p.Project().NetworkEstimate != m.networkLevel {
		return Score{}
	}
	modes := firstApplicationModes(p)
	if len(modes) == 1 && modes[advisor.ApplicationModePersonalContacts] {
		return Score{Value: 3}
	}
	return Score{Value: 2}
}

// getMoreOffersModel scores the "get more offers" strategy.
type getMoreOffersModel struct{}

var offersToScore = map[advisor.EstimateLevel]float64{
	advisor.EstimateLessThan2:    3,
	advisor.EstimateSome:         2,
	advisor.EstimateDecentAmount: 1,
}

func (getMoreOffersModel) Score(p *Context) Score {
	if p.Profile().HasFrustration(advisor.FrustrationNoOffers) {
		return Score{Value: 4}
	}
	if score, ok := offersToScore[p.Project().WeeklyOffersEstimate]; ok {
		return Score{Value: score}
	}
	return Score{Value: .01}
}

// learnAboutJobModel scores the "learn more about the job" strategy.
type learnAboutJobModel struct{}

func (learnAboutJobModel) Score(p *Context) Score {
	if p.Project().PreviousJobSimilarity != advisor.SimilarityNeverDone {
		return Score{}
	}
	score := 1.5
	if p.Project().JobSearchLengthMonths <= 0 {
		score++
	}
	return Score{Value: score}
}

// standOutModel scores the "stand out from the competition" strategy.
type standOutModel struct{}

func (standOutModel) Score(p *Context) Score {
	if p.Project().WeeklyApplicationsEstimate != advisor.EstimateSome {
		return Score{}
	}
	return Score{Value: 2}
}

// spontaneousApplicationModel scores sending spontaneous applications based
// on how dominant that hiring channel is in the local market.
type spontaneousApplicationModel struct{}

func (spontaneousApplicationModel) Score(p *Context) Score {
	if firstApplicationModes(p)[advisor.ApplicationModeSpontaneous] {
		return Score{Value: 3}
	}
	for _, pair := range p.Imt().ApplicationModes {
		if pair.Second == advisor.ApplicationModeSpontaneous {
			return Score{Value: 2}
		}
	}
	return Score{}
}

// improveCVModel scores the "improve your CV / cover letter" strategy.
type improveCVModel struct{}

func (improveCVModel) Score(p *Context) Score {
	if p.Profile().HasFrustration(advisor.FrustrationResume) {
		return Score{Value: 4}
	}
	project := p.Project()
	if (project.TotalInterviewsEstimate >= advisor.EstimateDecentAmount ||
		project.TotalInterviewCount > 1) &&
		project.JobSearchLengthMonths < 6 {
		return Score{}
	}
	score := 2.0
	if stress, ok := p.MarketStress(); ok && stress >= 2 {
		score = 3
	}
	return Score{Value: score}
}

// genderDiscriminationModel scores the "fight gender wage discriminations"
// strategy.
type genderDiscriminationModel struct{}

func (genderDiscriminationModel) Score(p *Context) Score {
	if p.Profile().Gender == advisor.Feminine &&
		p.Profile().HasFrustration(advisor.FrustrationSexDiscrimination) {
		return Score{Value: 4}
	}
	return Score{}
}

// improveInterviewModel scores the "improve your interview skills" strategy.
type improveInterviewModel struct{}

func (improveInterviewModel) Score(p *Context) Score {
	if p.Profile().HasFrustration(advisor.FrustrationInterview) {
		return Score{Value: 4}
	}
	project := p.Project()
	if project.TotalInterviewsEstimate == advisor.EstimateUnknown &&
		project.TotalInterviewCount == 0 {
		// Unknown interviews.
		return Score{}
	}
	searchLengthWeeks := project.JobSearchLengthMonths * weeksPerMonth
	var interviewLevel float64
	switch {
	case project.TotalInterviewCount < 0:
		interviewLevel = 1
	case project.TotalInterviewCount == 0:
		interviewLevel = float64(project.TotalInterviewsEstimate)
	default:
		interviewLevel = float64(project.TotalInterviewCount + 1)
	}
	return Score{Value: float64(project.WeeklyApplicationsEstimate) *
		searchLengthWeeks / interviewLevel / 15}
}

// frustrationDrivenModel scores 4 when one frustration was declared, and a
// base score otherwise.
type frustrationDrivenModel struct {
	frustration advisor.Frustration
	otherwise   func(p *Context) float64
}

func (m *frustrationDrivenModel) Score(p *Context) Score {
	if p.Profile().HasFrustration(m.frustration) {
		return Score{Value: 4}
	}
	return Score{Value: m.otherwise(p)}
}

func searchLengthScore(p *Context) float64 {
	return p.Project().JobSearchLengthMonths / 6
}

func zeroScore(*Context) float64 { return 0 }

// jobDiscoveryModel scores the "discover jobs close to yours" strategy.
type jobDiscoveryModel struct{}

func (jobDiscoveryModel) Score(p *Context) Score {
	project := p.Project()
	if project.Intensity == advisor.IntensityFiguring {
		// The subject is in discovery mode, this is the perfect strategy.
		return Score{Value: 10}
	}
	latest := p.Profile().LatestJob
	if latest != nil && project.RomeID() != latest.JobGroup.RomeID {
		// Already targeting a different job than the previous one.
		return Score{Value: 3}
	}
	return Score{}
}

// subsidizedContractModel scores the "learn about subsidized contracts"
// strategy.
type subsidizedContractModel struct{}

func (subsidizedContractModel) Score(p *Context) Score {
	project := p.Project()
	if project.JobSearchLengthMonths < 12 {
		return Score{}
	}
	score := project.JobSearchLengthMonths / 6
	if project.Seniority <= advisor.SeniorityJunior {
		score++
	}
	return Score{Value: score}
}

// internationalModel scores the "check out international jobs" strategy.
type internationalModel struct{}

func (internationalModel) Score(p *Context) Score {
	score := 1.0
	if p.Project().Mobility.AreaType >= advisor.AreaWorld {
		score += 2
	}
	return Score{Value: score}
}

// professionalizationModel scores the "professionnalisation contract"
// strategy.
type professionalizationModel struct{}

var seniorityToScore = map[advisor.Seniority]float64{
	advisor.SeniorityInternship:   3,
	advisor.SeniorityJunior:       2.5,
	advisor.SeniorityIntermediary: 2,
	advisor.SenioritySenior:       1.5,
	advisor.SeniorityExpert:       1,
}

func (professionalizationModel) Score(p *Context) Score {
	if p.Profile().Situation == advisor.SituationInTraining ||
		p.Project().TrainingFulfillmentEstimate == advisor.TrainingCurrentlyIn {
		return Score{}
	}
	return Score{Value: seniorityToScore[p.Project().Seniority]}
}

// apprenticeshipModel scores the "apprentissage contract" strategy.
type apprenticeshipModel struct{}

func (apprenticeshipModel) Score(p *Context) Score {
	if p.Profile().Situation == advisor.SituationInTraining ||
		p.Project().TrainingFulfillmentEstimate == advisor.TrainingCurrentlyIn ||
		age(p) > 25 ||
		p.Project().Seniority >= advisor.SeniorityIntermediary {
		return Score{}
	}
	return Score{Value: 3}
}

// freelanceModel scores the "freelance" strategy.
type freelanceModel struct{}

func (freelanceModel) Score(p *Context) Score {
	score := 1.0
	if p.Project().Seniority >= advisor.SeniorityIntermediary {
		score++
	}
	return Score{Value: score}
}

var interviewEstimates = map[advisor.EstimateLevel]float64{
	advisor.EstimateLessThan2:    1,
	advisor.EstimateSome:         3.5,
	advisor.EstimateDecentAmount: 9,
	advisor.EstimateALot:         20,
}

// blueTargetModel sets the target score for success-rate strategies.
type blueTargetModel struct{}

func (blueTargetModel) Score(p *Context) Score {
	project := p.Project()
	numWeeks := weeksPerMonth * project.JobSearchLengthMonths
	if numWeeks <= 9 {
		return Score{Value: 5}
	}

	var numInterviews float64
	switch {
	case project.TotalInterviewCount < 0:
		numInterviews = 0
	case project.TotalInterviewCount > 0:
		numInterviews = float64(project.TotalInterviewCount)
	default:
		numInterviews = interviewEstimates[project.TotalInterviewsEstimate]
	}

	// Number of applications to get one interview.
	ratioInterviews := interviewEstimates[project.WeeklyApplicationsEstimate] *
		numWeeks / math.Max(numInterviews, 1)
	return Score{Value: ratioInterviews*scorePerInterviewRatio + numInterviews}
}

// greenTargetModel sets the target score for new-leads strategies.
type greenTargetModel struct{}

func (greenTargetModel) Score(p *Context) Score {
	return Score{Value: p.MedianUnemploymentTime(advisor.AreaUnknown) / daysPerMonth}
}

// mobilityWithoutMoveModel scores widening the search area while staying
// put.
type mobilityWithoutMoveModel struct {
	targetAreaType advisor.AreaType
	scalingFactor  float64
}

func (m *mobilityWithoutMoveModel) Score(p *Context) Score {
	if p.MedianUnemploymentTime(advisor.AreaUnknown) < 90 {
		return Score{}
	}
	return Score{Value: 2 * m.scalingFactor * (p.MedianUnemploymentTime(advisor.AreaCity)/
		p.MedianUnemploymentTime(m.targetAreaType) - 1)}
}

// relocateModel scores moving to a wider area for the search.
type relocateModel struct {
	targetAreaType advisor.AreaType
	scalingFactor  float64
}

func (m *relocateModel) Score(p *Context) Score {
	medianTime := p.MedianUnemploymentTime(advisor.AreaUnknown)
	if medianTime < 180 {
		return Score{}
	}
	score := 2 * m.scalingFactor * (p.MedianUnemploymentTime(advisor.AreaCity)/
		p.MedianUnemploymentTime(m.targetAreaType) - 1)
	if medianTime >= 365 {
		score++
	}
	return Score{Value: score}
}

// applicationComplexityFilter passes subjects whose job group has the given
// application complexity.
type applicationComplexityFilter struct {
	complexity advisor.ApplicationComplexity
}

func (f *applicationComplexityFilter) Score(p *Context) Score {
	if f.complexity == p.JobGroupInfo().ApplicationComplexity {
		return Score{Value: 3}
	}
	return Score{}
}

// otherWorkEnvModel triggers the "other work environment" advice card.
type otherWorkEnvModel struct{}

func (otherWorkEnvModel) Score(p *Context) Score {
	env := p.JobGroupInfo().WorkEnvironmentKeywords
	if len(env.Structures) > 1 || len(env.Sectors) > 1 {
		return Score{Value: 2}
	}
	return Score{}
}

func (otherWorkEnvModel) ComputeExtraData(p *Context) any {
	return &advisor.OtherWorkEnvData{
		WorkEnvironmentKeywords: p.JobGroupInfo().WorkEnvironmentKeywords,
	}
}

var numInterviewsPerEstimate = map[advisor.EstimateLevel]float64{
	advisor.EstimateLessThan2:    0,
	advisor.EstimateSome:         1,
	advisor.EstimateDecentAmount: 5,
	advisor.EstimateALot:         10,
}

func numInterviews(project *advisor.Project) float64 {
	switch {
	case project.TotalInterviewCount < 0:
		return 0
	case project.TotalInterviewCount > 0:
		return float64(project.TotalInterviewCount)
	default:
		return numInterviewsPerEstimate[project.TotalInterviewsEstimate]
	}
}

// adviceImproveInterviewModel triggers the "improve your interview skills"
// advice card.
type adviceImproveInterviewModel struct{}

func (adviceImproveInterviewModel) maxMonthlyInterviews(p *Context) float64 {
	// Maximum number of monthly interviews one should need.
	if p.JobGroupInfo().ApplicationComplexity == advisor.ComplexityComplex {
		return 5
	}
	return 3
}

func (m adviceImproveInterviewModel) Score(p *Context) Score {
	project := p.Project()
	interviews := numInterviews(project)
	monthlyInterviews := interviews / math.Max(project.JobSearchLengthMonths, 1)
	if monthlyInterviews > m.maxMonthlyInterviews(p) {
		return Score{Value: 3}
	}
	// Whatever the search length, trigger once past many interviews.
	if interviews >= numInterviewsPerEstimate[advisor.EstimateALot] {
		return Score{Value: 3}
	}
	return Score{}
}

func (adviceImproveInterviewModel) ComputeExtraData(p *Context) any {
	return &advisor.ImproveSuccessRateData{Requirements: p.HandcraftedRequirements()}
}

// adviceBetterJobInGroupModel triggers the "change to a better job in your
// group" advice card.
type adviceBetterJobInGroupModel struct{}

func (adviceBetterJobInGroupModel) Score(p *Context) Score {
	specificJobs := p.Requirements().SpecificJobs
	targetCode := p.Project().TargetJob.CodeOGR
	if len(specificJobs) == 0 || specificJobs[0].CodeOGR == targetCode {
		return Score{}
	}

	var targetPercentage float64
	for _, job := range specificJobs {
		if job.CodeOGR == targetCode {
			targetPercentage = job.PercentSuggested
			break
		}
	}

	if targetPercentage+20 < specificJobs[0].PercentSuggested {
		return Score{Value: 2}
	}
	return Score{Value: 1}
}

func (adviceBetterJobInGroupModel) ComputeExtraData(p *Context) any {
	specificJobs := p.Requirements().SpecificJobs
	if len(specificJobs) == 0 {
		return nil
	}

	data := &advisor.BetterJobInGroupData{}
	for i, job := range specificJobs {
		if job.CodeOGR == p.Project().TargetJob.CodeOGR {
			data.NumBetterJobs = i
			break
		}
	}

	for _, job := range p.JobGroupInfo().Jobs {
		if job.CodeOGR == specificJobs[0].CodeOGR {
			best := job
			data.BetterJob = &best
			return data
		}
	}
	p.Logger().Warn("better job is not listed in its group",
		zap.String("code_ogr", specificJobs[0].CodeOGR),
		zap.String("rome_id", p.JobGroupInfo().RomeID))
	return data
}

var applicationsPerWeek = map[advisor.EstimateLevel]float64{
	advisor.EstimateLessThan2:    0,
	advisor.EstimateSome:         2,
	advisor.EstimateDecentAmount: 6,
	advisor.EstimateALot:         15,
}

// adviceImproveResumeModel triggers the "improve your resume to get more
// interviews" advice card.
type adviceImproveResumeModel struct{}

// numInterviewsIncrease computes the ratio by which the number of
// interviews could grow with better applications.
func (adviceImproveResumeModel) numInterviewsIncrease(p *Context) float64 {
	project := p.Project()
	if project.TotalInterviewsEstimate >= advisor.EstimateALot ||
		project.TotalInterviewCount > 20 {
		return 0
	}

	searchLengthWeeks := project.JobSearchLengthMonths * weeksPerMonth
	applicantsPerOffer, ok := p.MarketStress()
	if !ok {
		applicantsPerOffer = 2.85
	}
	numApplications := searchLengthWeeks * applicationsPerWeek[project.WeeklyApplicationsEstimate]
	numPotentialInterviews := numApplications / applicantsPerOffer
	return numPotentialInterviews / math.Max(numInterviews(project), 1)
}

func (m adviceImproveResumeModel) Score(p *Context) Score {
	if m.numInterviewsIncrease(p) >= 2 {
		return Score{Value: 3}
	}
	return Score{}
}

func (m adviceImproveResumeModel) ComputeExtraData(p *Context) any {
	return &advisor.ImproveSuccessRateData{
		NumInterviewsIncrease: m.numInterviewsIncrease(p),
		Requirements:          p.HandcraftedRequirements(),
	}
}

// adviceFreshResumeModel triggers the "to start, prepare your resume"
// advice card.
type adviceFreshResumeModel struct{}

func (adviceFreshResumeModel) Score(p *Context) Score {
	project := p.Project()
	if project.WeeklyApplicationsEstimate <= advisor.EstimateLessThan2 ||
		project.JobSearchLengthMonths < 2 {
		return Score{Value: 3}
	}
	return Score{}
}

func (adviceFreshResumeModel) ComputeExtraData(p *Context) any {
	return &advisor.ImproveSuccessRateData{Requirements: p.HandcraftedRequirements()}
}

// adviceMoreOfferAnswersModel triggers the "understand silent employers"
// advice card.
type adviceMoreOfferAnswersModel struct{}

func (adviceMoreOfferAnswersModel) Score(p *Context) Score {
	if !p.Profile().HasFrustration(advisor.FrustrationNoOfferAnswers) {
		return Score{}
	}
	// Silence hurts more in a market where offers are scarce anyway.
	if stress, ok := p.MarketStress(); ok && stress >= 2 {
		return Score{Value: 3}
	}
	return Score{Value: 2}
}

// lowPriorityModel scores 2 when its frustration was declared and 1
// otherwise, for advice that is relevant to everybody but urgent for few.
type lowPriorityModel struct {
	mainFrustration advisor.Frustration
}

func (m *lowPriorityModel) Score(p *Context) Score {
	if p.Profile().HasFrustration(m.mainFrustration) {
		return Score{Value: 2}
	}
	return Score{Value: 1}
}

// adviceJobBoardsModel triggers the "find job boards" advice card.
type adviceJobBoardsModel struct {
	lowPriorityModel
}

func newAdviceJobBoardsModel() *adviceJobBoardsModel {
	return &adviceJobBoardsModel{lowPriorityModel{mainFrustration: advisor.FrustrationNoOffers}}
}

func (m *adviceJobBoardsModel) ComputeExtraData(p *Context) any {
	boards := p.ListJobBoards()
	if len(boards) == 0 {
		return nil
	}
	// The most specific board (most filters) makes the best headline;
	// a stable random keeps ties deterministic per subject.
	best := slices.MaxFunc(boards, func(a, b *advisor.JobBoard) int {
		if len(a.Filters) != len(b.Filters) {
			return len(a.Filters) - len(b.Filters)
		}
		diff := StableRandom(p, "advice-job-boards:"+a.Title) -
			StableRandom(p, "advice-job-boards:"+b.Title)
		switch {
		case diff < 0:
			return -1
		case diff > 0:
			return 1
		default:
			return 0
		}
	})
	return &advisor.JobBoardsData{JobBoardTitle: best.Title}
}
