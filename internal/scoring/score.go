// Package scoring resolves named scoring models and evaluates them against a
// job-search subject. Models are looked up in a registry that mixes a static
// catalog with dynamically constructed parametrized models, scores are cached
// per evaluation context, and lists of model names combine into pass/fail
// filters over candidate items such as job boards or advice cards.
package scoring

// Score per percent of additional job offers a strategy unlocks: a 30%
// increase scores 3.
const scorePerOffersPercent = .1

// Score per applications-per-interview ratio. A value of 1/5 recommends a
// small strategy when one application in five leads to an interview.
const scorePerInterviewRatio = 1.0 / 5

const (
	daysPerMonth  = 365.25 / 12
	weeksPerMonth = 52.0 / 12
)

// Score is the result of evaluating one model against one subject. Value
// drives ranking and filtering; OffersIncrease is the percentage of
// additional job offers the strategy would unlock, when the model computes
// one.
type Score struct {
	Value          float64
	OffersIncrease float64
}
