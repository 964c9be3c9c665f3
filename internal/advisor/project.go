package advisor

// City locates a project geographically, with the identifiers of every
// administrative level the statistics are indexed by.
type City struct {
	CityID        string `mapstructure:"city_id" yaml:"city_id"`
	DepartementID string `mapstructure:"departement_id" yaml:"departement_id"`
	RegionID      string `mapstructure:"region_id" yaml:"region_id"`
	Name          string `mapstructure:"name" yaml:"name"`
}

// Mobility is where, and how far around, the seeker is willing to work.
type Mobility struct {
	City     City     `mapstructure:"city" yaml:"city"`
	AreaType AreaType `mapstructure:"area_type" yaml:"area_type"`
}

// JobGroupRef references a job group by its ROME identifier.
type JobGroupRef struct {
	RomeID string `mapstructure:"rome_id" yaml:"rome_id"`
	Name   string `mapstructure:"name" yaml:"name"`
}

// TargetJob is the job a project aims for.
type TargetJob struct {
	CodeOGR  string      `mapstructure:"code_ogr" yaml:"code_ogr"`
	Name     string      `mapstructure:"name" yaml:"name"`
	JobGroup JobGroupRef `mapstructure:"job_group" yaml:"job_group"`
}

// Project is one job-search project of a user: the target job, the mobility
// constraints and the self-reported search activity so far.
//
// TotalInterviewCount uses a negative value to mean "explicitly zero
// interviews" while zero means "not filled in".
type Project struct {
	ID                          string                `mapstructure:"id" yaml:"id"`
	TargetJob                   TargetJob             `mapstructure:"target_job" yaml:"target_job"`
	Mobility                    Mobility              `mapstructure:"mobility" yaml:"mobility"`
	Intensity                   ProjectIntensity      `mapstructure:"intensity" yaml:"intensity"`
	NetworkEstimate             int                   `mapstructure:"network_estimate" yaml:"network_estimate"`
	JobSearchLengthMonths       float64               `mapstructure:"job_search_length_months" yaml:"job_search_length_months"`
	WeeklyOffersEstimate        EstimateLevel         `mapstructure:"weekly_offers_estimate" yaml:"weekly_offers_estimate"`
	WeeklyApplicationsEstimate  EstimateLevel         `mapstructure:"weekly_applications_estimate" yaml:"weekly_applications_estimate"`
	TotalInterviewsEstimate     EstimateLevel         `mapstructure:"total_interviews_estimate" yaml:"total_interviews_estimate"`
	TotalInterviewCount         int                   `mapstructure:"total_interview_count" yaml:"total_interview_count"`
	PreviousJobSimilarity       PreviousJobSimilarity `mapstructure:"previous_job_similarity" yaml:"previous_job_similarity"`
	Seniority                   Seniority             `mapstructure:"seniority" yaml:"seniority"`
	EmploymentTypes             []EmploymentType      `mapstructure:"employment_types" yaml:"employment_types"`
	Workloads                   []Workload            `mapstructure:"workloads" yaml:"workloads"`
	TrainingFulfillmentEstimate TrainingFulfillment   `mapstructure:"training_fulfillment_estimate" yaml:"training_fulfillment_estimate"`
	DiplomaFulfillmentEstimate  DiplomaFulfillment    `mapstructure:"diploma_fulfillment_estimate" yaml:"diploma_fulfillment_estimate"`
	MinSalary                   float64               `mapstructure:"min_salary" yaml:"min_salary"`
}

// RomeID is the job group identifier the market statistics are keyed by.
func (p *Project) RomeID() string {
	return p.TargetJob.JobGroup.RomeID
}

// TargetsEmploymentType reports whether the project already targets one of
// the given contract types.
func (p *Project) TargetsEmploymentType(types []EmploymentType) bool {
	for _, target := range p.EmploymentTypes {
		for _, t := range types {
			if target == t {
				return true
			}
		}
	}
	return false
}

// TargetsWorkload reports whether the project includes the given workload.
func (p *Project) TargetsWorkload(workload Workload) bool {
	for _, w := range p.Workloads {
		if w == workload {
			return true
		}
	}
	return false
}
