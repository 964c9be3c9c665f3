package advisor

// ApplicationModePair ranks the hiring channels of a market segment.
type ApplicationModePair struct {
	First  ApplicationMode `mapstructure:"first" yaml:"first"`
	Second ApplicationMode `mapstructure:"second" yaml:"second"`
}

// EmploymentTypePercentage is the share of offers with a given contract type.
type EmploymentTypePercentage struct {
	EmploymentType EmploymentType `mapstructure:"employment_type" yaml:"employment_type"`
	Percentage     float64        `mapstructure:"percentage" yaml:"percentage"`
}

// ImtData is the local market tension data for a job group in an area.
type ImtData struct {
	YearlyAvgOffersDenominator     int                            `mapstructure:"yearly_avg_offers_denominator" yaml:"yearly_avg_offers_denominator"`
	YearlyAvgOffersPer10Candidates int                            `mapstructure:"yearly_avg_offers_per_10_candidates" yaml:"yearly_avg_offers_per_10_candidates"`
	YearlyAvgOffersPer10Openings   int                            `mapstructure:"yearly_avg_offers_per_10_openings" yaml:"yearly_avg_offers_per_10_openings"`
	ApplicationModes               map[string]ApplicationModePair `mapstructure:"application_modes" yaml:"application_modes"`
	EmploymentTypePercentages      []EmploymentTypePercentage     `mapstructure:"employment_type_percentages" yaml:"employment_type_percentages"`
}

// UnemploymentDuration is the median unemployment duration in an area.
type UnemploymentDuration struct {
	Days float64 `mapstructure:"days" yaml:"days"`
}

// LocalStats aggregates the statistics stored per (area, job group) pair.
type LocalStats struct {
	Imt                   ImtData              `mapstructure:"imt" yaml:"imt"`
	UnemploymentDuration  UnemploymentDuration `mapstructure:"unemployment_duration" yaml:"unemployment_duration"`
	NumAvailableJobOffers int                  `mapstructure:"num_available_job_offers" yaml:"num_available_job_offers"`
}

// ContractTypeRequirement is how often a contract type appears in offers.
type ContractTypeRequirement struct {
	ContractType     EmploymentType `mapstructure:"contract_type" yaml:"contract_type"`
	PercentSuggested float64        `mapstructure:"percent_suggested" yaml:"percent_suggested"`
	PercentRequired  float64        `mapstructure:"percent_required" yaml:"percent_required"`
}

// DrivingLicenseRequirement is how often a license is asked for in offers.
type DrivingLicenseRequirement struct {
	DrivingLicense   DrivingLicense `mapstructure:"driving_license" yaml:"driving_license"`
	PercentSuggested float64        `mapstructure:"percent_suggested" yaml:"percent_suggested"`
	PercentRequired  float64        `mapstructure:"percent_required" yaml:"percent_required"`
}

// JobSuggestion is a specific job inside a group, ranked by offer share.
type JobSuggestion struct {
	CodeOGR          string  `mapstructure:"code_ogr" yaml:"code_ogr"`
	PercentSuggested float64 `mapstructure:"percent_suggested" yaml:"percent_suggested"`
}

// JobRequirements describes what offers in a job group usually require. The
// *ShortText fields are handcrafted one-liners shown to users.
type JobRequirements struct {
	ContractTypes   []ContractTypeRequirement   `mapstructure:"contract_types" yaml:"contract_types"`
	DrivingLicenses []DrivingLicenseRequirement `mapstructure:"driving_licenses" yaml:"driving_licenses"`
	SpecificJobs    []JobSuggestion             `mapstructure:"specific_jobs" yaml:"specific_jobs"`

	DiplomaShortText        string `mapstructure:"diploma_short_text" yaml:"diploma_short_text"`
	DrivingLicenseShortText string `mapstructure:"driving_license_short_text" yaml:"driving_license_short_text"`
	ExperienceShortText     string `mapstructure:"experience_short_text" yaml:"experience_short_text"`
	LanguageShortText       string `mapstructure:"language_short_text" yaml:"language_short_text"`
}

// ShortTexts keeps only the handcrafted one-liner fields.
func (r *JobRequirements) ShortTexts() JobRequirements {
	return JobRequirements{
		DiplomaShortText:        r.DiplomaShortText,
		DrivingLicenseShortText: r.DrivingLicenseShortText,
		ExperienceShortText:     r.ExperienceShortText,
		LanguageShortText:       r.LanguageShortText,
	}
}

// WorkEnvironmentKeywords lists the structures and sectors a job group spans.
type WorkEnvironmentKeywords struct {
	Structures []string `mapstructure:"structures" yaml:"structures"`
	Sectors    []string `mapstructure:"sectors" yaml:"sectors"`
}

// Job is a specific job inside a job group.
type Job struct {
	CodeOGR string `mapstructure:"code_ogr" yaml:"code_ogr"`
	Name    string `mapstructure:"name" yaml:"name"`
}

// JobGroup is the stored description of a job group.
type JobGroup struct {
	RomeID                  string                  `mapstructure:"rome_id" yaml:"rome_id"`
	Name                    string                  `mapstructure:"name" yaml:"name"`
	ApplicationComplexity   ApplicationComplexity   `mapstructure:"application_complexity" yaml:"application_complexity"`
	WorkEnvironmentKeywords WorkEnvironmentKeywords `mapstructure:"work_environment_keywords" yaml:"work_environment_keywords"`
	Jobs                    []Job                   `mapstructure:"jobs" yaml:"jobs"`
	Requirements            JobRequirements         `mapstructure:"requirements" yaml:"requirements"`
}
