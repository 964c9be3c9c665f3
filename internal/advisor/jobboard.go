package advisor

// JobBoard is a job-board listing. Filters holds scoring-model names; the
// board is surfaced only when every one of them scores positive for the
// subject.
type JobBoard struct {
	Title   string   `mapstructure:"title" yaml:"title" json:"title"`
	Link    string   `mapstructure:"link" yaml:"link" json:"link"`
	Filters []string `mapstructure:"filters" yaml:"filters" json:"filters,omitempty"`
}

// ExtraData payloads computed by scoring models for presentation.

// BetterJobInGroupData suggests a job with more offers in the same group.
type BetterJobInGroupData struct {
	NumBetterJobs int  `json:"num_better_jobs,omitempty"`
	BetterJob     *Job `json:"better_job,omitempty"`
}

// ImproveSuccessRateData backs resume and interview advice cards.
type ImproveSuccessRateData struct {
	NumInterviewsIncrease float64         `json:"num_interviews_increase,omitempty"`
	Requirements          JobRequirements `json:"requirements,omitempty"`
}

// OtherWorkEnvData backs the "other work environment" advice card.
type OtherWorkEnvData struct {
	WorkEnvironmentKeywords WorkEnvironmentKeywords `json:"work_environment_keywords"`
}

// JobBoardsData backs the "find job boards" advice card.
type JobBoardsData struct {
	JobBoardTitle string `json:"job_board_title"`
}
