package advisor

// UserProfile describes the job seeker independently of any project.
type UserProfile struct {
	Gender          Gender          `mapstructure:"gender" yaml:"gender"`
	YearOfBirth     int             `mapstructure:"year_of_birth" yaml:"year_of_birth"`
	HighestDegree   Degree          `mapstructure:"highest_degree" yaml:"highest_degree"`
	Situation       Situation       `mapstructure:"situation" yaml:"situation"`
	FamilySituation FamilySituation `mapstructure:"family_situation" yaml:"family_situation"`
	HasHandicap     bool            `mapstructure:"has_handicap" yaml:"has_handicap"`
	Frustrations    []Frustration   `mapstructure:"frustrations" yaml:"frustrations"`
	LatestJob       *TargetJob      `mapstructure:"latest_job" yaml:"latest_job"`
}

// HasFrustration reports whether the given frustration was declared.
func (u *UserProfile) HasFrustration(frustration Frustration) bool {
	for _, f := range u.Frustrations {
		if f == frustration {
			return true
		}
	}
	return false
}

// FeaturesEnabled holds the experiment flags set on the user.
type FeaturesEnabled struct {
	Alpha           FeatureStatus `mapstructure:"alpha" yaml:"alpha"`
	LBBIntegration  FeatureStatus `mapstructure:"lbb_integration" yaml:"lbb_integration"`
	NetPromoterShow FeatureStatus `mapstructure:"net_promoter_show" yaml:"net_promoter_show"`
	StickyActions   FeatureStatus `mapstructure:"sticky_actions" yaml:"sticky_actions"`
}

// Status looks up a flag by its configured name. The second return value is
// false when no flag with that name exists.
func (f *FeaturesEnabled) Status(name string) (FeatureStatus, bool) {
	switch name {
	case "alpha":
		return f.Alpha, true
	case "lbb_integration":
		return f.LBBIntegration, true
	case "net_promoter_show":
		return f.NetPromoterShow, true
	case "sticky_actions":
		return f.StickyActions, true
	default:
		return FeatureUnset, false
	}
}
