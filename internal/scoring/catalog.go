package scoring

import "github.com/spigell/job-advisor/internal/advisor"

// staticCatalog builds the named models every registry starts with. Names
// are part of the configuration surface: advice modules and job boards refer
// to them, so renaming one is a breaking change.
func staticCatalog() map[string]Model {
	return map[string]Model{
		// The default model, used when a configured name cannot be resolved.
		"": baseModel{},

		// Advice cards.
		"advice-better-job-in-group": adviceBetterJobInGroupModel{},
		"advice-event":               adviceEventModel{},
		"advice-fresh-resume":        adviceFreshResumeModel{},
		"advice-improve-interview":   adviceImproveInterviewModel{},
		"advice-improve-resume":      adviceImproveResumeModel{},
		"advice-job-boards":          newAdviceJobBoardsModel(),
		"advice-more-offer-answers":  adviceMoreOfferAnswersModel{},
		"advice-other-work-env":      otherWorkEnvModel{},

		// Targets the strategy scores are compared against.
		"blue-group":  blueTargetModel{},
		"green-group": greenTargetModel{},

		// Strategies.
		"strategy-about-job":        learnAboutJobModel{},
		"strategy-apprenticeship":   apprenticeshipModel{},
		"strategy-atypical-profile": &frustrationDrivenModel{frustration: advisor.FrustrationAtypicalProfile, otherwise: zeroScore},
		"strategy-contract-type(CDD)": &increaseOffersModel{increaser: &acceptContractTypeIncrease{
			types: []advisor.EmploymentType{advisor.EmploymentCDDOver3Months, advisor.EmploymentCDDLessEqual3Months},
		}},
		"strategy-contract-type(interim)": &increaseOffersModel{increaser: &acceptContractTypeIncrease{
			types: []advisor.EmploymentType{advisor.EmploymentInterim},
		}},
		"strategy-driving-license(car)":  &increaseOffersModel{increaser: &drivingLicenseIncrease{license: advisor.LicenseCar}},
		"strategy-freelance":             freelanceModel{},
		"strategy-gender-discrimination": genderDiscriminationModel{},
		"strategy-get-more-offers":       getMoreOffersModel{},
		"strategy-improve-network(1)":    &improveNetworkModel{networkLevel: 1},
		"strategy-improve-network(2)":    &improveNetworkModel{networkLevel: 2},
		"strategy-improve-network(3)":    &improveNetworkModel{networkLevel: 3},
		"strategy-international":         internationalModel{},
		"strategy-interview":             improveInterviewModel{},
		"strategy-job-discovery":         jobDiscoveryModel{},
		"strategy-mobility-without-move(departement)": &mobilityWithoutMoveModel{
			targetAreaType: advisor.AreaDepartement, scalingFactor: 2,
		},
		"strategy-mobility-without-move(region)": &mobilityWithoutMoveModel{
			targetAreaType: advisor.AreaRegion, scalingFactor: 1,
		},
		"strategy-organization":        &frustrationDrivenModel{frustration: advisor.FrustrationTimeManagement, otherwise: searchLengthScore},
		"strategy-part-time":           &increaseOffersModel{increaser: partTimeIncrease{}},
		"strategy-professionalization": professionalizationModel{},
		"strategy-reduce-salary":       &increaseOffersModel{increaser: reduceSalaryIncrease{}},
		"strategy-relocate(country)": &relocateModel{
			targetAreaType: advisor.AreaCountry, scalingFactor: 1,
		},
		"strategy-relocate(region)": &relocateModel{
			targetAreaType: advisor.AreaRegion, scalingFactor: 2,
		},
		"strategy-resume":                  improveCVModel{},
		"strategy-spontaneous-application": spontaneousApplicationModel{},
		"strategy-stand-out":               standOutModel{},
		"strategy-stay-motivated":          &frustrationDrivenModel{frustration: advisor.FrustrationMotivation, otherwise: searchLengthScore},
		"strategy-subsidized-contract":     subsidizedContractModel{},
		"strategy-training":                &increaseOffersModel{increaser: trainingIncrease{}},
		"strategy-use-network":             useNetworkModel{},

		// Profile filters.
		"for-women": &profileFilter{fn: func(p *Context) bool {
			return p.Profile().Gender == advisor.Feminine
		}},
		"for-old(50)": &profileFilter{fn: func(p *Context) bool {
			return age(p) > 50
		}},
		"for-young(25)": &profileFilter{fn: func(p *Context) bool {
			a := age(p)
			return a > 0 && a < 25
		}},
		"for-frustrated-old(50)": &profileFilter{fn: func(p *Context) bool {
			return p.Profile().HasFrustration(advisor.FrustrationAgeDiscrimination) && age(p) > 50
		}},
		"for-frustrated-young(25)": &profileFilter{fn: func(p *Context) bool {
			a := age(p)
			return p.Profile().HasFrustration(advisor.FrustrationAgeDiscrimination) && a > 0 && a < 25
		}},
		"for-handicaped": &profileFilter{fn: func(p *Context) bool {
			return p.Profile().HasFrustration(advisor.FrustrationHandicaped) || p.Profile().HasHandicap
		}},
		"for-not-employed-anymore": &profileFilter{fn: func(p *Context) bool {
			return p.Profile().Situation == advisor.SituationLostQuit
		}},
		"for-unemployed": &profileFilter{fn: func(p *Context) bool {
			situation := p.Profile().Situation
			return situation != advisor.SituationUnknown && situation != advisor.SituationEmployed
		}},
		"for-qualified(bac+3)": &profileFilter{fn: func(p *Context) bool {
			return p.Profile().HighestDegree >= advisor.DegreeLicenceMaitrise
		}},
		"for-unqualified(bac)": &profileFilter{fn: func(p *Context) bool {
			return p.Profile().HighestDegree <= advisor.DegreeBacBacPro
		}},
		"for-single-parent": &profileFilter{fn: func(p *Context) bool {
			return p.Profile().HasFrustration(advisor.FrustrationSingleParent) ||
				p.Profile().FamilySituation == advisor.FamilySingleParent
		}},

		// Project filters.
		"for-discovery": &projectFilter{fn: func(project *advisor.Project) bool {
			return project.Intensity == advisor.IntensityFiguring
		}},
		"for-searching-forever": &projectFilter{fn: func(project *advisor.Project) bool {
			return project.JobSearchLengthMonths >= 19
		}},
		"for-complex-application": &applicationComplexityFilter{complexity: advisor.ComplexityComplex},
		"for-simple-application":  &applicationComplexityFilter{complexity: advisor.ComplexitySimple},
	}
}
