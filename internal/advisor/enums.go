package advisor

import (
	"fmt"
	"strings"
)

// Enums decode from their lowercase snake_case names so that both YAML
// subject files and hydrated store documents can use readable values.

// AreaType is an area granularity level. Levels are ordered: statistics
// missing at a fine level fall back to the next wider one.
type AreaType int

const (
	AreaUnknown AreaType = iota
	AreaCity
	AreaDepartement
	AreaRegion
	AreaCountry
	AreaWorld
)

// Gender of the job seeker.
type Gender int

const (
	GenderUnknown Gender = iota
	Masculine
	Feminine
)

// Situation is the current employment situation.
type Situation int

const (
	SituationUnknown Situation = iota
	SituationFirstTime
	SituationLostQuit
	SituationEmployed
	SituationInTraining
)

// Frustration is a self-reported pain point of the job search.
type Frustration int

const (
	FrustrationUnknown Frustration = iota
	FrustrationNoOffers
	FrustrationNoOfferAnswers
	FrustrationResume
	FrustrationInterview
	FrustrationTimeManagement
	FrustrationMotivation
	FrustrationAtypicalProfile
	FrustrationAgeDiscrimination
	FrustrationSexDiscrimination
	FrustrationSingleParent
	FrustrationHandicaped
)

// EstimateLevel is a coarse self-estimated quantity (offers seen per week,
// applications sent per week, interviews obtained, ...).
type EstimateLevel int

const (
	EstimateUnknown EstimateLevel = iota
	EstimateLessThan2
	EstimateSome
	EstimateDecentAmount
	EstimateALot
)

// Seniority in the target job.
type Seniority int

const (
	SeniorityUnknown Seniority = iota
	SeniorityInternship
	SeniorityJunior
	SeniorityIntermediary
	SenioritySenior
	SeniorityExpert
)

// TrainingFulfillment tells whether the seeker believes their training is
// sufficient for the target job.
type TrainingFulfillment int

const (
	TrainingUnknown TrainingFulfillment = iota
	TrainingEnoughDiplomas
	TrainingEnoughExperience
	TrainingCurrentlyIn
	TrainingNeeded
)

// DiplomaFulfillment tells whether required diplomas are held.
type DiplomaFulfillment int

const (
	DiplomaUnknown DiplomaFulfillment = iota
	DiplomaFulfilled
	DiplomaNotFulfilled
)

// EmploymentType is a contract type, for both projects and job offers.
type EmploymentType int

const (
	EmploymentUnknown EmploymentType = iota
	EmploymentCDI
	EmploymentCDDOver3Months
	EmploymentCDDLessEqual3Months
	EmploymentInterim
)

// Workload of a position.
type Workload int

const (
	WorkloadUnknown Workload = iota
	WorkloadPartTime
	WorkloadFullTime
)

// Degree is the highest diploma level, ordered from none to postgraduate.
type Degree int

const (
	DegreeUnknown Degree = iota
	DegreeNone
	DegreeCAPBEP
	DegreeBacBacPro
	DegreeBTSDUTDEUG
	DegreeLicenceMaitrise
	DegreeDEADESSMasterPhD
)

// ProjectIntensity is how engaged the seeker is in the project.
type ProjectIntensity int

const (
	IntensityUnknown ProjectIntensity = iota
	IntensityFiguring
	IntensityNormal
	IntensityExtreme
)

// PreviousJobSimilarity compares the target job to past experience.
type PreviousJobSimilarity int

const (
	SimilarityUnknown PreviousJobSimilarity = iota
	SimilarityNeverDone
	SimilarityDoneSimilar
	SimilarityDoneThis
)

// ApplicationMode is a hiring channel reported by market statistics.
type ApplicationMode int

const (
	ApplicationModeUndefined ApplicationMode = iota
	ApplicationModeSpontaneous
	ApplicationModePersonalContacts
	ApplicationModePlacementAgency
	ApplicationModeOtherChannels
)

// ApplicationComplexity describes how heavy applications are in a job group.
type ApplicationComplexity int

const (
	ComplexityUnknown ApplicationComplexity = iota
	ComplexitySimple
	ComplexityComplex
)

// FeatureStatus is the state of an experiment flag on a user.
type FeatureStatus int

const (
	FeatureUnset FeatureStatus = iota
	FeatureActive
	FeatureControl
)

// FamilySituation of the job seeker.
type FamilySituation int

const (
	FamilyUnknown FamilySituation = iota
	FamilySingleParent
	FamilyInRelationship
	FamilyWithKids
)

// DrivingLicense kind required by some job groups.
type DrivingLicense int

const (
	LicenseUnknown DrivingLicense = iota
	LicenseCar
	LicenseMotorcycle
	LicenseTruck
)

var areaTypeNames = map[string]AreaType{
	"city": AreaCity, "departement": AreaDepartement, "region": AreaRegion,
	"country": AreaCountry, "world": AreaWorld,
}

var genderNames = map[string]Gender{"masculine": Masculine, "feminine": Feminine}

var situationNames = map[string]Situation{
	"first_time": SituationFirstTime, "lost_quit": SituationLostQuit,
	"employed": SituationEmployed, "in_training": SituationInTraining,
}

var frustrationNames = map[string]Frustration{
	"no_offers": FrustrationNoOffers, "no_offer_answers": FrustrationNoOfferAnswers,
	"resume": FrustrationResume, "interview": FrustrationInterview,
	"time_management": FrustrationTimeManagement, "motivation": FrustrationMotivation,
	"atypical_profile": FrustrationAtypicalProfile, "age_discrimination": FrustrationAgeDiscrimination,
	"sex_discrimination": FrustrationSexDiscrimination, "single_parent": FrustrationSingleParent,
	"handicaped": FrustrationHandicaped,
}

var estimateLevelNames = map[string]EstimateLevel{
	"less_than_2": EstimateLessThan2, "some": EstimateSome,
	"decent_amount": EstimateDecentAmount, "a_lot": EstimateALot,
}

var seniorityNames = map[string]Seniority{
	"internship": SeniorityInternship, "junior": SeniorityJunior,
	"intermediary": SeniorityIntermediary, "senior": SenioritySenior,
	"expert": SeniorityExpert,
}

var trainingFulfillmentNames = map[string]TrainingFulfillment{
	"enough_diplomas": TrainingEnoughDiplomas, "enough_experience": TrainingEnoughExperience,
	"currently_in_training": TrainingCurrentlyIn, "training_needed": TrainingNeeded,
}

var diplomaFulfillmentNames = map[string]DiplomaFulfillment{
	"fulfilled": DiplomaFulfilled, "not_fulfilled": DiplomaNotFulfilled,
}

var employmentTypeNames = map[string]EmploymentType{
	"cdi": EmploymentCDI, "cdd_over_3_months": EmploymentCDDOver3Months,
	"cdd_less_equal_3_months": EmploymentCDDLessEqual3Months, "interim": EmploymentInterim,
}

var workloadNames = map[string]Workload{
	"part_time": WorkloadPartTime, "full_time": WorkloadFullTime,
}

var degreeNames = map[string]Degree{
	"no_degree": DegreeNone, "cap_bep": DegreeCAPBEP, "bac_bac_pro": DegreeBacBacPro,
	"bts_dut_deug": DegreeBTSDUTDEUG, "licence_maitrise": DegreeLicenceMaitrise,
	"dea_dess_master_phd": DegreeDEADESSMasterPhD,
}

var projectIntensityNames = map[string]ProjectIntensity{
	"figuring": IntensityFiguring, "normal": IntensityNormal, "extreme": IntensityExtreme,
}

var previousJobSimilarityNames = map[string]PreviousJobSimilarity{
	"never_done": SimilarityNeverDone, "done_similar": SimilarityDoneSimilar,
	"done_this": SimilarityDoneThis,
}

var applicationModeNames = map[string]ApplicationMode{
	"spontaneous_application":           ApplicationModeSpontaneous,
	"personal_or_professional_contacts": ApplicationModePersonalContacts,
	"placement_agency":                  ApplicationModePlacementAgency,
	"other_channels":                    ApplicationModeOtherChannels,
}

var applicationComplexityNames = map[string]ApplicationComplexity{
	"simple_application_process": ComplexitySimple, "complex_application_process": ComplexityComplex,
}

var featureStatusNames = map[string]FeatureStatus{
	"active": FeatureActive, "control": FeatureControl,
}

var familySituationNames = map[string]FamilySituation{
	"single_parent_situation": FamilySingleParent, "in_relationship": FamilyInRelationship,
	"with_kids": FamilyWithKids,
}

var drivingLicenseNames = map[string]DrivingLicense{
	"car": LicenseCar, "motorcycle": LicenseMotorcycle, "truck": LicenseTruck,
}

func parseEnum[T ~int](text []byte, names map[string]T, kind string) (T, error) {
	var zero T
	name := strings.ToLower(strings.TrimSpace(string(text)))
	if name == "" {
		return zero, nil
	}
	if value, ok := names[name]; ok {
		return value, nil
	}
	return zero, fmt.Errorf("unknown %s %q", kind, name)
}

func (a *AreaType) UnmarshalText(text []byte) (err error) {
	*a, err = parseEnum(text, areaTypeNames, "area type")
	return err
}

func (g *Gender) UnmarshalText(text []byte) (err error) {
	*g, err = parseEnum(text, genderNames, "gender")
	return err
}

func (s *Situation) UnmarshalText(text []byte) (err error) {
	*s, err = parseEnum(text, situationNames, "situation")
	return err
}

func (f *Frustration) UnmarshalText(text []byte) (err error) {
	*f, err = parseEnum(text, frustrationNames, "frustration")
	return err
}

func (e *EstimateLevel) UnmarshalText(text []byte) (err error) {
	*e, err = parseEnum(text, estimateLevelNames, "estimate level")
	return err
}

func (s *Seniority) UnmarshalText(text []byte) (err error) {
	*s, err = parseEnum(text, seniorityNames, "seniority")
	return err
}

func (t *TrainingFulfillment) UnmarshalText(text []byte) (err error) {
	*t, err = parseEnum(text, trainingFulfillmentNames, "training fulfillment")
	return err
}

func (d *DiplomaFulfillment) UnmarshalText(text []byte) (err error) {
	*d, err = parseEnum(text, diplomaFulfillmentNames, "diploma fulfillment")
	return err
}

func (e *EmploymentType) UnmarshalText(text []byte) (err error) {
	*e, err = parseEnum(text, employmentTypeNames, "employment type")
	return err
}

func (w *Workload) UnmarshalText(text []byte) (err error) {
	*w, err = parseEnum(text, workloadNames, "workload")
	return err
}

func (d *Degree) UnmarshalText(text []byte) (err error) {
	*d, err = parseEnum(text, degreeNames, "degree")
	return err
}

func (p *ProjectIntensity) UnmarshalText(text []byte) (err error) {
	*p, err = parseEnum(text, projectIntensityNames, "project intensity")
	return err
}

func (p *PreviousJobSimilarity) UnmarshalText(text []byte) (err error) {
	*p, err = parseEnum(text, previousJobSimilarityNames, "previous job similarity")
	return err
}

func (a *ApplicationMode) UnmarshalText(text []byte) (err error) {
	*a, err = parseEnum(text, applicationModeNames, "application mode")
	return err
}

func (a *ApplicationComplexity) UnmarshalText(text []byte) (err error) {
	*a, err = parseEnum(text, applicationComplexityNames, "application complexity")
	return err
}

func (f *FeatureStatus) UnmarshalText(text []byte) (err error) {
	*f, err = parseEnum(text, featureStatusNames, "feature status")
	return err
}

func (f *FamilySituation) UnmarshalText(text []byte) (err error) {
	*f, err = parseEnum(text, familySituationNames, "family situation")
	return err
}

func (d *DrivingLicense) UnmarshalText(text []byte) (err error) {
	*d, err = parseEnum(text, drivingLicenseNames, "driving license")
	return err
}
