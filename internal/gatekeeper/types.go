package gatekeeper

// RequestType selects which narrative field is mandatory for the request.
type RequestType string

const (
	RequestOpportunity    RequestType = "OPPORTUNITY"
	RequestProblemSolving RequestType = "PROBLEM_SOLVING"
)

// ProjectType distinguishes physical projects from purely digital ones.
type ProjectType string

const (
	ProjectOnline  ProjectType = "ONLINE"
	ProjectOffline ProjectType = "OFFLINE"
)

// Region holds the structured location of the project. City may stay empty
// for online, non-production projects.
type Region struct {
	Country string `json:"country"`
	Region  string `json:"region"`
	City    string `json:"city,omitempty"`
}

// Input is the record the engine evaluates. Capital deliberately stays
// loosely typed: callers submit either a number or a free-form money string
// ("100 000", "100k", "до 200000") and the capital parser sorts it out.
type Input struct {
	RequestType               RequestType `json:"request_type"`
	ProjectType               ProjectType `json:"project_type"`
	Idea                      string      `json:"idea"`
	Goal                      string      `json:"goal"`
	Context                   string      `json:"context,omitempty"`
	Problem                   string      `json:"problem,omitempty"`
	Region                    Region      `json:"region"`
	Capital                   any         `json:"capital,omitempty"`
	TimeHorizon               string      `json:"time_horizon,omitempty"`
	MandatoryExpensesIncluded bool        `json:"mandatory_expenses_included"`
	ResponsibilityConfirmed   bool        `json:"responsibility_confirmed"`
	ProductionRelated         bool        `json:"production_related"`
	Notes                     string      `json:"notes,omitempty"`
}

// Decision is the verdict of a single engine run.
type Decision string

const (
	Admitted             Decision = "ADMITTED"
	ReturnWithConditions Decision = "RETURN_WITH_CONDITIONS"
	HardFail             Decision = "HARD_FAIL"
)

// Stage names the pipeline phase that produced the result.
type Stage string

const (
	StageRequest        Stage = "REQUEST"
	StageIdea           Stage = "IDEA"
	StageContext        Stage = "CONTEXT"
	StageProblem        Stage = "PROBLEM"
	StageGoal           Stage = "GOAL"
	StageConstraints    Stage = "CONSTRAINTS"
	StageResponsibility Stage = "RESPONSIBILITY"
	StageReality        Stage = "REALITY"
	StageLegality       Stage = "LEGALITY"
	StageResourceFit    Stage = "RESOURCE_FIT"
)

// ReasonCode is a stable machine identifier for why a run stopped.
type ReasonCode string

const (
	ReasonVagueNarrative     ReasonCode = "RC-01" // idea/context/problem too vague or unreadable
	ReasonGoalNotMeasurable  ReasonCode = "RC-02"
	ReasonNoResponsibility   ReasonCode = "RC-03"
	ReasonUnrealistic        ReasonCode = "RC-04"
	ReasonIllegal            ReasonCode = "RC-05"
	ReasonRegionInvalid      ReasonCode = "RC-06"
	ReasonCapitalUnparsable  ReasonCode = "RC-07"
	ReasonTimeHorizonInvalid ReasonCode = "RC-08"
	ReasonCapitalTooLow      ReasonCode = "RC-09"
)

// Result is produced fresh on every engine invocation. Notes are
// informational only; callers should rely on the decision, stage,
// reason codes and missing fields.
type Result struct {
	Decision      Decision     `json:"decision"`
	Stage         Stage        `json:"stage"`
	ReasonCodes   []ReasonCode `json:"reason_codes"`
	MissingFields []string     `json:"missing_fields"`
	Notes         []string     `json:"notes"`
}

// Field identifiers used in missing-field lists and clarification lookups.
const (
	FieldRequestType    = "request_type"
	FieldProjectType    = "project_type"
	FieldIdea           = "idea"
	FieldGoal           = "goal"
	FieldContext        = "context"
	FieldProblem        = "problem"
	FieldRegionCountry  = "region.country"
	FieldRegionRegion   = "region.region"
	FieldRegionCity     = "region.city"
	FieldCapital        = "capital"
	FieldTimeHorizon    = "time_horizon"
	FieldResponsibility = "responsibility_confirmed"
)
