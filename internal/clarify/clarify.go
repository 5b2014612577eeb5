// Package clarify maps gatekeeper results back to human-facing question
// identifiers. It is a pure presentation lookup; all validation lives in the
// engine.
package clarify

import "idea-gatekeeper/internal/gatekeeper"

var fieldQuestions = map[string]string{
	gatekeeper.FieldRequestType:    "gatekeeper.clarification.request_type",
	gatekeeper.FieldProjectType:    "gatekeeper.clarification.project_type",
	gatekeeper.FieldIdea:           "gatekeeper.clarification.idea",
	gatekeeper.FieldGoal:           "gatekeeper.clarification.goal",
	gatekeeper.FieldContext:        "gatekeeper.clarification.context",
	gatekeeper.FieldProblem:        "gatekeeper.clarification.problem",
	gatekeeper.FieldRegionCountry:  "gatekeeper.clarification.region.country",
	gatekeeper.FieldRegionRegion:   "gatekeeper.clarification.region.region",
	gatekeeper.FieldRegionCity:     "gatekeeper.clarification.region.city",
	gatekeeper.FieldCapital:        "gatekeeper.clarification.capital",
	gatekeeper.FieldTimeHorizon:    "gatekeeper.clarification.time_horizon",
	gatekeeper.FieldResponsibility: "gatekeeper.clarification.responsibility",
}

const (
	questionLegality = "gatekeeper.clarification.legality"
	questionReality  = "gatekeeper.clarification.reality"
	questionFallback = "gatekeeper.clarification.generic"
)

// QuestionKeys maps the result's missing fields to question identifiers and
// appends a stage-specific question for legality and reality failures. The
// returned list preserves order and carries no duplicates.
func QuestionKeys(result gatekeeper.Result) []string {
	var keys []string
	seen := make(map[string]struct{})
	add := func(key string) {
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	for _, field := range result.MissingFields {
		if key, ok := fieldQuestions[field]; ok {
			add(key)
		} else {
			add(questionFallback)
		}
	}

	switch result.Stage {
	case gatekeeper.StageLegality:
		add(questionLegality)
	case gatekeeper.StageReality:
		add(questionReality)
	}

	return keys
}
