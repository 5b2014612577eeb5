package gatekeeper

import (
	"fmt"
	"strings"
)

// DefaultCapitalThreshold is the minimum parsed capital, in whole currency
// units, for production-related projects.
const DefaultCapitalThreshold int64 = 100_000

// Config controls the engine's data-driven parts. Empty paths select the
// compiled-in marker lists; a zero threshold selects the default.
type Config struct {
	RealityMarkersPath  string
	LegalityMarkersPath string
	CapitalThreshold    int64
}

// Engine runs the gatekeeper pipeline. It holds only immutable policy data,
// so a single instance is safe to share.
type Engine struct {
	reality   MarkerSet
	legality  MarkerSet
	threshold int64
}

// NewEngine constructs an engine from the provided configuration.
func NewEngine(cfg Config) (*Engine, error) {
	e := &Engine{
		reality:   defaultRealityMarkers(),
		legality:  defaultLegalityMarkers(),
		threshold: cfg.CapitalThreshold,
	}
	if e.threshold <= 0 {
		e.threshold = DefaultCapitalThreshold
	}
	if cfg.RealityMarkersPath != "" {
		set, err := LoadMarkers(cfg.RealityMarkersPath)
		if err != nil {
			return nil, fmt.Errorf("reality markers: %w", err)
		}
		e.reality = set
	}
	if cfg.LegalityMarkersPath != "" {
		set, err := LoadMarkers(cfg.LegalityMarkersPath)
		if err != nil {
			return nil, fmt.Errorf("legality markers: %w", err)
		}
		e.legality = set
	}
	return e, nil
}

// RealityMarkerCount reports the configured reality marker count.
func (e *Engine) RealityMarkerCount() int { return e.reality.Len() }

// LegalityMarkerCount reports the configured legality marker count.
func (e *Engine) LegalityMarkerCount() int { return e.legality.Len() }

// CapitalThreshold reports the production capital floor.
func (e *Engine) CapitalThreshold() int64 { return e.threshold }

// Evaluate runs the full pipeline against the record and returns a fresh
// result. The pipeline stops at the first failing stage; the caller's record
// is never mutated and no I/O happens here.
func (e *Engine) Evaluate(raw Input) Result {
	in := NormalizeInput(raw)

	// Stage 1: structural completeness. The responsibility flag is reported
	// with the rest but is not grounds to stop on its own; when it is the
	// only gap the pipeline runs on and hard-fails at the responsibility
	// gate instead.
	missing := CollectMissingFields(in)
	if hasStructuralGap(missing) {
		return Result{
			Decision:      ReturnWithConditions,
			Stage:         presenceStage(missing),
			ReasonCodes:   []ReasonCode{},
			MissingFields: missing,
			Notes:         []string{"Not all required fields are filled in. Clarification needed."},
		}
	}

	// Stage 2: idea quality. A single word is fine, garbage is not.
	if _, issue, ok := ValidateText(in.Idea, TextOptions{MinLen: 2, MinTokens: 1}); !ok {
		return returned(StageIdea, ReasonVagueNarrative, []string{FieldIdea}, issueNote(FieldIdea, issue))
	}

	// Stage 3: goal quality. A goal needs an actual phrase.
	if _, issue, ok := ValidateText(in.Goal, TextOptions{MinLen: 3, MinTokens: 2}); !ok {
		return returned(StageGoal, ReasonGoalNotMeasurable, []string{FieldGoal}, issueNote(FieldGoal, issue))
	}

	// Stage 4: the narrative field selected by the request type.
	if in.RequestType == RequestOpportunity {
		if _, issue, ok := ValidateText(in.Context, TextOptions{MinLen: 5, MinTokens: 2}); !ok {
			return returned(StageContext, ReasonVagueNarrative, []string{FieldContext}, issueNote(FieldContext, issue))
		}
	} else {
		if _, issue, ok := ValidateText(in.Problem, TextOptions{MinLen: 5, MinTokens: 2}); !ok {
			return returned(StageProblem, ReasonVagueNarrative, []string{FieldProblem}, issueNote(FieldProblem, issue))
		}
	}

	// Stage 5: region quality. City may stay empty for online projects.
	if _, issue, ok := ValidateText(in.Region.Country, TextOptions{MinLen: 2, MinTokens: 1}); !ok {
		return returned(StageConstraints, ReasonRegionInvalid, []string{FieldRegionCountry}, issueNote(FieldRegionCountry, issue))
	}
	if _, issue, ok := ValidateText(in.Region.Region, TextOptions{MinLen: 2, MinTokens: 1}); !ok {
		return returned(StageConstraints, ReasonRegionInvalid, []string{FieldRegionRegion}, issueNote(FieldRegionRegion, issue))
	}
	cityOpts := TextOptions{MinLen: 2, MinTokens: 1, AllowEmpty: in.ProjectType == ProjectOnline}
	if _, issue, ok := ValidateText(in.Region.City, cityOpts); !ok {
		return returned(StageConstraints, ReasonRegionInvalid, []string{FieldRegionCity}, issueNote(FieldRegionCity, issue))
	}

	// Stage 6: time horizon is optional, but garbage bounces.
	if in.TimeHorizon != "" {
		if _, issue, ok := ValidateText(in.TimeHorizon, TextOptions{MinLen: 2, MinTokens: 1}); !ok {
			return returned(StageConstraints, ReasonTimeHorizonInvalid, []string{FieldTimeHorizon}, issueNote(FieldTimeHorizon, issue))
		}
	}

	// Stage 7: responsibility gate. The only hard fail reachable from a
	// plain boolean; not recoverable without resubmission.
	if !in.ResponsibilityConfirmed {
		return Result{
			Decision:      HardFail,
			Stage:         StageResponsibility,
			ReasonCodes:   []ReasonCode{ReasonNoResponsibility},
			MissingFields: []string{FieldResponsibility},
			Notes:         []string{"Analysis is blocked until responsibility is confirmed."},
		}
	}

	// Stages 8-9: policy scans over the full narrative.
	narrative := strings.ToLower(strings.Join([]string{in.Idea, in.Goal, in.Context, in.Problem}, " "))
	if marker, hit := e.reality.Match(narrative); hit {
		return Result{
			Decision:      HardFail,
			Stage:         StageReality,
			ReasonCodes:   []ReasonCode{ReasonUnrealistic},
			MissingFields: []string{},
			Notes:         []string{fmt.Sprintf("Unrealistic or fantastic scenario detected (marker %q).", marker)},
		}
	}
	if marker, hit := e.legality.Match(narrative); hit {
		return Result{
			Decision:      HardFail,
			Stage:         StageLegality,
			ReasonCodes:   []ReasonCode{ReasonIllegal},
			MissingFields: []string{},
			Notes:         []string{fmt.Sprintf("Signs of illegal activity detected (marker %q).", marker)},
		}
	}

	// Stage 10: resource fit, production projects only.
	if in.ProductionRelated {
		amount, ok := ParseCapital(in.Capital)
		if !ok {
			return returned(StageResourceFit, ReasonCapitalUnparsable, []string{FieldCapital},
				"Capital is in an unparsable format. Provide an amount or a range.")
		}
		if amount < e.threshold {
			return Result{
				Decision:      ReturnWithConditions,
				Stage:         StageResourceFit,
				ReasonCodes:   []ReasonCode{ReasonCapitalTooLow},
				MissingFields: []string{},
				Notes:         []string{fmt.Sprintf("Production case: capital looks insufficient for a basic entry (threshold %d).", e.threshold)},
			}
		}
	}

	return Result{
		Decision:      Admitted,
		Stage:         StageResourceFit,
		ReasonCodes:   []ReasonCode{},
		MissingFields: []string{},
		Notes:         []string{"Gatekeeper passed. Admission to analysis granted."},
	}
}

func returned(stage Stage, code ReasonCode, fields []string, note string) Result {
	return Result{
		Decision:      ReturnWithConditions,
		Stage:         stage,
		ReasonCodes:   []ReasonCode{code},
		MissingFields: fields,
		Notes:         []string{note},
	}
}

func hasStructuralGap(missing []string) bool {
	for _, f := range missing {
		if f != FieldResponsibility {
			return true
		}
	}
	return false
}

// presenceStage picks the reporting stage for a presence failure by field
// priority: request shape first, then narrative fields, then constraints.
func presenceStage(missing []string) Stage {
	has := func(field string) bool {
		for _, f := range missing {
			if f == field {
				return true
			}
		}
		return false
	}
	switch {
	case has(FieldRequestType) || has(FieldProjectType):
		return StageRequest
	case has(FieldIdea):
		return StageIdea
	case has(FieldContext):
		return StageContext
	case has(FieldProblem):
		return StageProblem
	case hasRegionField(missing) || has(FieldCapital):
		return StageConstraints
	case has(FieldGoal):
		return StageGoal
	default:
		return StageConstraints
	}
}

func hasRegionField(missing []string) bool {
	for _, f := range missing {
		if strings.HasPrefix(f, "region.") {
			return true
		}
	}
	return false
}
