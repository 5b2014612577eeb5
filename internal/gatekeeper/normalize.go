package gatekeeper

import (
	"encoding/json"
	"math"
	"strings"
)

// NormalizeInput coerces an externally supplied record into the strictly
// shaped value the engine works on: text fields trimmed and
// whitespace-collapsed, enum values validated (unknown values become empty),
// capital reduced to a string or float64 (anything else drops to nil). The
// engine is total over whatever comes back from here.
func NormalizeInput(raw Input) Input {
	in := raw
	in.RequestType = normalizeRequestType(raw.RequestType)
	in.ProjectType = normalizeProjectType(raw.ProjectType)
	in.Idea = NormalizeText(raw.Idea)
	in.Goal = NormalizeText(raw.Goal)
	in.Context = NormalizeText(raw.Context)
	in.Problem = NormalizeText(raw.Problem)
	in.Region = Region{
		Country: NormalizeText(raw.Region.Country),
		Region:  NormalizeText(raw.Region.Region),
		City:    NormalizeText(raw.Region.City),
	}
	in.TimeHorizon = NormalizeText(raw.TimeHorizon)
	in.Capital = normalizeCapital(raw.Capital)
	in.Notes = strings.TrimSpace(raw.Notes)
	return in
}

func normalizeRequestType(v RequestType) RequestType {
	switch RequestType(strings.ToUpper(strings.TrimSpace(string(v)))) {
	case RequestOpportunity:
		return RequestOpportunity
	case RequestProblemSolving:
		return RequestProblemSolving
	default:
		return ""
	}
}

func normalizeProjectType(v ProjectType) ProjectType {
	switch ProjectType(strings.ToUpper(strings.TrimSpace(string(v)))) {
	case ProjectOnline:
		return ProjectOnline
	case ProjectOffline:
		return ProjectOffline
	default:
		return ""
	}
}

func normalizeCapital(v any) any {
	switch c := v.(type) {
	case nil:
		return nil
	case string:
		if strings.TrimSpace(c) == "" {
			return nil
		}
		return NormalizeText(c)
	case float64:
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil
		}
		return c
	case int:
		return float64(c)
	case int64:
		return float64(c)
	case json.Number:
		if f, err := c.Float64(); err == nil {
			return normalizeCapital(f)
		}
		return nil
	default:
		return nil
	}
}

// hasCapital reports presence only; parseability is checked later, at the
// resource-fit stage.
func hasCapital(v any) bool {
	switch c := v.(type) {
	case string:
		return strings.TrimSpace(c) != ""
	case float64:
		return !math.IsNaN(c) && !math.IsInf(c, 0)
	case nil:
		return false
	default:
		return false
	}
}
