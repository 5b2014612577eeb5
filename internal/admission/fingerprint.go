package admission

import (
	"encoding/json"
	"fmt"
	"hash/fnv"

	"idea-gatekeeper/internal/gatekeeper"
)

// admissionPayload fixes the set and order of fields the fingerprint covers.
// Only fields that affect admission participate; notes and UI-only state do
// not. Struct field order makes the serialization stable regardless of how
// the draft was assembled.
type admissionPayload struct {
	RequestType             gatekeeper.RequestType `json:"request_type"`
	ProjectType             gatekeeper.ProjectType `json:"project_type"`
	Idea                    string                 `json:"idea"`
	Goal                    string                 `json:"goal"`
	Context                 string                 `json:"context"`
	Problem                 string                 `json:"problem"`
	Country                 string                 `json:"region.country"`
	Region                  string                 `json:"region.region"`
	City                    string                 `json:"region.city"`
	Capital                 any                    `json:"capital"`
	TimeHorizon             string                 `json:"time_horizon"`
	ResponsibilityConfirmed bool                   `json:"responsibility_confirmed"`
	ProductionRelated       bool                   `json:"production_related"`
}

// Fingerprint produces a stable, comparable digest of the admission-relevant
// subset of the record. It is an equality token, not a cryptographic hash.
func Fingerprint(raw gatekeeper.Input) string {
	in := gatekeeper.NormalizeInput(raw)
	payload := admissionPayload{
		RequestType:             in.RequestType,
		ProjectType:             in.ProjectType,
		Idea:                    in.Idea,
		Goal:                    in.Goal,
		Context:                 in.Context,
		Problem:                 in.Problem,
		Country:                 in.Region.Country,
		Region:                  in.Region.Region,
		City:                    in.Region.City,
		Capital:                 in.Capital,
		TimeHorizon:             in.TimeHorizon,
		ResponsibilityConfirmed: in.ResponsibilityConfirmed,
		ProductionRelated:       in.ProductionRelated,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		// Only unmarshalable capital values could get here, and
		// normalization has already reduced capital to string/float64/nil.
		return "unhashable"
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return fmt.Sprintf("%016x", h.Sum64())
}
