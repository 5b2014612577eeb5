package api

import (
	"idea-gatekeeper/internal/gatekeeper"
	"idea-gatekeeper/internal/i18n"
	"idea-gatekeeper/internal/precheck"
)

// langQuery selects the dictionary for translated texts in responses.
type langQuery struct {
	Lang string `form:"lang" binding:"omitempty,oneof=en ru"`
}

func (q langQuery) lang() i18n.Lang {
	if q.Lang == "" {
		return i18n.DefaultLang
	}
	return i18n.Lang(q.Lang)
}

// EvaluateResponse is the result of a pure engine run.
type EvaluateResponse struct {
	Decision      gatekeeper.Decision     `json:"decision"`
	Stage         gatekeeper.Stage        `json:"stage"`
	ReasonCodes   []gatekeeper.ReasonCode `json:"reason_codes"`
	ReasonTitles  []string                `json:"reason_titles"`
	MissingFields []string                `json:"missing_fields"`
	Notes         []string                `json:"notes"`
	QuestionKeys  []string                `json:"clarification_question_keys"`
	Questions     []string                `json:"clarification_questions"`
}

// PrecheckResponse is the full admission cycle output: the collaborator's
// advisory response, the deterministic result computed against the canonical
// draft, the merged decision and the resulting UI state.
type PrecheckResponse struct {
	UIState          string             `json:"ui_state"`
	Decision         string             `json:"decision"`
	AI               precheck.Response  `json:"ai"`
	Gatekeeper       *gatekeeper.Result `json:"gatekeeper,omitempty"`
	QuestionKeys     []string           `json:"clarification_question_keys"`
	Questions        []string           `json:"clarification_questions"`
	Fingerprint      string             `json:"fingerprint,omitempty"`
	StatusMessage    string             `json:"status_message,omitempty"`
	ProcessingTimeMs int64              `json:"processing_time_ms"`
}

// ConfigResponse reports the server's effective gatekeeper configuration.
type ConfigResponse struct {
	PrecheckEnabled  bool     `json:"precheck_enabled"`
	CapitalThreshold int64    `json:"capital_threshold"`
	RealityMarkers   int      `json:"reality_markers"`
	LegalityMarkers  int      `json:"legality_markers"`
	Languages        []string `json:"languages"`
}

func evaluateResponse(result gatekeeper.Result, keys []string, lang i18n.Lang) EvaluateResponse {
	titles := make([]string, 0, len(result.ReasonCodes))
	for _, code := range result.ReasonCodes {
		titles = append(titles, i18n.Lookup(lang, "gatekeeper.reason_codes."+string(code)))
	}
	return EvaluateResponse{
		Decision:      result.Decision,
		Stage:         result.Stage,
		ReasonCodes:   result.ReasonCodes,
		ReasonTitles:  titles,
		MissingFields: result.MissingFields,
		Notes:         result.Notes,
		QuestionKeys:  keys,
		Questions:     i18n.Translate(lang, keys),
	}
}
