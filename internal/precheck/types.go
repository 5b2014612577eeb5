package precheck

import "idea-gatekeeper/internal/gatekeeper"

// Verdict is the advisory opinion of the precheck collaborator.
type Verdict string

const (
	VerdictOK                 Verdict = "OK"
	VerdictNeedsClarification Verdict = "NEEDS_CLARIFICATION"
	VerdictBlock              Verdict = "BLOCK"
)

// IssueCode flags a formal problem the collaborator spotted. The precheck
// layer never analyzes the business idea itself.
type IssueCode string

const (
	IssueGibberish       IssueCode = "GIBBERISH"
	IssueMissing         IssueCode = "MISSING"
	IssueRealityRisk     IssueCode = "REALITY_RISK"
	IssueLegalityRisk    IssueCode = "LEGALITY_RISK"
	IssuePromptInjection IssueCode = "PROMPT_INJECTION"
	IssueSystemPush      IssueCode = "SYSTEM_PUSH"
)

// Issue is a single flagged fact with an i18n message key.
type Issue struct {
	Code       IssueCode `json:"code"`
	Fields     []string  `json:"fields,omitempty"`
	MessageKey string    `json:"message_key"`
}

// Clarification carries i18n question keys, never free text.
type Clarification struct {
	QuestionKeys []string `json:"question_keys"`
}

// Response is the collaborator's full output. Normalized holds a safe
// partial normalization of the submitted record (trims only, no guessing).
type Response struct {
	Verdict       Verdict           `json:"verdict"`
	Normalized    *gatekeeper.Input `json:"normalized,omitempty"`
	Issues        []Issue           `json:"issues"`
	Clarification Clarification     `json:"clarification"`
}
