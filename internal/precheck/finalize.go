package precheck

import (
	"context"

	"idea-gatekeeper/internal/gatekeeper"
)

// Neutral is the response used when the collaborator is absent, failing or
// unusable. It never blocks admission: the deterministic engine remains the
// sole authority.
func Neutral(input gatekeeper.Input) Response {
	normalized := gatekeeper.NormalizeInput(input)
	return Response{
		Verdict:       VerdictOK,
		Normalized:    &normalized,
		Issues:        []Issue{},
		Clarification: Clarification{QuestionKeys: []string{}},
	}
}

// Finalize shields callers from collaborator failures. A nil response or an
// error degrades to Neutral; a usable response is completed so downstream
// code never sees nil slices.
func Finalize(input gatekeeper.Input, resp *Response, err error) Response {
	if err != nil || resp == nil {
		return Neutral(input)
	}
	out := *resp
	switch out.Verdict {
	case VerdictOK, VerdictNeedsClarification, VerdictBlock:
	default:
		out.Verdict = VerdictNeedsClarification
	}
	if out.Issues == nil {
		out.Issues = []Issue{}
	}
	if out.Clarification.QuestionKeys == nil {
		out.Clarification.QuestionKeys = []string{}
	}
	return out
}

// Run executes the collaborator (when enabled) and always returns a usable
// response. This is the only entry point the API layer uses.
func Run(ctx context.Context, p Prechecker, input gatekeeper.Input) Response {
	if p == nil || !p.Enabled() {
		return Neutral(input)
	}
	resp, err := p.Check(ctx, input)
	if err != nil {
		return Neutral(input)
	}
	return Finalize(input, &resp, nil)
}
