// Package admission tracks the client-side lifecycle of a draft: from
// editing through the optional AI precheck and the deterministic gatekeeper
// run, to admission and dirty invalidation once an admitted draft is edited
// again. The whole machine is a value type updated through a single reducer;
// there is no ambient mutable state.
package admission

import (
	"idea-gatekeeper/internal/gatekeeper"
	"idea-gatekeeper/internal/precheck"
)

// UIState is one of the nine states the UI renders from.
type UIState string

const (
	StateDraft                UIState = "DRAFT"
	StateAICheckRunning       UIState = "AI_CHECK_RUNNING"
	StateAINeedsClarification UIState = "AI_NEEDS_CLARIFICATION"
	StateAIHardStop           UIState = "AI_HARD_STOP"
	StateGatekeeperRunning    UIState = "GATEKEEPER_RUNNING"
	StateGatekeeperReturn     UIState = "GATEKEEPER_RETURN"
	StateGatekeeperHardFail   UIState = "GATEKEEPER_HARD_FAIL"
	StateAdmittedClean        UIState = "ADMITTED_CLEAN"
	StateAdmittedDirty        UIState = "ADMITTED_DIRTY"
)

// ViewModel is the complete, value-typed machine state.
type ViewModel struct {
	State UIState
	Draft gatekeeper.Input

	AI     *precheck.Response
	Result *gatekeeper.Result

	// AdmittedFingerprint is the snapshot taken when the draft was admitted;
	// PendingFingerprint keys an outstanding precheck call so that stale
	// responses can be discarded.
	AdmittedFingerprint string
	PendingFingerprint  string

	StatusKey string
}

// NewViewModel starts a fresh session in DRAFT with the given draft record.
func NewViewModel(draft gatekeeper.Input) ViewModel {
	return ViewModel{State: StateDraft, Draft: draft}
}

// CanProceed reports whether the "proceed to analysis" action is enabled.
// Only a clean admitted draft unlocks analysis.
func (vm ViewModel) CanProceed() bool {
	return vm.State == StateAdmittedClean
}

// CanPrecheck reports whether a new precheck cycle may start.
func (vm ViewModel) CanPrecheck() bool {
	switch vm.State {
	case StateAdmittedClean, StateAICheckRunning, StateGatekeeperRunning:
		return false
	default:
		return true
	}
}
