package admission

import (
	"idea-gatekeeper/internal/gatekeeper"
	"idea-gatekeeper/internal/precheck"
)

// Event is one input to the reducer: a user edit, or a phase of the
// precheck/gatekeeper cycle completing.
type Event interface{ isEvent() }

// EventEdit replaces the draft with an edited copy.
type EventEdit struct {
	Draft gatekeeper.Input
}

// EventPrecheckStarted marks the beginning of a precheck cycle. The reducer
// keys the cycle to the draft's fingerprint at start time.
type EventPrecheckStarted struct{}

// EventPrecheckFailed reports a transport-level precheck failure for the
// cycle keyed by Fingerprint.
type EventPrecheckFailed struct {
	Fingerprint string
}

// EventAIVerdict delivers the collaborator's response for the cycle keyed by
// Fingerprint.
type EventAIVerdict struct {
	Fingerprint string
	AI          precheck.Response
}

// EventGatekeeperResult delivers the deterministic engine's result, computed
// against the canonical draft of the cycle keyed by Fingerprint.
type EventGatekeeperResult struct {
	Fingerprint string
	Result      gatekeeper.Result
}

func (EventEdit) isEvent()             {}
func (EventPrecheckStarted) isEvent()  {}
func (EventPrecheckFailed) isEvent()   {}
func (EventAIVerdict) isEvent()        {}
func (EventGatekeeperResult) isEvent() {}

// Reduce is the single transition function of the machine. It takes the
// current view model by value and returns the next one; stale events (keyed
// to a fingerprint the draft no longer has) leave the model unchanged.
func Reduce(vm ViewModel, ev Event) ViewModel {
	switch e := ev.(type) {
	case EventEdit:
		return reduceEdit(vm, e)
	case EventPrecheckStarted:
		vm.State = StateAICheckRunning
		vm.PendingFingerprint = Fingerprint(vm.Draft)
		vm.StatusKey = ""
		return vm
	case EventPrecheckFailed:
		if !vm.accepts(e.Fingerprint) {
			return vm
		}
		vm.State = StateDraft
		vm.PendingFingerprint = ""
		return vm
	case EventAIVerdict:
		return reduceAIVerdict(vm, e)
	case EventGatekeeperResult:
		return reduceGatekeeperResult(vm, e)
	default:
		return vm
	}
}

func reduceEdit(vm ViewModel, e EventEdit) ViewModel {
	prev := vm.State
	vm.Draft = e.Draft

	switch prev {
	case StateAdmittedClean:
		if Fingerprint(e.Draft) != vm.AdmittedFingerprint {
			// Never show a decision computed against superseded input.
			vm.State = StateAdmittedDirty
			vm.AI = nil
			vm.Result = nil
			vm.StatusKey = "gatekeeper.status.dirty"
		}
	case StateAICheckRunning, StateGatekeeperRunning:
		// The outstanding cycle is now keyed to superseded input; its
		// result will be discarded, so fall back to DRAFT right away.
		if Fingerprint(e.Draft) != vm.PendingFingerprint {
			vm.State = StateDraft
			vm.PendingFingerprint = ""
		}
	}
	return vm
}

func reduceAIVerdict(vm ViewModel, e EventAIVerdict) ViewModel {
	if vm.State != StateAICheckRunning || !vm.accepts(e.Fingerprint) {
		return vm
	}
	ai := e.AI
	vm.AI = &ai
	if ai.Verdict == precheck.VerdictBlock {
		vm.State = StateAIHardStop
		vm.PendingFingerprint = ""
		return vm
	}
	vm.State = StateGatekeeperRunning
	return vm
}

func reduceGatekeeperResult(vm ViewModel, e EventGatekeeperResult) ViewModel {
	if vm.State != StateGatekeeperRunning || !vm.accepts(e.Fingerprint) {
		return vm
	}
	result := e.Result
	vm.Result = &result
	vm.PendingFingerprint = ""

	switch MergeDecision(result, vm.aiVerdict()) {
	case gatekeeper.HardFail:
		vm.State = StateGatekeeperHardFail
	case gatekeeper.ReturnWithConditions:
		if result.Decision == gatekeeper.Admitted {
			// Only the collaborator asked for clarification.
			vm.State = StateAINeedsClarification
		} else {
			vm.State = StateGatekeeperReturn
		}
	default:
		canonical := CanonicalDraft(vm.Draft, vm.AI)
		vm.Draft = canonical
		vm.AdmittedFingerprint = Fingerprint(canonical)
		vm.State = StateAdmittedClean
		vm.StatusKey = "gatekeeper.status.admitted"
	}
	return vm
}

// accepts reports whether an event keyed to the given fingerprint still
// matches the current draft; anything else arrived after a newer edit.
func (vm ViewModel) accepts(fingerprint string) bool {
	return fingerprint != "" &&
		fingerprint == vm.PendingFingerprint &&
		fingerprint == Fingerprint(vm.Draft)
}

func (vm ViewModel) aiVerdict() precheck.Verdict {
	if vm.AI == nil {
		return precheck.VerdictOK
	}
	return vm.AI.Verdict
}

// MergeDecision combines the deterministic result with the advisory verdict
// using fixed precedence: an engine hard fail wins unconditionally, an
// external BLOCK forces a hard fail, either side asking for clarification
// yields RETURN_WITH_CONDITIONS, and only full agreement admits.
func MergeDecision(result gatekeeper.Result, verdict precheck.Verdict) gatekeeper.Decision {
	if result.Decision == gatekeeper.HardFail {
		return gatekeeper.HardFail
	}
	if verdict == precheck.VerdictBlock {
		return gatekeeper.HardFail
	}
	if result.Decision == gatekeeper.ReturnWithConditions || verdict == precheck.VerdictNeedsClarification {
		return gatekeeper.ReturnWithConditions
	}
	return gatekeeper.Admitted
}

// CanonicalDraft merges the collaborator's safe normalization into the draft
// while keeping the user's own boolean confirmations authoritative.
func CanonicalDraft(draft gatekeeper.Input, ai *precheck.Response) gatekeeper.Input {
	canonical := gatekeeper.NormalizeInput(draft)
	if ai == nil || ai.Normalized == nil {
		return canonical
	}
	n := gatekeeper.NormalizeInput(*ai.Normalized)
	if n.Idea != "" {
		canonical.Idea = n.Idea
	}
	if n.Goal != "" {
		canonical.Goal = n.Goal
	}
	if n.Context != "" {
		canonical.Context = n.Context
	}
	if n.Problem != "" {
		canonical.Problem = n.Problem
	}
	if n.Region.Country != "" {
		canonical.Region.Country = n.Region.Country
	}
	if n.Region.Region != "" {
		canonical.Region.Region = n.Region.Region
	}
	if n.Region.City != "" {
		canonical.Region.City = n.Region.City
	}
	if n.TimeHorizon != "" {
		canonical.TimeHorizon = n.TimeHorizon
	}
	return canonical
}
