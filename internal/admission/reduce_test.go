package admission

import (
	"testing"

	"idea-gatekeeper/internal/gatekeeper"
	"idea-gatekeeper/internal/precheck"
)

func admittedResult() gatekeeper.Result {
	return gatekeeper.Result{
		Decision:      gatekeeper.Admitted,
		Stage:         gatekeeper.StageResourceFit,
		ReasonCodes:   []gatekeeper.ReasonCode{},
		MissingFields: []string{},
	}
}

func runCycle(t *testing.T, vm ViewModel, ai precheck.Response, result gatekeeper.Result) ViewModel {
	t.Helper()
	vm = Reduce(vm, EventPrecheckStarted{})
	if vm.State != StateAICheckRunning {
		t.Fatalf("expected AI_CHECK_RUNNING got %s", vm.State)
	}
	cycle := vm.PendingFingerprint
	vm = Reduce(vm, EventAIVerdict{Fingerprint: cycle, AI: ai})
	if vm.State == StateGatekeeperRunning {
		vm = Reduce(vm, EventGatekeeperResult{Fingerprint: cycle, Result: result})
	}
	return vm
}

func TestHappyPathToAdmittedClean(t *testing.T) {
	vm := NewViewModel(draftInput())
	vm = runCycle(t, vm, precheck.Neutral(vm.Draft), admittedResult())

	if vm.State != StateAdmittedClean {
		t.Fatalf("expected ADMITTED_CLEAN got %s", vm.State)
	}
	if !vm.CanProceed() {
		t.Fatalf("proceed must be enabled in ADMITTED_CLEAN")
	}
	if vm.AdmittedFingerprint == "" {
		t.Fatalf("admission must snapshot a fingerprint")
	}
	if vm.AdmittedFingerprint != Fingerprint(vm.Draft) {
		t.Fatalf("snapshot must match the canonical draft")
	}
}

func TestEditAfterAdmissionInvalidates(t *testing.T) {
	vm := NewViewModel(draftInput())
	vm = runCycle(t, vm, precheck.Neutral(vm.Draft), admittedResult())

	edited := vm.Draft
	edited.Idea = "Совсем другая идея"
	vm = Reduce(vm, EventEdit{Draft: edited})

	if vm.State != StateAdmittedDirty {
		t.Fatalf("expected ADMITTED_DIRTY got %s", vm.State)
	}
	if vm.AI != nil || vm.Result != nil {
		t.Fatalf("stored results must be cleared on invalidation")
	}
	if vm.CanProceed() {
		t.Fatalf("proceed must be disabled after invalidation")
	}
}

func TestEditOfNonAdmissionFieldStaysClean(t *testing.T) {
	vm := NewViewModel(draftInput())
	vm = runCycle(t, vm, precheck.Neutral(vm.Draft), admittedResult())

	edited := vm.Draft
	edited.Notes = "заметка для себя"
	vm = Reduce(vm, EventEdit{Draft: edited})

	if vm.State != StateAdmittedClean {
		t.Fatalf("notes edit must not invalidate admission, got %s", vm.State)
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	vm := NewViewModel(draftInput())
	vm = Reduce(vm, EventPrecheckStarted{})
	cycle := vm.PendingFingerprint

	// A newer edit supersedes the outstanding cycle.
	edited := vm.Draft
	edited.Goal = "Новая цель с новой метрикой"
	vm = Reduce(vm, EventEdit{Draft: edited})
	if vm.State != StateDraft {
		t.Fatalf("edit during a running cycle must return to DRAFT, got %s", vm.State)
	}

	// The late response keyed to the old fingerprint must change nothing.
	before := vm
	vm = Reduce(vm, EventAIVerdict{Fingerprint: cycle, AI: precheck.Neutral(edited)})
	if vm.State != before.State || vm.AI != nil {
		t.Fatalf("stale AI verdict must be discarded")
	}
}

func TestAIBlockStopsHard(t *testing.T) {
	vm := NewViewModel(draftInput())
	vm = Reduce(vm, EventPrecheckStarted{})
	cycle := vm.PendingFingerprint

	block := precheck.Neutral(vm.Draft)
	block.Verdict = precheck.VerdictBlock
	vm = Reduce(vm, EventAIVerdict{Fingerprint: cycle, AI: block})

	if vm.State != StateAIHardStop {
		t.Fatalf("expected AI_HARD_STOP got %s", vm.State)
	}
}

func TestEngineResultsDriveTerminalStates(t *testing.T) {
	tests := []struct {
		name    string
		ai      precheck.Verdict
		result  gatekeeper.Decision
		state   UIState
		proceed bool
	}{
		{"hard fail", precheck.VerdictOK, gatekeeper.HardFail, StateGatekeeperHardFail, false},
		{"return", precheck.VerdictOK, gatekeeper.ReturnWithConditions, StateGatekeeperReturn, false},
		{"ai clarification only", precheck.VerdictNeedsClarification, gatekeeper.Admitted, StateAINeedsClarification, false},
		{"admitted", precheck.VerdictOK, gatekeeper.Admitted, StateAdmittedClean, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vm := NewViewModel(draftInput())
			ai := precheck.Neutral(vm.Draft)
			ai.Verdict = tc.ai
			result := admittedResult()
			result.Decision = tc.result

			vm = runCycle(t, vm, ai, result)
			if vm.State != tc.state {
				t.Fatalf("expected %s got %s", tc.state, vm.State)
			}
			if vm.CanProceed() != tc.proceed {
				t.Fatalf("expected proceed=%v in %s", tc.proceed, vm.State)
			}
		})
	}
}

func TestPrecheckFailureReturnsToDraft(t *testing.T) {
	vm := NewViewModel(draftInput())
	vm = Reduce(vm, EventPrecheckStarted{})
	vm = Reduce(vm, EventPrecheckFailed{Fingerprint: vm.PendingFingerprint})

	if vm.State != StateDraft {
		t.Fatalf("expected DRAFT got %s", vm.State)
	}
}

func TestDirtyDraftRestartsCycle(t *testing.T) {
	vm := NewViewModel(draftInput())
	vm = runCycle(t, vm, precheck.Neutral(vm.Draft), admittedResult())

	edited := vm.Draft
	edited.Idea = "Новая идея получше"
	vm = Reduce(vm, EventEdit{Draft: edited})
	if !vm.CanPrecheck() {
		t.Fatalf("dirty draft must allow a new precheck cycle")
	}

	vm = runCycle(t, vm, precheck.Neutral(vm.Draft), admittedResult())
	if vm.State != StateAdmittedClean {
		t.Fatalf("expected re-admission, got %s", vm.State)
	}
}

func TestMergeDecision(t *testing.T) {
	tests := []struct {
		name    string
		engine  gatekeeper.Decision
		verdict precheck.Verdict
		want    gatekeeper.Decision
	}{
		{"engine hard fail wins", gatekeeper.HardFail, precheck.VerdictOK, gatekeeper.HardFail},
		{"ai block forces hard fail", gatekeeper.Admitted, precheck.VerdictBlock, gatekeeper.HardFail},
		{"engine return", gatekeeper.ReturnWithConditions, precheck.VerdictOK, gatekeeper.ReturnWithConditions},
		{"ai clarification", gatekeeper.Admitted, precheck.VerdictNeedsClarification, gatekeeper.ReturnWithConditions},
		{"agreement admits", gatekeeper.Admitted, precheck.VerdictOK, gatekeeper.Admitted},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := gatekeeper.Result{Decision: tc.engine}
			if got := MergeDecision(result, tc.verdict); got != tc.want {
				t.Fatalf("expected %s got %s", tc.want, got)
			}
		})
	}
}

func TestCanonicalDraftKeepsUserBooleans(t *testing.T) {
	draft := draftInput()
	normalized := draft
	normalized.Idea = "Химчистка премиум"
	normalized.ResponsibilityConfirmed = false // the collaborator must not flip this

	ai := precheck.Neutral(draft)
	ai.Normalized = &normalized

	canonical := CanonicalDraft(draft, &ai)
	if canonical.Idea != "Химчистка премиум" {
		t.Fatalf("normalized text must be merged, got %q", canonical.Idea)
	}
	if !canonical.ResponsibilityConfirmed {
		t.Fatalf("user confirmation must stay authoritative")
	}
}
