package orchestrator

import (
	"sort"

	contractx "github.com/orderflowlabs/orderflow-agent/agent/contract"
	toolx "github.com/orderflowlabs/orderflow-agent/agent/tool"
)

type Verdict string

const (
	VerdictPending   Verdict = "pending"
	VerdictSucceeded Verdict = "succeeded"
	VerdictFailed    Verdict = "failed"
)

// Step is one executed operation: the request that triggered it and the
// result it produced.
type Step struct {
	Operation string                      `json:"operation"`
	Request   contractx.InvocationRequest `json:"request"`
	Result    contractx.OperationResult   `json:"result"`
}

// Result is the read-only record of one completed run. Constructed exactly
// once when the run reaches a terminal verdict; partial progress is always
// retained.
type Result struct {
	Verdict Verdict `json:"verdict"`
	Reason  string  `json:"reason,omitempty"`
	Steps   []Step  `json:"steps"`
}

func (r Result) Succeeded() bool { return r.Verdict == VerdictSucceeded }

// Executed reports whether the named operation appears in the run's record.
func (r Result) Executed(operation string) bool {
	for _, step := range r.Steps {
		if step.Operation == operation {
			return true
		}
	}
	return false
}

// The set of operations that must all appear with non-failing results for a
// run to report success.
var requiredOperations = []string{
	toolx.OpCheckInventory,
	toolx.OpProcessPayment,
	toolx.OpSendConfirmationEmail,
}

// sessionState is the mutable state of one run. Owned by a single Run call;
// never shared across runs.
type sessionState struct {
	steps   []Step
	history []contractx.HistoryEntry
	verdict Verdict
	reason  string
}

func newSessionState(userRequest string) *sessionState {
	return &sessionState{
		history: []contractx.HistoryEntry{{UserRequest: userRequest}},
		verdict: VerdictPending,
	}
}

// recordStep appends an executed operation to both the step record and the
// conversation history. History is append-only; entries are never reordered
// or removed.
func (s *sessionState) recordStep(req contractx.InvocationRequest, res contractx.OperationResult) {
	s.steps = append(s.steps, Step{
		Operation: req.Operation,
		Request:   req,
		Result:    res,
	})
	s.history = append(s.history, contractx.HistoryEntry{
		Call:   &req,
		Result: &res,
	})
}

func (s *sessionState) historyView() []contractx.HistoryEntry {
	return append([]contractx.HistoryEntry(nil), s.history...)
}

func (s *sessionState) executed(operation string) bool {
	for _, step := range s.steps {
		if step.Operation == operation {
			return true
		}
	}
	return false
}

// executedOK reports whether the operation ran with its domain success flag
// set.
func (s *sessionState) executedOK(operation string) bool {
	for _, step := range s.steps {
		if step.Operation == operation && step.Result.OK {
			return true
		}
	}
	return false
}

// missingRequired returns the sorted required operations absent from the
// record (or present only with failing results).
func (s *sessionState) missingRequired() []string {
	var missing []string
	for _, op := range requiredOperations {
		if !s.executedOK(op) {
			missing = append(missing, op)
		}
	}
	sort.Strings(missing)
	return missing
}

func (s *sessionState) terminal() bool {
	return s.verdict != VerdictPending
}

func (s *sessionState) succeed() {
	if s.terminal() {
		return
	}
	s.verdict = VerdictSucceeded
}

func (s *sessionState) fail(reason string) {
	if s.terminal() {
		return
	}
	s.verdict = VerdictFailed
	s.reason = reason
}

func (s *sessionState) result() Result {
	return Result{
		Verdict: s.verdict,
		Reason:  s.reason,
		Steps:   append([]Step(nil), s.steps...),
	}
}
