package contract

import "context"

// Decider is the external decision-making service. Given the full run
// history it returns the next turn: operations to execute, a closing
// message, or an unparseable marker. Transport failures wrap
// ErrDecisionService and are terminal for the run; retry policy, if any,
// belongs inside the adapter.
type Decider interface {
	NextTurn(ctx context.Context, history []HistoryEntry) (Turn, error)
}

// Extractor turns a raw order request into structured order details.
type Extractor interface {
	Extract(ctx context.Context, userRequest string) (OrderDetails, error)
}
