package contract

// TurnKind is the closed set of outcomes a decision turn can produce.
type TurnKind string

const (
	TurnInvocations TurnKind = "invocations"
	TurnFinal       TurnKind = "final"
	TurnUnparseable TurnKind = "unparseable"
)

// Turn is one decision-maker response. Exactly one of Invocations or
// Message is meaningful, selected by Kind.
type Turn struct {
	Kind        TurnKind            `json:"kind"`
	Invocations []InvocationRequest `json:"invocations,omitempty"`
	Message     string              `json:"message,omitempty"`
}

// InvocationRequest is one decision-maker-issued instruction to run an
// operation. Consumed immediately by the orchestration loop; not retained
// beyond validation and execution.
type InvocationRequest struct {
	Operation string         `json:"operation"`
	Args      map[string]any `json:"args,omitempty"`
	TurnIndex int            `json:"turn_index"`
}

// OperationResult is the outcome of executing one operation. Payload holds
// the operation's typed output record; OK mirrors the record's domain
// success flag (available/success) and is true for purely informational
// operations.
type OperationResult struct {
	Operation string `json:"operation"`
	OK        bool   `json:"ok"`
	Payload   any    `json:"payload,omitempty"`
}

// DomainOutcome is implemented by operation outputs that carry a domain
// success flag under their documented key.
type DomainOutcome interface {
	DomainOK() bool
}

// HistoryEntry is one element of a run's conversation history: either the
// opening user request or an executed invocation with its result.
type HistoryEntry struct {
	UserRequest string             `json:"user_request,omitempty"`
	Call        *InvocationRequest `json:"call,omitempty"`
	Result      *OperationResult   `json:"result,omitempty"`
}

// OrderDetails is the structured form of a customer order request, produced
// by the extraction layer.
type OrderDetails struct {
	ProductID     string `json:"product_id"`
	Quantity      int    `json:"quantity"`
	Destination   string `json:"destination"`
	DiscountCode  string `json:"discount_code,omitempty"`
	PaymentMethod string `json:"payment_method"`
	CustomerEmail string `json:"customer_email"`
}
