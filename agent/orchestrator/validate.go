package orchestrator

import (
	"fmt"

	contractx "github.com/orderflowlabs/orderflow-agent/agent/contract"
	toolx "github.com/orderflowlabs/orderflow-agent/agent/tool"
)

// checkOrdering enforces the domain's data-dependency rules regardless of
// what the decision-maker requests: payment needs a successful inventory
// check and shipping quote first, and the confirmation email needs a
// successful payment. A violated rule fails the run; skipping silently
// would produce an incorrect charge.
func checkOrdering(st *sessionState, operation string) error {
	switch operation {
	case toolx.OpProcessPayment:
		if !st.executedOK(toolx.OpCheckInventory) || !st.executedOK(toolx.OpCalculateShipping) {
			return orderingViolation(operation)
		}
	case toolx.OpSendConfirmationEmail:
		if !st.executedOK(toolx.OpProcessPayment) {
			return orderingViolation(operation)
		}
	}
	return nil
}

func orderingViolation(operation string) error {
	return fmt.Errorf("%w: %s before its prerequisite", contractx.ErrOrderingViolation, operation)
}

// normalizeArgs copies the argument map and applies the one domain
// normalization rule: an explicit empty or null discount code means "no
// discount", so the argument is omitted rather than passed literally.
func normalizeArgs(operation string, args map[string]any) map[string]any {
	out := make(map[string]any, len(args))
	for k, v := range args {
		out[k] = v
	}

	if operation == toolx.OpApplyDiscount {
		if raw, ok := out["discount_code"]; ok {
			if raw == nil {
				delete(out, "discount_code")
			} else if s, isString := raw.(string); isString && s == "" {
				delete(out, "discount_code")
			}
		}
	}
	return out
}
