package orchestrator

import (
	"errors"
	"testing"

	contractx "github.com/orderflowlabs/orderflow-agent/agent/contract"
	toolx "github.com/orderflowlabs/orderflow-agent/agent/tool"
)

func recordOK(st *sessionState, operation string) {
	st.recordStep(
		contractx.InvocationRequest{Operation: operation},
		contractx.OperationResult{Operation: operation, OK: true},
	)
}

func recordFailed(st *sessionState, operation string) {
	st.recordStep(
		contractx.InvocationRequest{Operation: operation},
		contractx.OperationResult{Operation: operation, OK: false},
	)
}

func TestCheckOrderingPaymentNeedsInventoryAndShipping(t *testing.T) {
	t.Parallel()

	st := newSessionState("req")
	if err := checkOrdering(st, toolx.OpProcessPayment); !errors.Is(err, contractx.ErrOrderingViolation) {
		t.Fatalf("expected ordering violation, got %v", err)
	}

	recordOK(st, toolx.OpCheckInventory)
	if err := checkOrdering(st, toolx.OpProcessPayment); !errors.Is(err, contractx.ErrOrderingViolation) {
		t.Fatalf("inventory alone must not unlock payment, got %v", err)
	}

	recordOK(st, toolx.OpCalculateShipping)
	if err := checkOrdering(st, toolx.OpProcessPayment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckOrderingFailedPrerequisiteDoesNotCount(t *testing.T) {
	t.Parallel()

	st := newSessionState("req")
	recordFailed(st, toolx.OpCheckInventory)
	recordOK(st, toolx.OpCalculateShipping)

	if err := checkOrdering(st, toolx.OpProcessPayment); !errors.Is(err, contractx.ErrOrderingViolation) {
		t.Fatalf("a failed inventory check is no prerequisite, got %v", err)
	}
}

func TestCheckOrderingEmailNeedsPayment(t *testing.T) {
	t.Parallel()

	st := newSessionState("req")
	recordOK(st, toolx.OpCheckInventory)
	recordOK(st, toolx.OpCalculateShipping)

	if err := checkOrdering(st, toolx.OpSendConfirmationEmail); !errors.Is(err, contractx.ErrOrderingViolation) {
		t.Fatalf("expected ordering violation, got %v", err)
	}

	recordOK(st, toolx.OpProcessPayment)
	if err := checkOrdering(st, toolx.OpSendConfirmationEmail); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckOrderingUnconstrainedOperations(t *testing.T) {
	t.Parallel()

	st := newSessionState("req")
	for _, op := range []string{toolx.OpCheckInventory, toolx.OpApplyDiscount, toolx.OpCalculateShipping} {
		if err := checkOrdering(st, op); err != nil {
			t.Fatalf("%s should have no prerequisite, got %v", op, err)
		}
	}
}

func TestNormalizeArgsDropsEmptyDiscountCode(t *testing.T) {
	t.Parallel()

	for _, code := range []any{"", nil} {
		args := normalizeArgs(toolx.OpApplyDiscount, map[string]any{
			"total_price":   100.0,
			"discount_code": code,
		})
		if _, present := args["discount_code"]; present {
			t.Fatalf("discount_code=%v must be dropped", code)
		}
		if args["total_price"] != 100.0 {
			t.Fatal("other arguments must pass through")
		}
	}
}

func TestNormalizeArgsKeepsRealCodeAndCopies(t *testing.T) {
	t.Parallel()

	in := map[string]any{"total_price": 100.0, "discount_code": "VIP20"}
	out := normalizeArgs(toolx.OpApplyDiscount, in)

	if out["discount_code"] != "VIP20" {
		t.Fatalf("unexpected args: %#v", out)
	}
	out["total_price"] = 1.0
	if in["total_price"] != 100.0 {
		t.Fatal("normalizeArgs must not mutate the request's map")
	}
}

func TestNormalizeArgsOtherOperationsUntouched(t *testing.T) {
	t.Parallel()

	out := normalizeArgs(toolx.OpCheckInventory, map[string]any{"discount_code": ""})
	if _, present := out["discount_code"]; !present {
		t.Fatal("normalization applies to apply_discount only")
	}
}
