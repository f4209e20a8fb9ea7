package tool

import (
	"context"
	"strings"
	"testing"
)

func TestCheckInventoryAvailable(t *testing.T) {
	t.Parallel()

	res, err := CheckInventory(context.Background(), map[string]any{
		"product_id": "LAPTOP-001",
		"quantity":   2.0,
	})
	if err != nil {
		t.Fatalf("CheckInventory() error = %v", err)
	}
	out, ok := res.Payload.(InventoryOutput)
	if !ok {
		t.Fatalf("unexpected payload type %T", res.Payload)
	}
	if !res.OK || !out.Available {
		t.Fatalf("expected available, got %#v", out)
	}
	if out.UnitPrice != 1200 || out.TotalPrice != 2400 {
		t.Fatalf("unexpected pricing: %#v", out)
	}
	if out.ProductName != "Business Laptop" {
		t.Fatalf("unexpected product name: %s", out.ProductName)
	}
}

func TestCheckInventoryInsufficientStock(t *testing.T) {
	t.Parallel()

	res, err := CheckInventory(context.Background(), map[string]any{
		"product_id": "HEADSET-005",
		"quantity":   16.0,
	})
	if err != nil {
		t.Fatalf("CheckInventory() error = %v", err)
	}
	out := res.Payload.(InventoryOutput)
	if res.OK || out.Available {
		t.Fatal("expected unavailable for quantity over stock")
	}
	if out.TotalPrice != 0 {
		t.Fatalf("unavailable order must not be priced: %v", out.TotalPrice)
	}
	if out.Stock != 15 {
		t.Fatalf("unexpected stock: %d", out.Stock)
	}
}

func TestCheckInventoryUnknownProduct(t *testing.T) {
	t.Parallel()

	res, err := CheckInventory(context.Background(), map[string]any{
		"product_id": "TABLET-009",
		"quantity":   1.0,
	})
	if err != nil {
		t.Fatalf("CheckInventory() error = %v", err)
	}
	out := res.Payload.(InventoryOutput)
	if out.Available || out.Reason != "Product not found" {
		t.Fatalf("unexpected output: %#v", out)
	}
}

func TestCheckInventoryBadArguments(t *testing.T) {
	t.Parallel()

	if _, err := CheckInventory(context.Background(), map[string]any{"product_id": 7.0, "quantity": 1.0}); err == nil {
		t.Fatal("expected error for non-string product_id")
	}
	if _, err := CheckInventory(context.Background(), map[string]any{"product_id": "MOUSE-002", "quantity": 1.5}); err == nil {
		t.Fatal("expected error for fractional quantity")
	}
}

func TestApplyDiscountPercentage(t *testing.T) {
	t.Parallel()

	res, err := ApplyDiscount(context.Background(), map[string]any{
		"total_price":   2400.0,
		"discount_code": "WELCOME10",
	})
	if err != nil {
		t.Fatalf("ApplyDiscount() error = %v", err)
	}
	out := res.Payload.(DiscountOutput)
	if !out.DiscountApplied || out.DiscountAmount != 240 || out.FinalPrice != 2160 {
		t.Fatalf("unexpected output: %#v", out)
	}
}

func TestApplyDiscountFixedCappedAtSubtotal(t *testing.T) {
	t.Parallel()

	res, err := ApplyDiscount(context.Background(), map[string]any{
		"total_price":   30.0,
		"discount_code": "SAVE50",
	})
	if err != nil {
		t.Fatalf("ApplyDiscount() error = %v", err)
	}
	out := res.Payload.(DiscountOutput)
	if out.DiscountAmount != 30 || out.FinalPrice != 0 {
		t.Fatalf("fixed discount must be capped at subtotal: %#v", out)
	}
}

func TestApplyDiscountUnknownOrAbsentCode(t *testing.T) {
	t.Parallel()

	for _, args := range []map[string]any{
		{"total_price": 100.0},
		{"total_price": 100.0, "discount_code": "EXPIRED99"},
	} {
		res, err := ApplyDiscount(context.Background(), args)
		if err != nil {
			t.Fatalf("ApplyDiscount() error = %v", err)
		}
		out := res.Payload.(DiscountOutput)
		if out.DiscountApplied || out.FinalPrice != 100 {
			t.Fatalf("unexpected output: %#v", out)
		}
		if !res.OK {
			t.Fatal("a missing discount never fails the operation")
		}
	}
}

func TestCalculateShippingZonePricing(t *testing.T) {
	t.Parallel()

	res, err := CalculateShipping(context.Background(), map[string]any{
		"destination_city": "Singapore",
		"total_weight_kg":  5.0,
	})
	if err != nil {
		t.Fatalf("CalculateShipping() error = %v", err)
	}
	out := res.Payload.(ShippingOutput)
	if !out.Available || out.ShippingCost != 90 {
		t.Fatalf("expected 50 + 5*8 = 90, got %#v", out)
	}
	if out.EstimatedDeliveryDays != 5 {
		t.Fatalf("unexpected delivery days: %d", out.EstimatedDeliveryDays)
	}
}

func TestCalculateShippingUnknownDestination(t *testing.T) {
	t.Parallel()

	res, err := CalculateShipping(context.Background(), map[string]any{
		"destination_city": "Berlin",
		"total_weight_kg":  2.5,
	})
	if err != nil {
		t.Fatalf("CalculateShipping() error = %v", err)
	}
	out := res.Payload.(ShippingOutput)
	if res.OK || out.Available {
		t.Fatal("expected unavailable destination")
	}
	if out.Reason == "" || out.ShippingCost != 0 {
		t.Fatalf("unexpected output: %#v", out)
	}
}

func TestProcessPaymentValidMethod(t *testing.T) {
	t.Parallel()

	res, err := ProcessPayment(context.Background(), map[string]any{
		"amount":         2180.0,
		"payment_method": "credit_card",
	})
	if err != nil {
		t.Fatalf("ProcessPayment() error = %v", err)
	}
	out := res.Payload.(PaymentOutput)
	if !out.Success || out.Status != "completed" {
		t.Fatalf("unexpected output: %#v", out)
	}
	if out.Amount != 2180 {
		t.Fatalf("amount must pass through unmodified: %v", out.Amount)
	}
	if !strings.HasPrefix(out.TransactionID, "TXN-") || len(out.TransactionID) != 14 {
		t.Fatalf("unexpected transaction id: %s", out.TransactionID)
	}
}

func TestProcessPaymentInvalidMethod(t *testing.T) {
	t.Parallel()

	res, err := ProcessPayment(context.Background(), map[string]any{
		"amount":         10.0,
		"payment_method": "cheque",
	})
	if err != nil {
		t.Fatalf("ProcessPayment() error = %v", err)
	}
	out := res.Payload.(PaymentOutput)
	if res.OK || out.Success {
		t.Fatal("expected declined payment")
	}
	if !strings.Contains(out.Reason, "Invalid payment method") {
		t.Fatalf("unexpected reason: %s", out.Reason)
	}
	if out.TransactionID != "" {
		t.Fatalf("declined payment must not carry a transaction id: %s", out.TransactionID)
	}
}

func TestSendConfirmationEmailSubject(t *testing.T) {
	t.Parallel()

	res, err := SendConfirmationEmail(context.Background(), map[string]any{
		"customer_email": "john@example.com",
		"order_summary":  map[string]any{"transaction_id": "TXN-ABC1234567", "total": 2180.0},
	})
	if err != nil {
		t.Fatalf("SendConfirmationEmail() error = %v", err)
	}
	out := res.Payload.(EmailOutput)
	if out.Subject != "Order Confirmation - TXN-ABC1234567" {
		t.Fatalf("unexpected subject: %s", out.Subject)
	}
	if !out.EmailSent || out.Status != "delivered" || out.Recipient != "john@example.com" {
		t.Fatalf("unexpected output: %#v", out)
	}
}

func TestSendConfirmationEmailWithoutTransactionID(t *testing.T) {
	t.Parallel()

	res, err := SendConfirmationEmail(context.Background(), map[string]any{
		"customer_email": "a@b.co",
		"order_summary":  map[string]any{},
	})
	if err != nil {
		t.Fatalf("SendConfirmationEmail() error = %v", err)
	}
	out := res.Payload.(EmailOutput)
	if out.Subject != "Order Confirmation - N/A" {
		t.Fatalf("unexpected subject: %s", out.Subject)
	}
}

func TestDomainOutcomeFlags(t *testing.T) {
	t.Parallel()

	if !(InventoryOutput{Available: true}).DomainOK() || (InventoryOutput{}).DomainOK() {
		t.Fatal("inventory flag must track available")
	}
	if !(ShippingOutput{Available: true}).DomainOK() || (ShippingOutput{}).DomainOK() {
		t.Fatal("shipping flag must track available")
	}
	if !(PaymentOutput{Success: true}).DomainOK() || (PaymentOutput{}).DomainOK() {
		t.Fatal("payment flag must track success")
	}
	if !(DiscountOutput{}).DomainOK() {
		t.Fatal("discount is informational only")
	}
}
