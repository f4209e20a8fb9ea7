package tool

import (
	"context"
	"math"

	contractx "github.com/orderflowlabs/orderflow-agent/agent/contract"
)

const OpApplyDiscount = "apply_discount"

type discountKind string

const (
	discountPercentage discountKind = "percentage"
	discountFixed      discountKind = "fixed"
)

type discount struct {
	kind        discountKind
	value       float64
	description string
}

var discountTable = map[string]discount{
	"WELCOME10": {kind: discountPercentage, value: 10, description: "10% off for new customers"},
	"SAVE50":    {kind: discountFixed, value: 50, description: "$50 off orders over $500"},
	"VIP20":     {kind: discountPercentage, value: 20, description: "20% off for VIP members"},
}

type DiscountOutput struct {
	DiscountApplied     bool    `json:"discount_applied"`
	DiscountCode        string  `json:"discount_code,omitempty"`
	DiscountDescription string  `json:"discount_description,omitempty"`
	OriginalPrice       float64 `json:"original_price"`
	DiscountAmount      float64 `json:"discount_amount"`
	FinalPrice          float64 `json:"final_price"`
}

// Applying a discount never fails the run; an unknown code simply leaves
// the price unchanged.
func (o DiscountOutput) DomainOK() bool { return true }

// ApplyDiscount applies a percentage or fixed-amount code to the subtotal.
// A fixed discount is capped at the subtotal.
func ApplyDiscount(_ context.Context, args map[string]any) (contractx.OperationResult, error) {
	totalPrice, err := floatArg(args, "total_price")
	if err != nil {
		return contractx.OperationResult{}, err
	}

	code := ""
	if raw, ok := args["discount_code"]; ok {
		if s, isString := raw.(string); isString {
			code = s
		}
	}

	d, ok := discountTable[code]
	if code == "" || !ok {
		return discountResult(DiscountOutput{
			DiscountApplied: false,
			DiscountCode:    code,
			OriginalPrice:   totalPrice,
			FinalPrice:      totalPrice,
		}), nil
	}

	var amount float64
	switch d.kind {
	case discountPercentage:
		amount = totalPrice * d.value / 100
	case discountFixed:
		amount = math.Min(d.value, totalPrice)
	}

	return discountResult(DiscountOutput{
		DiscountApplied:     true,
		DiscountCode:        code,
		DiscountDescription: d.description,
		OriginalPrice:       totalPrice,
		DiscountAmount:      amount,
		FinalPrice:          totalPrice - amount,
	}), nil
}

func discountResult(out DiscountOutput) contractx.OperationResult {
	return contractx.OperationResult{
		Operation: OpApplyDiscount,
		OK:        true,
		Payload:   out,
	}
}
