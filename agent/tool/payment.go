package tool

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	contractx "github.com/orderflowlabs/orderflow-agent/agent/contract"
)

const OpProcessPayment = "process_payment"

var validPaymentMethods = []string{"credit_card", "bank_transfer", "ewallet"}

const transactionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type PaymentOutput struct {
	Success       bool    `json:"success"`
	PaymentMethod string  `json:"payment_method"`
	Amount        float64 `json:"amount,omitempty"`
	TransactionID string  `json:"transaction_id,omitempty"`
	Status        string  `json:"status,omitempty"`
	Reason        string  `json:"reason,omitempty"`
}

func (o PaymentOutput) DomainOK() bool { return o.Success }

// ProcessPayment simulates charging the given amount. The only failure mode
// is an unknown payment method.
func ProcessPayment(_ context.Context, args map[string]any) (contractx.OperationResult, error) {
	amount, err := floatArg(args, "amount")
	if err != nil {
		return contractx.OperationResult{}, err
	}
	method, err := stringArg(args, "payment_method")
	if err != nil {
		return contractx.OperationResult{}, err
	}

	if !isValidPaymentMethod(method) {
		return paymentResult(PaymentOutput{
			Success:       false,
			PaymentMethod: method,
			Reason:        fmt.Sprintf("Invalid payment method. Valid methods: %s", strings.Join(validPaymentMethods, ", ")),
		}), nil
	}

	return paymentResult(PaymentOutput{
		Success:       true,
		PaymentMethod: method,
		Amount:        amount,
		TransactionID: newTransactionID(),
		Status:        "completed",
	}), nil
}

func isValidPaymentMethod(method string) bool {
	for _, m := range validPaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

func newTransactionID() string {
	var b strings.Builder
	b.WriteString("TXN-")
	for i := 0; i < 10; i++ {
		b.WriteByte(transactionIDAlphabet[rand.Intn(len(transactionIDAlphabet))])
	}
	return b.String()
}

func paymentResult(out PaymentOutput) contractx.OperationResult {
	return contractx.OperationResult{
		Operation: OpProcessPayment,
		OK:        out.Success,
		Payload:   out,
	}
}
