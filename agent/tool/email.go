package tool

import (
	"context"
	"fmt"

	contractx "github.com/orderflowlabs/orderflow-agent/agent/contract"
)

const OpSendConfirmationEmail = "send_confirmation_email"

type EmailOutput struct {
	EmailSent    bool           `json:"email_sent"`
	Recipient    string         `json:"recipient"`
	Subject      string         `json:"subject"`
	OrderSummary map[string]any `json:"order_summary"`
	Status       string         `json:"status"`
}

func (o EmailOutput) DomainOK() bool { return o.EmailSent }

// SendConfirmationEmail simulates delivering the order confirmation; it
// always reports delivered.
func SendConfirmationEmail(_ context.Context, args map[string]any) (contractx.OperationResult, error) {
	recipient, err := stringArg(args, "customer_email")
	if err != nil {
		return contractx.OperationResult{}, err
	}
	summary, err := objectArg(args, "order_summary")
	if err != nil {
		return contractx.OperationResult{}, err
	}

	transactionID := "N/A"
	if raw, ok := summary["transaction_id"]; ok {
		if s, isString := raw.(string); isString && s != "" {
			transactionID = s
		}
	}

	out := EmailOutput{
		EmailSent:    true,
		Recipient:    recipient,
		Subject:      fmt.Sprintf("Order Confirmation - %s", transactionID),
		OrderSummary: summary,
		Status:       "delivered",
	}
	return contractx.OperationResult{
		Operation: OpSendConfirmationEmail,
		OK:        true,
		Payload:   out,
	}, nil
}
