package tool

import (
	"github.com/cloudwego/eino/schema"

	registryx "github.com/orderflowlabs/orderflow-agent/agent/registry"
)

// NewCatalog builds the fixed registry of the five order-processing
// operations. Called once at startup; the result is read-only and safe to
// share across runs.
func NewCatalog() *registryx.Registry {
	reg := registryx.New()
	for _, spec := range catalogSpecs() {
		reg.MustRegister(spec)
	}
	return reg
}

func catalogSpecs() []registryx.Spec {
	return []registryx.Spec{
		{
			Name: OpCheckInventory,
			Desc: "Check product availability and pricing. MUST be called first.",
			Args: []registryx.ArgSpec{
				{Name: "product_id", Type: registryx.ArgString, Desc: "Product ID: LAPTOP-001, MOUSE-002, KEYBOARD-003, MONITOR-004, or HEADSET-005", Required: true},
				{Name: "quantity", Type: registryx.ArgInteger, Desc: "Quantity to order", Required: true},
			},
			Fn: CheckInventory,
		},
		{
			Name: OpApplyDiscount,
			Desc: "Apply discount code. Call after inventory check if discount code provided.",
			Args: []registryx.ArgSpec{
				{Name: "total_price", Type: registryx.ArgNumber, Desc: "Total price before discount", Required: true},
				{Name: "discount_code", Type: registryx.ArgString, Desc: "Discount code: WELCOME10, SAVE50, or VIP20. Use empty string if none."},
			},
			Fn: ApplyDiscount,
		},
		{
			Name: OpCalculateShipping,
			Desc: "Calculate shipping cost. Call after discount. Estimate weight as quantity * 2.5 kg.",
			Args: []registryx.ArgSpec{
				{Name: "destination_city", Type: registryx.ArgString, Desc: "Destination: Jakarta, Bandung, Surabaya, Bali, or Singapore", Required: true},
				{Name: "total_weight_kg", Type: registryx.ArgNumber, Desc: "Total weight in kg", Required: true},
			},
			Fn: CalculateShipping,
		},
		{
			Name: OpProcessPayment,
			Desc: "Process payment. Call after shipping calculation. Amount = discounted_price + shipping.",
			Args: []registryx.ArgSpec{
				{Name: "amount", Type: registryx.ArgNumber, Desc: "Total amount to charge", Required: true},
				{Name: "payment_method", Type: registryx.ArgString, Desc: "Payment method: credit_card, bank_transfer, or ewallet", Required: true},
			},
			Fn: ProcessPayment,
		},
		{
			Name: OpSendConfirmationEmail,
			Desc: "Send confirmation email. MUST be called last after payment.",
			Args: []registryx.ArgSpec{
				{Name: "customer_email", Type: registryx.ArgString, Desc: "Customer email address", Required: true},
				{Name: "order_summary", Type: registryx.ArgObject, Desc: "Order summary with all details", Required: true},
			},
			Fn: SendConfirmationEmail,
		},
	}
}

// Infos converts the registry's schema into eino tool declarations for the
// decision model.
func Infos(reg *registryx.Registry) []*schema.ToolInfo {
	specs := reg.Describe()
	infos := make([]*schema.ToolInfo, 0, len(specs))
	for _, spec := range specs {
		params := make(map[string]*schema.ParameterInfo, len(spec.Args))
		for _, arg := range spec.Args {
			params[arg.Name] = &schema.ParameterInfo{
				Type:     dataTypeFor(arg.Type),
				Desc:     arg.Desc,
				Required: arg.Required,
			}
		}
		infos = append(infos, &schema.ToolInfo{
			Name:        spec.Name,
			Desc:        spec.Desc,
			ParamsOneOf: schema.NewParamsOneOfByParams(params),
		})
	}
	return infos
}

func dataTypeFor(t registryx.ArgType) schema.DataType {
	switch t {
	case registryx.ArgInteger:
		return schema.Integer
	case registryx.ArgNumber:
		return schema.Number
	case registryx.ArgObject:
		return schema.Object
	default:
		return schema.String
	}
}
