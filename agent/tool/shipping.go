package tool

import (
	"context"

	contractx "github.com/orderflowlabs/orderflow-agent/agent/contract"
)

const OpCalculateShipping = "calculate_shipping"

// WeightPerItemKg is the estimated package weight per ordered unit.
const WeightPerItemKg = 2.5

type shippingZone struct {
	baseCost     float64
	perKg        float64
	deliveryDays int
}

var shippingZones = map[string]shippingZone{
	"Jakarta":   {baseCost: 10, perKg: 2, deliveryDays: 1},
	"Bandung":   {baseCost: 15, perKg: 3, deliveryDays: 2},
	"Surabaya":  {baseCost: 20, perKg: 4, deliveryDays: 3},
	"Bali":      {baseCost: 30, perKg: 5, deliveryDays: 4},
	"Singapore": {baseCost: 50, perKg: 8, deliveryDays: 5},
}

type ShippingOutput struct {
	Destination           string  `json:"destination"`
	Available             bool    `json:"available"`
	WeightKg              float64 `json:"weight_kg,omitempty"`
	ShippingCost          float64 `json:"shipping_cost"`
	EstimatedDeliveryDays int     `json:"estimated_delivery_days,omitempty"`
	Reason                string  `json:"reason,omitempty"`
}

func (o ShippingOutput) DomainOK() bool { return o.Available }

// CalculateShipping prices delivery as base + weight * per-kg rate for the
// destination's zone.
func CalculateShipping(_ context.Context, args map[string]any) (contractx.OperationResult, error) {
	destination, err := stringArg(args, "destination_city")
	if err != nil {
		return contractx.OperationResult{}, err
	}
	weightKg, err := floatArg(args, "total_weight_kg")
	if err != nil {
		return contractx.OperationResult{}, err
	}

	zone, ok := shippingZones[destination]
	if !ok {
		return shippingResult(ShippingOutput{
			Destination: destination,
			Available:   false,
			Reason:      "Shipping not available to this location",
		}), nil
	}

	return shippingResult(ShippingOutput{
		Destination:           destination,
		Available:             true,
		WeightKg:              weightKg,
		ShippingCost:          zone.baseCost + weightKg*zone.perKg,
		EstimatedDeliveryDays: zone.deliveryDays,
	}), nil
}

func shippingResult(out ShippingOutput) contractx.OperationResult {
	return contractx.OperationResult{
		Operation: OpCalculateShipping,
		OK:        out.Available,
		Payload:   out,
	}
}
