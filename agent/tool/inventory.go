package tool

import (
	"context"

	contractx "github.com/orderflowlabs/orderflow-agent/agent/contract"
)

const OpCheckInventory = "check_inventory"

type product struct {
	name  string
	stock int
	price float64
}

// Fixed simulation catalog; no real inventory system behind it.
var inventoryCatalog = map[string]product{
	"LAPTOP-001":   {name: "Business Laptop", stock: 50, price: 1200},
	"MOUSE-002":    {name: "Wireless Mouse", stock: 100, price: 25},
	"KEYBOARD-003": {name: "Mechanical Keyboard", stock: 30, price: 80},
	"MONITOR-004":  {name: "4K Monitor", stock: 20, price: 450},
	"HEADSET-005":  {name: "Noise Cancelling Headset", stock: 15, price: 150},
}

type InventoryOutput struct {
	ProductID         string  `json:"product_id"`
	ProductName       string  `json:"product_name,omitempty"`
	Available         bool    `json:"available"`
	RequestedQuantity int     `json:"requested_quantity,omitempty"`
	Stock             int     `json:"stock"`
	UnitPrice         float64 `json:"unit_price,omitempty"`
	TotalPrice        float64 `json:"total_price"`
	Reason            string  `json:"reason,omitempty"`
}

func (o InventoryOutput) DomainOK() bool { return o.Available }

// CheckInventory reports availability and pricing for a requested quantity
// of one product.
func CheckInventory(_ context.Context, args map[string]any) (contractx.OperationResult, error) {
	productID, err := stringArg(args, "product_id")
	if err != nil {
		return contractx.OperationResult{}, err
	}
	quantity, err := intArg(args, "quantity")
	if err != nil {
		return contractx.OperationResult{}, err
	}

	p, ok := inventoryCatalog[productID]
	if !ok {
		return inventoryResult(InventoryOutput{
			ProductID: productID,
			Available: false,
			Reason:    "Product not found",
		}), nil
	}

	available := p.stock >= quantity
	out := InventoryOutput{
		ProductID:         productID,
		ProductName:       p.name,
		Available:         available,
		RequestedQuantity: quantity,
		Stock:             p.stock,
		UnitPrice:         p.price,
	}
	if available {
		out.TotalPrice = p.price * float64(quantity)
	}
	return inventoryResult(out), nil
}

func inventoryResult(out InventoryOutput) contractx.OperationResult {
	return contractx.OperationResult{
		Operation: OpCheckInventory,
		OK:        out.Available,
		Payload:   out,
	}
}
