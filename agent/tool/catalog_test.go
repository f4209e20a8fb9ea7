package tool

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"
)

func TestNewCatalogRegistersFiveOperations(t *testing.T) {
	t.Parallel()

	reg := NewCatalog()
	specs := reg.Describe()
	want := []string{
		OpCheckInventory,
		OpApplyDiscount,
		OpCalculateShipping,
		OpProcessPayment,
		OpSendConfirmationEmail,
	}
	if len(specs) != len(want) {
		t.Fatalf("expected %d operations, got %d", len(want), len(specs))
	}
	for i, name := range want {
		if specs[i].Name != name {
			t.Fatalf("spec %d: expected %s, got %s", i, name, specs[i].Name)
		}
	}
}

func TestCatalogInvokesThroughRegistry(t *testing.T) {
	t.Parallel()

	reg := NewCatalog()
	res, err := reg.Invoke(context.Background(), OpCheckInventory, map[string]any{
		"product_id": "MOUSE-002",
		"quantity":   3.0,
	})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if !res.OK {
		t.Fatalf("expected available, got %#v", res)
	}
}

func TestInfosMatchRegistrySchema(t *testing.T) {
	t.Parallel()

	reg := NewCatalog()
	infos := Infos(reg)
	if len(infos) != 5 {
		t.Fatalf("expected 5 tool infos, got %d", len(infos))
	}
	if infos[0].Name != OpCheckInventory {
		t.Fatalf("unexpected first tool: %s", infos[0].Name)
	}
	for _, info := range infos {
		if info.Desc == "" {
			t.Fatalf("tool %s has no description", info.Name)
		}
		if info.ParamsOneOf == nil {
			t.Fatalf("tool %s has no parameter schema", info.Name)
		}
	}
}

func TestInfosArgumentTypes(t *testing.T) {
	t.Parallel()

	if dataTypeFor("integer") != schema.Integer {
		t.Fatal("integer args must map to schema.Integer")
	}
	if dataTypeFor("number") != schema.Number {
		t.Fatal("number args must map to schema.Number")
	}
	if dataTypeFor("object") != schema.Object {
		t.Fatal("object args must map to schema.Object")
	}
	if dataTypeFor("string") != schema.String {
		t.Fatal("string args must map to schema.String")
	}
}
