package registry

import (
	"context"
	"fmt"
	"sort"

	contractx "github.com/orderflowlabs/orderflow-agent/agent/contract"
)

// ArgType is the declared wire type of one operation argument.
type ArgType string

const (
	ArgString  ArgType = "string"
	ArgInteger ArgType = "integer"
	ArgNumber  ArgType = "number"
	ArgObject  ArgType = "object"
)

// ArgSpec declares one argument of an operation's input schema.
type ArgSpec struct {
	Name     string
	Type     ArgType
	Desc     string
	Required bool
}

// Func executes one operation against already-validated arguments. The
// standard operations never return an error; they report domain failures
// through their result's success flag.
type Func func(ctx context.Context, args map[string]any) (contractx.OperationResult, error)

// Spec is one registered operation: name, input schema, and executable.
type Spec struct {
	Name string
	Desc string
	Args []ArgSpec
	Fn   Func
}

// Registry maps operation names to capabilities. It is populated once at
// startup and read-only afterwards, so it may be shared across concurrent
// runs.
type Registry struct {
	specs map[string]Spec
	order []string
}

func New() *Registry {
	return &Registry{specs: make(map[string]Spec, 8)}
}

// Register adds one operation. Names are unique for the lifetime of the
// registry.
func (r *Registry) Register(spec Spec) error {
	if spec.Name == "" {
		return fmt.Errorf("%w: operation name is empty", contractx.ErrValidation)
	}
	if spec.Fn == nil {
		return fmt.Errorf("%w: operation %s has no function", contractx.ErrValidation, spec.Name)
	}
	if _, ok := r.specs[spec.Name]; ok {
		return fmt.Errorf("%w: %s", contractx.ErrDuplicateOperation, spec.Name)
	}
	r.specs[spec.Name] = spec
	r.order = append(r.order, spec.Name)
	return nil
}

// MustRegister panics on a registration error. Intended for the fixed
// startup catalog.
func (r *Registry) MustRegister(spec Spec) {
	if err := r.Register(spec); err != nil {
		panic(err)
	}
}

// Describe returns the registered specs in registration order. The returned
// slice is a copy; the schema it describes never changes after startup.
func (r *Registry) Describe() []Spec {
	out := make([]Spec, 0, len(r.order))
	for _, name := range r.order {
		spec := r.specs[name]
		spec.Args = append([]ArgSpec(nil), spec.Args...)
		out = append(out, spec)
	}
	return out
}

// Names returns the sorted operation names.
func (r *Registry) Names() []string {
	names := append([]string(nil), r.order...)
	sort.Strings(names)
	return names
}

// Invoke executes one operation by name after checking its required
// arguments are present.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) (contractx.OperationResult, error) {
	spec, ok := r.specs[name]
	if !ok {
		return contractx.OperationResult{}, fmt.Errorf("%w: %s", contractx.ErrUnknownOperation, name)
	}

	for _, arg := range spec.Args {
		if !arg.Required {
			continue
		}
		if _, present := args[arg.Name]; !present {
			return contractx.OperationResult{}, fmt.Errorf("%w: %s requires %s", contractx.ErrMissingArgument, name, arg.Name)
		}
	}

	result, err := spec.Fn(ctx, args)
	if err != nil {
		return contractx.OperationResult{}, fmt.Errorf("%w: %s: %v", contractx.ErrOperationExecution, name, err)
	}
	return result, nil
}
