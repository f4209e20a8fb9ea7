package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	contractx "github.com/orderflowlabs/orderflow-agent/agent/contract"
	registryx "github.com/orderflowlabs/orderflow-agent/agent/registry"
	toolx "github.com/orderflowlabs/orderflow-agent/agent/tool"
)

// DefaultMaxTurns bounds a run against a decision-maker that never stops.
const DefaultMaxTurns = 15

const reasonTurnLimit = "turn limit exceeded"

type Option func(*Orchestrator)

func WithMaxTurns(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.maxTurns = n
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.log = logger
	}
}

// Orchestrator drives one order-processing run: it asks the decider for the
// next action, validates and executes the requested operations, feeds the
// results back, and settles on a terminal verdict. Operations only ever run
// at the decider's direction.
type Orchestrator struct {
	decider  contractx.Decider
	registry *registryx.Registry
	maxTurns int
	log      zerolog.Logger
}

func New(decider contractx.Decider, registry *registryx.Registry, opts ...Option) (*Orchestrator, error) {
	if decider == nil {
		return nil, errors.New("decider is required")
	}
	if registry == nil {
		return nil, errors.New("operation registry is required")
	}

	o := &Orchestrator{
		decider:  decider,
		registry: registry,
		maxTurns: DefaultMaxTurns,
		log:      log.Logger,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o, nil
}

// Run processes one order request to a terminal verdict. It never returns
// an error: every failure mode is folded into the result's verdict and
// reason, with partial progress retained for diagnostics. Each run owns an
// independent session state, so an Orchestrator may serve concurrent runs.
func (o *Orchestrator) Run(ctx context.Context, userRequest string) Result {
	st := newSessionState(userRequest)

	for turn := 0; turn < o.maxTurns; turn++ {
		decision, err := o.decider.NextTurn(ctx, st.historyView())
		if err != nil {
			o.log.Warn().Err(err).Int("turn", turn).Msg("decision service failed")
			st.fail(err.Error())
			return st.result()
		}

		switch decision.Kind {
		case contractx.TurnFinal:
			if missing := st.missingRequired(); len(missing) > 0 {
				st.fail(fmt.Sprintf("incomplete: missing %s", strings.Join(missing, ", ")))
			} else {
				st.succeed()
			}
			return st.result()

		case contractx.TurnUnparseable:
			// Consumes the turn without progress; the turn bound
			// eventually forces failure.
			o.log.Debug().Int("turn", turn).Msg("unparseable decision output")
			continue

		case contractx.TurnInvocations:
			if done := o.processInvocations(ctx, st, turn, decision.Invocations); done {
				return st.result()
			}

		default:
			st.fail(fmt.Sprintf("%s: unknown turn kind %q", contractx.ErrSchemaViolation.Error(), decision.Kind))
			return st.result()
		}
	}

	st.fail(reasonTurnLimit)
	return st.result()
}

// processInvocations executes one turn's requested operations in the order
// issued. It reports true once the session is terminal.
func (o *Orchestrator) processInvocations(ctx context.Context, st *sessionState, turn int, invocations []contractx.InvocationRequest) bool {
	for _, req := range invocations {
		req.TurnIndex = turn

		if err := checkOrdering(st, req.Operation); err != nil {
			o.log.Warn().Err(err).Str("operation", req.Operation).Msg("ordering violation")
			st.fail(err.Error())
			return true
		}

		req.Args = normalizeArgs(req.Operation, req.Args)

		result, err := o.registry.Invoke(ctx, req.Operation, req.Args)
		if err != nil {
			o.log.Warn().Err(err).Str("operation", req.Operation).Msg("operation invocation failed")
			st.fail(fmt.Sprintf("tool error: %s", err.Error()))
			return true
		}

		st.recordStep(req, result)
		o.log.Debug().
			Str("operation", req.Operation).
			Bool("ok", result.OK).
			Int("turn", turn).
			Msg("operation executed")

		if reason, fatal := domainFailure(result); fatal {
			st.fail(reason)
			return true
		}
	}

	// The confirmation email is the terminal operation of the required
	// sequence; once it has run there is nothing left to decide.
	if st.executed(toolx.OpSendConfirmationEmail) {
		st.succeed()
		return true
	}
	return false
}

// domainFailure maps a non-failing-by-contract but domain-failed result to
// its terminal reason. Operations outside the three gated ones carry their
// success flag as information only.
func domainFailure(result contractx.OperationResult) (string, bool) {
	if result.OK {
		return "", false
	}
	switch result.Operation {
	case toolx.OpCheckInventory:
		return "Product not available", true
	case toolx.OpCalculateShipping:
		return "Shipping not available", true
	case toolx.OpProcessPayment:
		return "Payment failed", true
	}
	return "", false
}
