// Package decider adapts a tool-calling chat model into the closed
// Turn contract the orchestration loop consumes. All translation from
// model output to structured turns lives here; the loop never parses text.
package decider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/orderflowlabs/orderflow-agent/agent/contract"
)

// LLM implements contract.Decider on an eino tool-calling chat model. The
// operation schemas are bound once at construction; each NextTurn call
// replays the full run history, so prior results are always visible to the
// model.
type LLM struct {
	toolModel einomodel.ToolCallingChatModel
	system    string
}

func NewLLM(chatModel einomodel.ToolCallingChatModel, infos []*schema.ToolInfo, systemPrompt string) (*LLM, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("%w: chat model is required", contractx.ErrValidation)
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("%w: at least one tool schema is required", contractx.ErrValidation)
	}

	toolModel, err := chatModel.WithTools(infos)
	if err != nil {
		return nil, fmt.Errorf("%w: bind tool schemas: %v", contractx.ErrDecisionService, err)
	}

	return &LLM{
		toolModel: toolModel,
		system:    strings.TrimSpace(systemPrompt),
	}, nil
}

func (d *LLM) NextTurn(ctx context.Context, history []contractx.HistoryEntry) (contractx.Turn, error) {
	msgs, err := d.replayMessages(history)
	if err != nil {
		return contractx.Turn{}, err
	}

	msg, err := d.toolModel.Generate(ctx, msgs)
	if err != nil {
		return contractx.Turn{}, fmt.Errorf("%w: %v", contractx.ErrDecisionService, err)
	}
	if msg == nil {
		return contractx.Turn{Kind: contractx.TurnUnparseable}, nil
	}

	invocations, ok := toInvocations(msg.ToolCalls)
	if !ok {
		// Malformed tool calls: the output could not be interpreted.
		return contractx.Turn{Kind: contractx.TurnUnparseable}, nil
	}
	if len(invocations) > 0 {
		return contractx.Turn{
			Kind:        contractx.TurnInvocations,
			Invocations: invocations,
		}, nil
	}

	if content := strings.TrimSpace(msg.Content); content != "" {
		return contractx.Turn{
			Kind:    contractx.TurnFinal,
			Message: content,
		}, nil
	}

	return contractx.Turn{Kind: contractx.TurnUnparseable}, nil
}

// replayMessages rebuilds the chat transcript from run history: the opening
// user request, then one assistant tool-call message and one tool result
// message per executed operation.
func (d *LLM) replayMessages(history []contractx.HistoryEntry) ([]*schema.Message, error) {
	msgs := make([]*schema.Message, 0, 2+2*len(history))
	if d.system != "" {
		msgs = append(msgs, schema.SystemMessage(d.system))
	}

	callSeq := 0
	for _, entry := range history {
		if entry.UserRequest != "" {
			msgs = append(msgs, schema.UserMessage(entry.UserRequest))
			continue
		}
		if entry.Call == nil || entry.Result == nil {
			continue
		}

		callSeq++
		callID := fmt.Sprintf("call_%d", callSeq)

		argsJSON, err := json.Marshal(entry.Call.Args)
		if err != nil {
			return nil, fmt.Errorf("%w: marshal args for %s: %v", contractx.ErrValidation, entry.Call.Operation, err)
		}
		msgs = append(msgs, &schema.Message{
			Role: schema.Assistant,
			ToolCalls: []schema.ToolCall{
				{
					ID:   callID,
					Type: "function",
					Function: schema.FunctionCall{
						Name:      entry.Call.Operation,
						Arguments: string(argsJSON),
					},
				},
			},
		})

		resultJSON, err := json.Marshal(map[string]any{"result": entry.Result.Payload})
		if err != nil {
			return nil, fmt.Errorf("%w: marshal result for %s: %v", contractx.ErrValidation, entry.Call.Operation, err)
		}
		msgs = append(msgs, &schema.Message{
			Role:       schema.Tool,
			ToolCallID: callID,
			Content:    string(resultJSON),
		})
	}
	return msgs, nil
}

// toInvocations maps model tool calls to invocation requests in the order
// issued. A call with an empty name or undecodable arguments poisons the
// whole turn.
func toInvocations(calls []schema.ToolCall) ([]contractx.InvocationRequest, bool) {
	if len(calls) == 0 {
		return nil, true
	}
	reqs := make([]contractx.InvocationRequest, 0, len(calls))
	for _, call := range calls {
		name := strings.TrimSpace(call.Function.Name)
		if name == "" {
			return nil, false
		}

		args := map[string]any{}
		if raw := strings.TrimSpace(call.Function.Arguments); raw != "" {
			if err := json.Unmarshal([]byte(raw), &args); err != nil {
				return nil, false
			}
		}

		reqs = append(reqs, contractx.InvocationRequest{
			Operation: name,
			Args:      args,
		})
	}
	return reqs, true
}
