// Package extract turns a natural-language order request into a structured
// OrderDetails record. It is a collaborator of the demo entrypoint, not of
// the orchestration loop: the loop's control flow is driven by the decision
// model alone.
package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	contractx "github.com/orderflowlabs/orderflow-agent/agent/contract"
)

type llmDetails struct {
	ProductID     string `json:"product_id"`
	Quantity      int    `json:"quantity"`
	Destination   string `json:"destination"`
	DiscountCode  string `json:"discount_code"`
	PaymentMethod string `json:"payment_method"`
	CustomerEmail string `json:"customer_email"`
}

// LLM extracts order details with a structured-output model graph. Parse
// and transport failures wrap ErrParse.
type LLM struct {
	runner compose.Runnable[map[string]any, llmDetails]
}

func NewLLM(ctx context.Context, chatModel einomodel.BaseChatModel, systemPrompt string) (*LLM, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("%w: chat model is required", contractx.ErrValidation)
	}

	template := einoprompt.FromMessages(
		schema.FString,
		schema.SystemMessage(systemPrompt),
		schema.UserMessage("{input}"),
	)

	parser := schema.NewMessageJSONParser[llmDetails](&schema.MessageJSONParseConfig{
		ParseFrom: schema.MessageParseFromContent,
	})

	graph := compose.NewGraph[map[string]any, llmDetails]()
	if err := graph.AddChatTemplateNode("prompt", template); err != nil {
		return nil, fmt.Errorf("add extraction prompt node: %w", err)
	}
	if err := graph.AddChatModelNode("model", chatModel); err != nil {
		return nil, fmt.Errorf("add extraction model node: %w", err)
	}
	if err := graph.AddLambdaNode("parse_json", compose.MessageParser(parser)); err != nil {
		return nil, fmt.Errorf("add extraction parser node: %w", err)
	}
	if err := graph.AddEdge(compose.START, "prompt"); err != nil {
		return nil, fmt.Errorf("add extraction edge start->prompt: %w", err)
	}
	if err := graph.AddEdge("prompt", "model"); err != nil {
		return nil, fmt.Errorf("add extraction edge prompt->model: %w", err)
	}
	if err := graph.AddEdge("model", "parse_json"); err != nil {
		return nil, fmt.Errorf("add extraction edge model->parse: %w", err)
	}
	if err := graph.AddEdge("parse_json", compose.END); err != nil {
		return nil, fmt.Errorf("add extraction edge parse->end: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("extract.order_details_graph"))
	if err != nil {
		return nil, fmt.Errorf("compile extraction graph: %w", err)
	}

	return &LLM{runner: runner}, nil
}

func (e *LLM) Extract(ctx context.Context, userRequest string) (contractx.OrderDetails, error) {
	if strings.TrimSpace(userRequest) == "" {
		return contractx.OrderDetails{}, fmt.Errorf("%w: user request is empty", contractx.ErrValidation)
	}

	out, err := e.runner.Invoke(ctx, map[string]any{
		"input": userRequest,
	})
	if err != nil {
		return contractx.OrderDetails{}, fmt.Errorf("%w: %v", contractx.ErrParse, err)
	}

	details := contractx.OrderDetails{
		ProductID:     strings.TrimSpace(out.ProductID),
		Quantity:      out.Quantity,
		Destination:   strings.TrimSpace(out.Destination),
		DiscountCode:  normalizeCode(out.DiscountCode),
		PaymentMethod: strings.TrimSpace(out.PaymentMethod),
		CustomerEmail: strings.TrimSpace(out.CustomerEmail),
	}
	return applyDefaults(details), nil
}

// normalizeCode drops the literal "null" some models emit for an absent
// code.
func normalizeCode(code string) string {
	code = strings.TrimSpace(code)
	if strings.EqualFold(code, "null") {
		return ""
	}
	return code
}

// WithFallback wraps an extractor so that parse failures degrade to the
// deterministic keyword extractor instead of surfacing an error.
type WithFallback struct {
	primary contractx.Extractor
}

func NewWithFallback(primary contractx.Extractor) *WithFallback {
	return &WithFallback{primary: primary}
}

func (w *WithFallback) Extract(ctx context.Context, userRequest string) (contractx.OrderDetails, error) {
	if w.primary != nil {
		details, err := w.primary.Extract(ctx, userRequest)
		if err == nil {
			return details, nil
		}
		if !errors.Is(err, contractx.ErrParse) {
			return contractx.OrderDetails{}, err
		}
		log.Warn().Err(err).Msg("llm extraction failed, using fallback pattern matching")
	}
	return FallbackDetails(userRequest), nil
}
