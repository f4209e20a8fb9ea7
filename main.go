package main

import (
	"context"

	"github.com/rs/zerolog/log"

	deciderx "github.com/orderflowlabs/orderflow-agent/agent/decider"
	extractx "github.com/orderflowlabs/orderflow-agent/agent/extract"
	orchestratorx "github.com/orderflowlabs/orderflow-agent/agent/orchestrator"
	promptx "github.com/orderflowlabs/orderflow-agent/agent/prompt"
	toolx "github.com/orderflowlabs/orderflow-agent/agent/tool"
	configx "github.com/orderflowlabs/orderflow-agent/pkg/config"
	_ "github.com/orderflowlabs/orderflow-agent/pkg/logger/autoload"
	openrouterx "github.com/orderflowlabs/orderflow-agent/pkg/openrouter"
)

type AppConfig struct {
	MaxTurns     int    `envconfig:"MAX_TURNS" default:"15"`
	OrderRequest string `envconfig:"ORDER_REQUEST" default:"I want to order 2 laptops to Jakarta, use discount code WELCOME10, pay with credit card, email: john@example.com"`
}

func main() {
	ctx := context.Background()

	appCfg := configx.MustNew[AppConfig]("")
	openRouterCfg := configx.MustNew[openrouterx.Config]("OPENROUTER")

	chatModel, err := openRouterCfg.New(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("create chat model")
	}

	prompts := promptx.LoadPromptSet()
	registry := toolx.NewCatalog()

	decider, err := deciderx.NewLLM(chatModel, toolx.Infos(registry), prompts.Agent)
	if err != nil {
		log.Fatal().Err(err).Msg("create decider")
	}

	orch, err := orchestratorx.New(decider, registry, orchestratorx.WithMaxTurns(appCfg.MaxTurns))
	if err != nil {
		log.Fatal().Err(err).Msg("create orchestrator")
	}

	llmExtractor, err := extractx.NewLLM(ctx, chatModel, prompts.Extraction)
	if err != nil {
		log.Fatal().Err(err).Msg("create extractor")
	}
	extractor := extractx.NewWithFallback(llmExtractor)

	details, err := extractor.Extract(ctx, appCfg.OrderRequest)
	if err != nil {
		log.Fatal().Err(err).Msg("extract order details")
	}
	log.Info().
		Str("product_id", details.ProductID).
		Int("quantity", details.Quantity).
		Str("destination", details.Destination).
		Str("discount_code", details.DiscountCode).
		Str("payment_method", details.PaymentMethod).
		Str("customer_email", details.CustomerEmail).
		Msg("parsed order request")

	result := orch.Run(ctx, appCfg.OrderRequest)

	evt := log.Info().Str("verdict", string(result.Verdict))
	if result.Reason != "" {
		evt = evt.Str("reason", result.Reason)
	}
	for _, step := range result.Steps {
		evt = evt.Bool("step_"+step.Operation, step.Result.OK)
	}
	evt.Msg("order run finished")

	for _, step := range result.Steps {
		if step.Operation != toolx.OpProcessPayment {
			continue
		}
		if payment, ok := step.Result.Payload.(toolx.PaymentOutput); ok {
			log.Info().
				Str("transaction_id", payment.TransactionID).
				Float64("amount", payment.Amount).
				Msg("payment confirmed")
		}
	}
}
