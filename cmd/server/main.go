package main

import (
	"fmt"
	"log"

	"myteai/internal/assistant"
	"myteai/internal/config"
	"myteai/internal/handler"
	"myteai/internal/invoice"
	"myteai/internal/llm/openai"
	"myteai/internal/router"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client := openai.NewClient(&cfg.OpenAI)

	// The invoice service refuses to initialize without a credential; the
	// endpoint then answers 503 instead of failing mid-request. The voice
	// assistant endpoints stay up and report the missing credential on use.
	var invoiceSvc handler.InvoiceService
	if svc, err := invoice.NewService(client, &cfg.OpenAI); err != nil {
		log.Printf("invoice service disabled: %v", err)
	} else {
		invoiceSvc = svc
	}

	assistantSvc := assistant.NewService(client, &cfg.OpenAI)

	invoiceH := handler.NewInvoiceHandler(invoiceSvc, cfg.Upload.MaxFileBytes())
	assistantH := handler.NewAssistantHandler(assistantSvc)
	healthH := handler.NewHealthHandler()

	r := router.Setup(cfg, invoiceH, assistantH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
