// Package invoice orchestrates invoice extraction: document normalization,
// prompt construction, the remote model call, and response shaping into the
// canonical record.
package invoice

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"myteai/internal/config"
	"myteai/internal/docproc"
	"myteai/internal/domain"
	"myteai/internal/llm/openai"
	"myteai/internal/metrics"
	"myteai/internal/pricing"
)

const nullRecordError = "Document does not appear to be a valid invoice or is empty."

// Service extracts and classifies invoices through the model API.
type Service struct {
	client       *openai.Client
	schema       ExtractionSchema
	defaultModel string
}

// NewService wires an extraction service. A missing credential is an
// initialization error so the caller can degrade the endpoint to 503 instead
// of failing per request.
func NewService(client *openai.Client, cfg *config.OpenAIConfig) (*Service, error) {
	if !client.Configured() {
		return nil, domain.ErrMissingAPIKey
	}
	return &Service{
		client:       client,
		schema:       NewExtractionSchema(),
		defaultModel: cfg.InvoiceModel,
	}, nil
}

// Extract processes one uploaded document into an InvoiceRecord. Model-side
// failures never escape: they are recovered into a null record carrying the
// error detail. Only malformed-upload errors propagate.
func (s *Service) Extract(ctx context.Context, content []byte, filename, model string) (*domain.InvoiceRecord, error) {
	start := time.Now()
	if model == "" {
		model = s.defaultModel
	}

	img, rawText, err := docproc.Normalize(ctx, content, filename)
	if err != nil {
		return nil, err
	}

	pngBytes, err := docproc.EncodePNG(img)
	if err != nil {
		return nil, fmt.Errorf("encoding normalized image: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(pngBytes)

	req := &openai.ChatRequest{
		Model: model,
		Messages: []openai.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: []openai.ContentPart{
				{Type: "text", Text: userPrompt(rawText)},
				{
					Type: "image_url",
					ImageURL: &openai.ImageURL{
						URL:    "data:image/png;base64," + encoded,
						Detail: "low",
					},
				},
			}},
		},
		Tools:      []openai.Tool{s.schema.Tool},
		ToolChoice: "required",
	}

	apiStart := time.Now()
	resp, err := s.client.ChatCompletion(ctx, req)
	if err != nil {
		log.Printf("invoice.Extract: model call failed for %s: %v", filename, err)
		rec := s.nullRecord(filename, start, len(content), model, domain.TokenUsage{}, nil)
		rec.Metadata.Error = "Unexpected processing error: " + err.Error()
		return rec, nil
	}
	apiDuration := time.Since(apiStart)

	usage := domain.TokenUsage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}
	cost := pricing.TokenCost(usage.PromptTokens, usage.CompletionTokens)
	metrics.ObserveTokenUsage(usage.PromptTokens, usage.CompletionTokens, cost)

	message := resp.Choices[0].Message
	if len(message.ToolCalls) == 0 {
		log.Printf("invoice.Extract: model did not invoke the extraction function for %s", filename)
		return s.nullRecord(filename, start, len(content), model, usage, nil), nil
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(message.ToolCalls[0].Function.Arguments), &data); err != nil {
		log.Printf("invoice.Extract: malformed function arguments for %s: %v", filename, err)
		return s.nullRecord(filename, start, len(content), model, usage, nil), nil
	}

	collapsed, _ := CollapseEmpty(data).(map[string]any)
	if !isValidInvoice(collapsed) {
		log.Printf("invoice.Extract: validation failed for %s, classifying as %q", filename, domain.OtherExpenseClass)
		return s.nullRecord(filename, start, len(content), model, usage, collapsed), nil
	}

	record, err := decodeRecord(collapsed)
	if err != nil {
		log.Printf("invoice.Extract: extracted fields did not match the invoice shape for %s: %v", filename, err)
		return s.nullRecord(filename, start, len(content), model, usage, collapsed), nil
	}
	if record.ExpenseClass == "" {
		record.ExpenseClass = domain.OtherExpenseClass
	}

	record.Metadata = domain.RecordMetadata{
		Filename:          filename,
		ProcessingTime:    formatSeconds(time.Since(start)),
		APIProcessingTime: formatSeconds(apiDuration),
		Timestamp:         start.Format(time.RFC3339),
		FileSize:          formatKB(len(content)),
		ModelUsed:         model,
		TokenUsage:        usage,
		UsageCost:         cost,
	}
	return record, nil
}

// nullRecord is the safe default shape: every extracted field absent, the
// fallback class, and diagnostics in metadata. rawOutput, when non-nil,
// preserves the model's invalid output for inspection.
func (s *Service) nullRecord(filename string, start time.Time, size int, model string, usage domain.TokenUsage, rawOutput map[string]any) *domain.InvoiceRecord {
	return &domain.InvoiceRecord{
		ExpenseClass: domain.OtherExpenseClass,
		Metadata: domain.RecordMetadata{
			Filename:       filename,
			ProcessingTime: formatSeconds(time.Since(start)),
			Timestamp:      start.Format(time.RFC3339),
			FileSize:       formatKB(size),
			ModelUsed:      model,
			TokenUsage:     usage,
			UsageCost:      pricing.TokenCost(usage.PromptTokens, usage.CompletionTokens),
			Error:          nullRecordError,
			RawModelOutput: rawOutput,
		},
	}
}

// decodeRecord lifts a collapsed argument map into the typed record via a
// JSON round trip, so nulls land as nil pointers.
func decodeRecord(data map[string]any) (*domain.InvoiceRecord, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var record domain.InvoiceRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}

func formatKB(size int) string {
	return fmt.Sprintf("%.1fKB", float64(size)/1024)
}
