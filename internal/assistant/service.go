// Package assistant hosts the ticket conversation and audio transcription
// orchestrators. Unlike the invoice path, remote failures here are strict:
// they surface to the caller instead of degrading to a default record.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"myteai/internal/config"
	"myteai/internal/domain"
	"myteai/internal/llm/openai"
	"myteai/internal/metrics"
	"myteai/internal/pricing"
)

// Service drives the voice assistant feature pair.
type Service struct {
	client          *openai.Client
	chatModel       string
	transcribeModel string
}

// NewService wires the assistant. The credential is checked lazily per call,
// so the endpoints exist even when the key is absent and fail with a server
// error on first use.
func NewService(client *openai.Client, cfg *config.OpenAIConfig) *Service {
	return &Service{
		client:          client,
		chatModel:       cfg.ChatModel,
		transcribeModel: cfg.TranscribeModel,
	}
}

// modelReply is the JSON object shape requested from the model.
type modelReply struct {
	Status       string          `json:"status"`
	ResponseText string          `json:"response_text"`
	Tickets      []domain.Ticket `json:"tickets"`
}

// Converse runs one turn of the ticket conversation. The full history is
// resent each call; the system prompt is rebuilt per call so context
// injection always reflects the caller-supplied values.
func (s *Service) Converse(ctx context.Context, req *domain.ChatRequest) (*domain.ChatResponse, error) {
	messages := make([]openai.ChatMessage, 0, len(req.Messages)+1)
	messages = append(messages, openai.ChatMessage{
		Role:    "system",
		Content: buildSystemPrompt(req.UserContext, req.ImageCount),
	})
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatMessage{Role: m.Role, Content: m.Content})
	}

	temperature := 0.0
	resp, err := s.client.ChatCompletion(ctx, &openai.ChatRequest{
		Model:          s.chatModel,
		Messages:       messages,
		ResponseFormat: &openai.ResponseFormat{Type: "json_object"},
		Temperature:    &temperature,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingAPIKey) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrModelCallFailed, err)
	}

	cost := pricing.TokenCost(resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	metrics.ObserveTokenUsage(resp.Usage.PromptTokens, resp.Usage.CompletionTokens, cost)

	var reply modelReply
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &reply); err != nil {
		return nil, fmt.Errorf("%w: decoding model output: %v", domain.ErrModelCallFailed, err)
	}

	out := &domain.ChatResponse{
		Status:       reply.Status,
		ResponseText: reply.ResponseText,
		Tickets:      sanitizeTickets(reply.Tickets, req.UserContext),
		UsageCost:    cost,
	}
	if out.Status == "" {
		out.Status = domain.StatusCompleted
	}
	return out, nil
}

// sanitizeTickets enforces the category whitelist and the context-injection
// invariant: property and unit always come from the caller context, never
// from the model.
func sanitizeTickets(tickets []domain.Ticket, userContext map[string]any) []domain.Ticket {
	property := contextValue(userContext, "property_name")
	unit := contextValue(userContext, "unit_number")

	out := make([]domain.Ticket, len(tickets))
	for i, t := range tickets {
		t.Category = strings.ToUpper(strings.TrimSpace(t.Category))
		if !domain.ValidTicketCategory(t.Category) {
			t.Category = domain.TicketCategoryOther
		}
		if property != "" {
			t.PropertyName = property
		}
		if unit != "" {
			t.UnitNumber = unit
		}
		out[i] = t
	}
	return out
}

// contextValue reads a caller context field as a string. JSON numbers and
// other non-string values are rendered rather than discarded, so a numeric
// unit number still satisfies the injection invariant.
func contextValue(userContext map[string]any, key string) string {
	v, ok := userContext[key]
	if !ok || v == nil {
		return ""
	}
	if s, isString := v.(string); isString {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// Transcribe measures and prices the audio, then runs speech-to-text. The
// upload is spilled to a transient file because the remote call wants a
// stream-backed input; the file never outlives the request.
func (s *Service) Transcribe(ctx context.Context, content []byte, filename string) (*domain.TranscriptionResult, error) {
	path := filepath.Join(os.TempDir(), "myteai-audio-"+uuid.NewString()+filepath.Ext(filename))
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return nil, fmt.Errorf("writing transient audio file: %w", err)
	}
	defer func() { _ = os.Remove(path) }()

	duration := audioDuration(path)
	cost := pricing.Cost(pricing.KindAudio, duration)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening transient audio file: %w", err)
	}
	defer func() { _ = f.Close() }()

	text, err := s.client.Transcribe(ctx, s.transcribeModel, f, filename)
	if err != nil {
		if errors.Is(err, domain.ErrMissingAPIKey) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrModelCallFailed, err)
	}

	metrics.ObserveAudio(duration, cost)
	return &domain.TranscriptionResult{Text: text, Cost: cost}, nil
}
