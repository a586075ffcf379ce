package domain

// TokenUsage is the token accounting reported by the model API for one call.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// RecordMetadata carries per-request diagnostics attached to every
// InvoiceRecord, including the null record produced on failure.
type RecordMetadata struct {
	Filename          string         `json:"filename"`
	ProcessingTime    string         `json:"processing_time"`
	APIProcessingTime string         `json:"api_processing_time,omitempty"`
	Timestamp         string         `json:"timestamp"`
	FileSize          string         `json:"file_size"`
	ModelUsed         string         `json:"model_used,omitempty"`
	TokenUsage        TokenUsage     `json:"token_usage"`
	UsageCost         float64        `json:"usage_cost"`
	Error             string         `json:"error,omitempty"`
	RawModelOutput    map[string]any `json:"raw_ai_output,omitempty"`
}

// InvoiceRecord is the canonical extraction result. Absent fields are nil
// pointers and serialize as explicit JSON nulls; the collapsing pass in the
// invoice package guarantees empty strings never survive into a record.
type InvoiceRecord struct {
	VendorName         *string        `json:"vendor_name"`
	VendorAddress      *string        `json:"vendor_address"`
	InvoiceNumber      *string        `json:"invoice_number"`
	InvoiceDate        *string        `json:"invoice_date"`
	DueDate            *string        `json:"due_date"`
	TotalAmount        *float64       `json:"total_amount"`
	Currency           *string        `json:"currency"`
	TaxAmount          *float64       `json:"tax_amount"`
	DescriptionSummary *string        `json:"description_summary"`
	ExpenseClass       string         `json:"expense_class"`
	Metadata           RecordMetadata `json:"metadata"`
}

// InvoiceClassificationResponse is the fixed contract returned by the
// invoice endpoint.
type InvoiceClassificationResponse struct {
	ExpenseClass  string         `json:"expense_class"`
	InvoiceNumber *string        `json:"invoice_number,omitempty"`
	TotalAmount   *float64       `json:"total_amount,omitempty"`
	Currency      *string        `json:"currency,omitempty"`
	RawResponse   *InvoiceRecord `json:"raw_response"`
}

// ChatMessage is one role-tagged turn of the conversation history. The
// service is stateless; callers resend the full history each turn.
type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content"`
}

// ChatRequest is the inbound payload for the ticket assistant.
type ChatRequest struct {
	Messages    []ChatMessage  `json:"messages" binding:"required"`
	UserContext map[string]any `json:"user_context"`
	ImageCount  int            `json:"image_count"`
}

// Ticket is one maintenance work item prepared by the assistant.
// PropertyName and UnitNumber are always taken from the caller context.
type Ticket struct {
	PropertyName string `json:"property_name"`
	UnitNumber   string `json:"unit_number"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Priority     string `json:"priority"`
}

// ChatResponse is the sanitized assistant reply.
type ChatResponse struct {
	Status       string   `json:"status"`
	ResponseText string   `json:"response_text"`
	Tickets      []Ticket `json:"tickets"`
	UsageCost    float64  `json:"usage_cost"`
}

// TranscriptionResult pairs the transcript with its audio cost.
type TranscriptionResult struct {
	Text string  `json:"text"`
	Cost float64 `json:"cost"`
}
