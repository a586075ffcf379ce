package handler

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"myteai/internal/domain"
)

// InvoiceService is the extraction contract the handler depends on.
type InvoiceService interface {
	Extract(ctx context.Context, content []byte, filename, model string) (*domain.InvoiceRecord, error)
}

// InvoiceHandler handles the invoice classification endpoint.
type InvoiceHandler struct {
	svc          InvoiceService
	maxFileBytes int64
}

// NewInvoiceHandler creates an InvoiceHandler. svc may be nil when the
// remote API credential was absent at startup; the endpoint then answers 503.
func NewInvoiceHandler(svc InvoiceService, maxFileBytes int64) *InvoiceHandler {
	return &InvoiceHandler{svc: svc, maxFileBytes: maxFileBytes}
}

// ParseAndClassify handles POST /invoice-classifier/parse-and-classify-invoice
// @Summary Upload a PDF or image and classify the expense category
// @Tags invoice-classifier
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "The PDF or image file (max 10MB) containing the invoice"
// @Param model formData string false "The OpenAI model to use (e.g., gpt-4o, gpt-4o-mini)"
// @Success 200 {object} domain.InvoiceClassificationResponse
// @Failure 400 {object} APIResponse "Invalid file type or empty file"
// @Failure 413 {object} APIResponse "File too large"
// @Failure 503 {object} APIResponse "Service not configured"
// @Router /invoice-classifier/parse-and-classify-invoice [post]
func (h *InvoiceHandler) ParseAndClassify(c *gin.Context) {
	if h.svc == nil {
		RespondError(c, http.StatusServiceUnavailable, "NOT_CONFIGURED",
			"service not configured; set the OpenAI API key")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		HandleError(c, domain.ErrUnsupportedFileType)
		return
	}
	if header.Size > h.maxFileBytes {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, h.maxFileBytes+1))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
		return
	}
	if len(content) == 0 {
		HandleError(c, domain.ErrEmptyFile)
		return
	}
	// The multipart header size can lie; re-check what was actually read.
	if int64(len(content)) > h.maxFileBytes {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	model := c.PostForm("model")

	record, err := h.svc.Extract(c.Request.Context(), content, header.Filename, model)
	if err != nil {
		HandleError(c, err)
		return
	}

	expenseClass := record.ExpenseClass
	if expenseClass == "" {
		expenseClass = domain.OtherExpenseClass
	}

	c.JSON(http.StatusOK, domain.InvoiceClassificationResponse{
		ExpenseClass:  expenseClass,
		InvoiceNumber: record.InvoiceNumber,
		TotalAmount:   record.TotalAmount,
		Currency:      record.Currency,
		RawResponse:   record,
	})
}
