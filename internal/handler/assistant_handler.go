package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"myteai/internal/domain"
)

// AssistantService is the voice assistant contract the handler depends on.
type AssistantService interface {
	Converse(ctx context.Context, req *domain.ChatRequest) (*domain.ChatResponse, error)
	Transcribe(ctx context.Context, content []byte, filename string) (*domain.TranscriptionResult, error)
}

// AssistantHandler handles the voice assistant endpoints.
type AssistantHandler struct {
	svc AssistantService
}

// NewAssistantHandler creates an AssistantHandler.
func NewAssistantHandler(svc AssistantService) *AssistantHandler {
	return &AssistantHandler{svc: svc}
}

// Chat handles POST /voice-assistant/chat
// @Summary Run one turn of the maintenance ticket conversation
// @Tags voice-assistant
// @Accept json
// @Produce json
// @Param request body domain.ChatRequest true "Full message history plus caller context"
// @Success 200 {object} domain.ChatResponse
// @Failure 400 {object} APIResponse "Malformed request body"
// @Failure 500 {object} APIResponse "Missing credential or remote failure"
// @Router /voice-assistant/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "malformed chat request: "+err.Error())
		return
	}

	resp, err := h.svc.Converse(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Transcribe handles POST /voice-assistant/transcribe
// @Summary Transcribe an uploaded audio file
// @Tags voice-assistant
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file (WAV)"
// @Success 200 {object} domain.TranscriptionResult
// @Failure 400 {object} APIResponse "Missing file"
// @Failure 500 {object} APIResponse "Missing credential or remote failure"
// @Router /voice-assistant/transcribe [post]
func (h *AssistantHandler) Transcribe(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
		return
	}

	result, err := h.svc.Transcribe(c.Request.Context(), content, header.Filename)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
