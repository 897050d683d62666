package handlers

import (
	"net/http"

	"lawbridge-backend/models"
	"lawbridge-backend/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles HTTP requests for the chatbot
type ChatHandler struct {
	intentService *service.IntentService
	chatService   *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(intentService *service.IntentService, chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		intentService: intentService,
		chatService:   chatService,
	}
}

// Chat handles POST /chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	// The classifier's own confidence is not surfaced; the reply carries the
	// knowledge base confidence instead.
	intent, _ := h.intentService.DetectIntent(req.Message)

	resp, err := h.chatService.Respond(c.Request.Context(), intent, req.Country, req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CHAT_FAILED",
				"message": "Error processing request: " + err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
