package handlers

import (
	"net/http"
	"time"

	"lawbridge-backend/lawapi"
	"lawbridge-backend/repository"

	"github.com/gin-gonic/gin"
)

const serviceVersion = "1.0.0"

// MetaHandler serves the service metadata and health endpoints
type MetaHandler struct {
	knowledge  *repository.KnowledgeRepository
	client     *lawapi.Client
	lawBaseURL string
}

// NewMetaHandler creates a new meta handler
func NewMetaHandler(knowledge *repository.KnowledgeRepository, client *lawapi.Client, lawBaseURL string) *MetaHandler {
	return &MetaHandler{
		knowledge:  knowledge,
		client:     client,
		lawBaseURL: lawBaseURL,
	}
}

// Root handles GET /
func (h *MetaHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":          "Legal Assistant Chatbot",
		"version":          serviceVersion,
		"focus":            "English laws (영문법령) via National Law Information",
		"law_base_url":     h.lawBaseURL,
		"english_law_path": "https://www.law.go.kr/영문법령/법령명",
		"endpoints": gin.H{
			"POST /chat":            "Chat with legal assistant",
			"GET /health":           "Health check",
			"GET /countries":        "Supported countries",
			"GET /english-laws":     "List English laws by topic",
			"GET /english-laws/url": "Build English law URL",
			"POST /laws/search":     "Search laws (API key required)",
			"GET /laws/{law_id}":    "Get law details",
		},
		"supported_countries": h.knowledge.Countries(),
		"api_status": gin.H{
			"national_law_info_configured": h.client.Configured(),
		},
	})
}

// Health handles GET /health
func (h *MetaHandler) Health(c *gin.Context) {
	apiStatus := "not configured"
	if h.client.Configured() {
		apiStatus = "configured"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "legal-chatbot",
		"api_status": gin.H{
			"national_law_info": apiStatus,
		},
	})
}

// Countries handles GET /countries
func (h *MetaHandler) Countries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"countries":   h.knowledge.Countries(),
		"description": "Countries currently supported by the legal chatbot",
	})
}
