package handlers

import (
	"net/http"
	"strings"

	"lawbridge-backend/lawapi"
	"lawbridge-backend/models"

	"github.com/gin-gonic/gin"
)

// LawHandler handles HTTP requests backed by the National Law Information API
type LawHandler struct {
	client *lawapi.Client
}

// NewLawHandler creates a new law handler
func NewLawHandler(client *lawapi.Client) *LawHandler {
	return &LawHandler{client: client}
}

// SearchLaws handles POST /laws/search
func (h *LawHandler) SearchLaws(c *gin.Context) {
	var req models.LawSearchRequest
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

	if req.SearchType == "" {
		req.SearchType = "law"
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.Count == 0 {
		req.Count = 10
	}

	result, err := h.client.SearchLaws(c.Request.Context(), req.Keyword, req.SearchType, req.Page, req.Count)
	if err != nil {
		// Gateway failures stay in-band as a failed search response.
		c.JSON(http.StatusOK, models.LawSearchResponse{
			Success:      false,
			TotalCount:   0,
			Laws:         []models.LawSummary{},
			ErrorMessage: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.LawSearchResponse{
		Success:    true,
		TotalCount: result.TotalCount,
		Laws:       result.Laws,
	})
}

// GetLawDetail handles GET /laws/:law_id
func (h *LawHandler) GetLawDetail(c *gin.Context) {
	lawID := c.Param("law_id")

	detail, err := h.client.GetLawDetail(c.Request.Context(), lawID)
	if err != nil {
		status := http.StatusInternalServerError
		code := "RETRIEVAL_FAILED"
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			status = http.StatusNotFound
			code = "NOT_FOUND"
		}
		c.JSON(status, gin.H{
			"success": false,
			"error": gin.H{
				"code":    code,
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, detail)
}
