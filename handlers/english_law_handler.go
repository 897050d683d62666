package handlers

import (
	"net/http"

	"lawbridge-backend/lawapi"
	"lawbridge-backend/repository"

	"github.com/gin-gonic/gin"
)

// EnglishLawHandler serves the curated English law (영문법령) catalog
type EnglishLawHandler struct {
	englishLaws *repository.EnglishLawRepository
	lawBaseURL  string
}

// NewEnglishLawHandler creates a new english law handler
func NewEnglishLawHandler(englishLaws *repository.EnglishLawRepository, lawBaseURL string) *EnglishLawHandler {
	return &EnglishLawHandler{
		englishLaws: englishLaws,
		lawBaseURL:  lawBaseURL,
	}
}

// ListEnglishLaws handles GET /english-laws
func (h *EnglishLawHandler) ListEnglishLaws(c *gin.Context) {
	source := h.lawBaseURL + lawapi.EnglishLawPath

	if topic := c.Query("topic"); topic != "" {
		// Unknown topics return an empty law list rather than an error.
		c.JSON(http.StatusOK, gin.H{
			"topic":  topic,
			"laws":   h.lawList(topic),
			"source": source,
		})
		return
	}

	lawsByTopic := gin.H{}
	for _, topic := range h.englishLaws.Topics() {
		lawsByTopic[topic] = h.lawList(topic)
	}
	c.JSON(http.StatusOK, gin.H{
		"topics":        h.englishLaws.Topics(),
		"laws_by_topic": lawsByTopic,
		"source":        source,
		"usage":         "https://www.law.go.kr → Enter path: /영문법령/법령명",
	})
}

func (h *EnglishLawHandler) lawList(topic string) []gin.H {
	laws := make([]gin.H, 0)
	for _, entry := range h.englishLaws.Entries(topic) {
		laws = append(laws, gin.H{
			"name_kr": entry.NameKR,
			"name_en": entry.NameEN,
			"url":     lawapi.BuildEnglishLawURL(h.lawBaseURL, entry.NameKR, "", ""),
		})
	}
	return laws
}

// BuildEnglishLawURL handles GET /english-laws/url
func (h *EnglishLawHandler) BuildEnglishLawURL(c *gin.Context) {
	lawName := c.Query("law_name")
	if lawName == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "law_name query parameter is required",
			},
		})
		return
	}

	url := lawapi.BuildEnglishLawURL(h.lawBaseURL, lawName, c.Query("promulgation_no"), c.Query("promulgation_date"))
	c.JSON(http.StatusOK, gin.H{
		"law_name":  lawName,
		"url":       url,
		"path_rule": "/영문법령/법령명 or /영문법령/법령명/(공포번호,공포일자)",
	})
}
