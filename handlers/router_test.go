package handlers

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"lawbridge-backend/lawapi"
	"lawbridge-backend/repository"
	"lawbridge-backend/service"
)

const testLawBase = "https://www.law.go.kr"

// errorEnvelope mirrors the JSON error body shared by all handlers.
type errorEnvelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// newTestRouter wires the full handler graph around the given API client.
func newTestRouter(t *testing.T, client *lawapi.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	knowledge, err := repository.NewKnowledgeRepository()
	require.NoError(t, err)
	intents, err := repository.NewIntentRepository()
	require.NoError(t, err)
	englishLaws, err := repository.NewEnglishLawRepository()
	require.NoError(t, err)

	intentService := service.NewIntentService(intents)
	chatService := service.NewChatService(
		service.ChatWithKnowledgeRepository(knowledge),
		service.ChatWithIntentRepository(intents),
		service.ChatWithEnglishLawRepository(englishLaws),
		service.ChatWithLawSearcher(client),
		service.ChatWithLawBaseURL(testLawBase),
	)

	chatHandler := NewChatHandler(intentService, chatService)
	lawHandler := NewLawHandler(client)
	englishLawHandler := NewEnglishLawHandler(englishLaws, testLawBase)
	metaHandler := NewMetaHandler(knowledge, client, testLawBase)

	r := gin.New()
	r.Use(RequestID())
	r.GET("/", metaHandler.Root)
	r.GET("/health", metaHandler.Health)
	r.GET("/countries", metaHandler.Countries)
	r.GET("/english-laws", englishLawHandler.ListEnglishLaws)
	r.GET("/english-laws/url", englishLawHandler.BuildEnglishLawURL)
	r.POST("/chat", chatHandler.Chat)
	r.POST("/laws/search", lawHandler.SearchLaws)
	r.GET("/laws/:law_id", lawHandler.GetLawDetail)
	return r
}

// unconfiguredClient returns a client with no credential; it never performs
// network I/O.
func unconfiguredClient() *lawapi.Client {
	return lawapi.NewClient("", "http://127.0.0.1:0/DRF/lawSearch.do", "http://127.0.0.1:0/DRF/lawService.do")
}

func performRequest(r *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
