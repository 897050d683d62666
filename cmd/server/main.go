package main

import (
	"log"

	"lawbridge-backend/config"
	"lawbridge-backend/handlers"
	"lawbridge-backend/lawapi"
	"lawbridge-backend/repository"
	"lawbridge-backend/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	// Initialize repositories from the embedded tables
	knowledgeRepo, err := repository.NewKnowledgeRepository()
	if err != nil {
		log.Fatal("Failed to load knowledge base:", err)
	}
	intentRepo, err := repository.NewIntentRepository()
	if err != nil {
		log.Fatal("Failed to load intent tables:", err)
	}
	englishLawRepo, err := repository.NewEnglishLawRepository()
	if err != nil {
		log.Fatal("Failed to load English law catalog:", err)
	}

	// Initialize the National Law Information client
	lawClient := lawapi.NewClient(cfg.LawOC, cfg.LawSearchURL, cfg.LawServiceURL)
	if !lawClient.Configured() {
		log.Printf("Warning: LAW_GO_KR_OC not set, live law search disabled")
	}

	// Initialize services
	intentService := service.NewIntentService(intentRepo)
	chatService := service.NewChatService(
		service.ChatWithKnowledgeRepository(knowledgeRepo),
		service.ChatWithIntentRepository(intentRepo),
		service.ChatWithEnglishLawRepository(englishLawRepo),
		service.ChatWithLawSearcher(lawClient),
		service.ChatWithLawBaseURL(cfg.LawBaseURL),
	)

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(intentService, chatService)
	lawHandler := handlers.NewLawHandler(lawClient)
	englishLawHandler := handlers.NewEnglishLawHandler(englishLawRepo, cfg.LawBaseURL)
	metaHandler := handlers.NewMetaHandler(knowledgeRepo, lawClient, cfg.LawBaseURL)

	// Setup Gin router
	r := gin.Default()
	r.Use(corsMiddleware())
	r.Use(handlers.RequestID())

	r.GET("/", metaHandler.Root)
	r.GET("/health", metaHandler.Health)
	r.GET("/countries", metaHandler.Countries)
	r.GET("/english-laws", englishLawHandler.ListEnglishLaws)
	r.GET("/english-laws/url", englishLawHandler.BuildEnglishLawURL)
	r.POST("/chat", chatHandler.Chat)
	r.POST("/laws/search", lawHandler.SearchLaws)
	r.GET("/laws/:law_id", lawHandler.GetLawDetail)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// corsMiddleware allows any origin while keeping credentialed requests
// working, which a bare wildcard origin would break.
func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			return true
		},
	})
}
