package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the chatbot backend.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// LawOC is the user code for the National Law Information (law.go.kr)
	// open API. When empty, live law search is disabled and the chatbot
	// falls back to its curated references.
	LawOC string

	// LawBaseURL is the public site origin used to build English law links.
	LawBaseURL string

	// LawSearchURL and LawServiceURL are the DRF endpoints for statute
	// search and statute detail lookups.
	LawSearchURL  string
	LawServiceURL string
}

// Load reads configuration from the environment, applying defaults for
// anything unset. A .env file in the working directory is honored when
// present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:          getEnvDefault("PORT", "8080"),
		LawOC:         os.Getenv("LAW_GO_KR_OC"),
		LawBaseURL:    getEnvDefault("LAW_GO_KR_BASE", "https://www.law.go.kr"),
		LawSearchURL:  getEnvDefault("LAW_GO_KR_BASE_URL", "http://www.law.go.kr/DRF/lawSearch.do"),
		LawServiceURL: getEnvDefault("LAW_GO_KR_SERVICE_URL", "http://www.law.go.kr/DRF/lawService.do"),
	}
}

func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
