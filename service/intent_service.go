package service

import (
	"math"
	"strings"

	"lawbridge-backend/repository"
)

// IntentService classifies free-text messages into legal topic intents.
type IntentService struct {
	intents *repository.IntentRepository
}

// NewIntentService creates a new intent service
func NewIntentService(intents *repository.IntentRepository) *IntentService {
	return &IntentService{intents: intents}
}

// DetectIntent scores every intent by counting its keywords that occur as
// substrings of the lower-cased message. The strictly highest score wins,
// so ties keep the earlier intent and no hits keep the "general" default.
// Confidence is score/3, capped at 1.0.
func (s *IntentService) DetectIntent(message string) (string, float64) {
	messageLower := strings.ToLower(message)

	bestIntent := "general"
	bestScore := 0
	for _, def := range s.intents.All() {
		score := 0
		for _, keyword := range def.Keywords {
			if strings.Contains(messageLower, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestIntent = def.Name
		}
	}

	confidence := math.Min(float64(bestScore)/3, 1.0)
	return bestIntent, confidence
}
