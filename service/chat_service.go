package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"lawbridge-backend/lawapi"
	"lawbridge-backend/models"
	"lawbridge-backend/repository"
)

// LawSearcher is the live statute search used to enrich law references.
// *lawapi.Client satisfies it.
type LawSearcher interface {
	Configured() bool
	SearchLaws(ctx context.Context, keyword, searchType string, page, count int) (*lawapi.SearchResult, error)
}

const (
	// maxCuratedReferences caps the curated English law links per reply.
	maxCuratedReferences = 5
	// maxEnrichedReferences caps the live search results merged per reply.
	maxEnrichedReferences = 2
	// enrichmentSearchCount is the result count requested from the live search.
	enrichmentSearchCount = 3
)

const (
	lawLinksNote      = "\n\n📚 English Laws (영문법령): See links below for official translations (National Law Information)."
	lowConfidenceNote = "\n\n⚠️ Note: This is general information. For accurate advice, please consult a legal expert."
	fallbackReply     = "I understand you're asking about general. For specific legal advice, I recommend consulting with a qualified lawyer or e-mailing virtual.esq@gmail.com."
	safeReplyText     = "I'm sorry, I couldn't process that. Please try again or rephrase your question."

	// defaultDisclaimer is attached to every chat response.
	defaultDisclaimer = "This is informational only. Consult a qualified lawyer for legal advice."
)

var (
	// highRiskKeywords flag messages that should reach a human expert.
	highRiskKeywords = []string{"lawsuit", "dispute", "termination", "court", "litigation", "sue"}
	// litigationKeywords pick the litigation expert type among high-risk hits.
	litigationKeywords = []string{"lawsuit", "court", "sue"}
)

// ChatService composes chatbot replies from the knowledge base, the curated
// English law entries, and the optional live statute search.
type ChatService struct {
	knowledge   *repository.KnowledgeRepository
	intents     *repository.IntentRepository
	englishLaws *repository.EnglishLawRepository
	searcher    LawSearcher
	lawBaseURL  string
}

// ChatServiceOption is a functional option for ChatService
type ChatServiceOption func(*ChatService)

// ChatWithKnowledgeRepository sets the knowledge repository
func ChatWithKnowledgeRepository(repo *repository.KnowledgeRepository) ChatServiceOption {
	return func(s *ChatService) {
		s.knowledge = repo
	}
}

// ChatWithIntentRepository sets the intent repository
func ChatWithIntentRepository(repo *repository.IntentRepository) ChatServiceOption {
	return func(s *ChatService) {
		s.intents = repo
	}
}

// ChatWithEnglishLawRepository sets the curated English law repository
func ChatWithEnglishLawRepository(repo *repository.EnglishLawRepository) ChatServiceOption {
	return func(s *ChatService) {
		s.englishLaws = repo
	}
}

// ChatWithLawSearcher sets the live law search client
func ChatWithLawSearcher(searcher LawSearcher) ChatServiceOption {
	return func(s *ChatService) {
		s.searcher = searcher
	}
}

// ChatWithLawBaseURL sets the base URL used to build English law links
func ChatWithLawBaseURL(baseURL string) ChatServiceOption {
	return func(s *ChatService) {
		s.lawBaseURL = baseURL
	}
}

// NewChatService creates a new chat service with the given options
func NewChatService(opts ...ChatServiceOption) *ChatService {
	s := &ChatService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Respond builds the reply for one chat turn. Composition failures are
// absorbed into a fixed safe reply; an error is returned only when the
// service is missing its repositories.
func (s *ChatService) Respond(ctx context.Context, intent, country, message string) (resp *models.ChatResponse, err error) {
	if s.knowledge == nil {
		return nil, errors.New("knowledge repository not set")
	}
	if s.intents == nil {
		return nil, errors.New("intent repository not set")
	}
	if s.englishLaws == nil {
		return nil, errors.New("english law repository not set")
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: chat composition failed: %v", r)
			resp = safeReply()
			err = nil
		}
	}()

	// 1. Normalize inputs
	message = strings.TrimSpace(message)
	if intent == "" {
		intent = "general"
	}
	if country == "" {
		country = "general"
	}

	// 2. Resolve law references: curated links first, then optional live search
	references := s.resolveLawReferences(ctx, intent)

	// 3. Knowledge base lookup with country fallback
	replyText, confidence := s.knowledgeReply(country, intent)

	// 4. Point at the law links when any were resolved
	if len(references) > 0 {
		replyText += lawLinksNote
	}

	// 5. Expert escalation for high-risk wording
	messageLower := strings.ToLower(message)
	needsExpert := containsAny(messageLower, highRiskKeywords)
	var expertType *string
	if needsExpert {
		expertType = suggestedExpertType(messageLower)
	}

	// 6. Suggested follow-up actions for the intent
	actions := s.intents.SuggestedActions(intent)
	if actions == nil {
		actions = []string{}
	}

	// 7. Low-confidence warning
	if confidence < 0.5 {
		replyText += lowConfidenceNote
	}

	return &models.ChatResponse{
		Reply:               replyText,
		Confidence:          confidence,
		SuggestedActions:    actions,
		LawReferences:       references,
		NeedsExpert:         needsExpert,
		SuggestedExpertType: expertType,
		Disclaimer:          defaultDisclaimer,
	}, nil
}

// knowledgeReply selects the canned answer, preferring the country-specific
// entry over the "general" tier.
func (s *ChatService) knowledgeReply(country, intent string) (string, float64) {
	if entry, ok := s.knowledge.Lookup(country, intent); ok {
		return entry.Answer, entry.Confidence
	}
	if entry, ok := s.knowledge.Lookup("general", intent); ok {
		return entry.Answer, entry.Confidence
	}
	return fallbackReply, 0.3
}

// resolveLawReferences assembles the curated English law links for the intent
// and, when the live search is configured, merges in results from the first
// search keyword that yields any. Search failures are logged and skipped so
// the curated references always survive.
func (s *ChatService) resolveLawReferences(ctx context.Context, intent string) []models.LawReference {
	references := make([]models.LawReference, 0)

	entries := s.englishLaws.Entries(intent)
	if len(entries) > maxCuratedReferences {
		entries = entries[:maxCuratedReferences]
	}
	for _, entry := range entries {
		if entry.NameKR == "" {
			continue
		}
		nameEN := entry.NameEN
		if nameEN == "" {
			nameEN = entry.NameKR
		}
		references = append(references, models.LawReference{
			Name:   entry.NameKR,
			NameEN: nameEN,
			URL:    lawapi.BuildEnglishLawURL(s.lawBaseURL, entry.NameKR, "", ""),
			ID:     entry.NameKR,
		})
	}

	if s.searcher == nil || !s.searcher.Configured() {
		return references
	}

	for _, keyword := range s.intents.SearchKeywords(intent) {
		result, err := s.searcher.SearchLaws(ctx, keyword, "law", 1, enrichmentSearchCount)
		if err != nil {
			log.Printf("Warning: law search for %q failed: %v", keyword, err)
			continue
		}
		if len(result.Laws) == 0 {
			continue
		}

		merged := result.Laws
		if len(merged) > maxEnrichedReferences {
			merged = merged[:maxEnrichedReferences]
		}
		for _, law := range merged {
			if law.LawName == "" || hasReference(references, law.LawName) {
				continue
			}
			references = append(references, models.LawReference{
				Name:   law.LawName,
				NameEN: law.LawName,
				URL:    lawapi.BuildEnglishLawURL(s.lawBaseURL, law.LawName, "", ""),
				ID:     law.LawID,
			})
		}
		// The first keyword that returns laws settles the enrichment.
		break
	}

	return references
}

func suggestedExpertType(messageLower string) *string {
	expertType := "general"
	if containsAny(messageLower, litigationKeywords) {
		expertType = "litigation"
	}
	return &expertType
}

func hasReference(references []models.LawReference, name string) bool {
	for _, ref := range references {
		if ref.Name == name {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

func safeReply() *models.ChatResponse {
	return &models.ChatResponse{
		Reply:            safeReplyText,
		Confidence:       0.3,
		SuggestedActions: []string{},
		LawReferences:    []models.LawReference{},
		NeedsExpert:      false,
		Disclaimer:       defaultDisclaimer,
	}
}
