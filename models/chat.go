package models

// ChatRequest is the payload for a single chatbot turn.
type ChatRequest struct {
	Message string `json:"message"`

	// Country selects a country-specific knowledge base. Unknown or empty
	// values fall back to "general".
	Country string `json:"country"`

	// UserType distinguishes individual and corporate users. Accepted for
	// client compatibility; it does not change routing yet.
	UserType string `json:"user_type"`

	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse is the chatbot's answer to a single message.
type ChatResponse struct {
	Reply            string         `json:"reply"`
	Confidence       float64        `json:"confidence"`
	SuggestedActions []string       `json:"suggested_actions"`
	LawReferences    []LawReference `json:"law_references"`

	// NeedsExpert flags high-risk questions that should be escalated to a
	// human lawyer. SuggestedExpertType is only set when NeedsExpert is true.
	NeedsExpert         bool    `json:"needs_expert"`
	SuggestedExpertType *string `json:"suggested_expert_type,omitempty"`

	Disclaimer string `json:"disclaimer"`
}

// LawReference is a single statute link surfaced alongside a chat reply.
type LawReference struct {
	Name   string `json:"name"`
	NameEN string `json:"name_en"`
	URL    string `json:"url"`
	ID     string `json:"id"`
}
