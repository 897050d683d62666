package models

// LawSearchRequest is the payload for a statute search. SearchType, Page and
// Count default to "law", 1 and 10 when omitted.
type LawSearchRequest struct {
	Keyword    string `json:"keyword" binding:"required"`
	SearchType string `json:"search_type"`
	Page       int    `json:"page"`
	Count      int    `json:"count"`
}

// LawSearchResponse is the wire response for a statute search.
type LawSearchResponse struct {
	Success      bool         `json:"success"`
	TotalCount   int          `json:"total_count"`
	Laws         []LawSummary `json:"laws"`
	ErrorMessage string       `json:"error_message,omitempty"`
}

// LawSummary is one row of a statute search result.
type LawSummary struct {
	LawID            string `json:"law_id"`
	LawName          string `json:"law_name"`
	PromulgationDate string `json:"promulgation_date"`
	EnforcementDate  string `json:"enforcement_date"`
	Ministry         string `json:"ministry"`
	LawType          string `json:"law_type"`
}

// LawDetail is the article-level breakdown of a single statute.
type LawDetail struct {
	Success          bool         `json:"success"`
	LawID            string       `json:"law_id"`
	LawName          string       `json:"law_name"`
	PromulgationDate string       `json:"promulgation_date"`
	EnforcementDate  string       `json:"enforcement_date"`
	Articles         []LawArticle `json:"articles"`
}

// LawArticle is a single article within a statute.
type LawArticle struct {
	Number  string `json:"article_no"`
	Title   string `json:"article_title"`
	Content string `json:"article_content"`
}
