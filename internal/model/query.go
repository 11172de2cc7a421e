package model

// SearchRequest represents a search query request
type SearchRequest struct {
	Query   string         `json:"query" binding:"required"`
	Options *SearchOptions `json:"options,omitempty"`
}

// SearchOptions represents per-request search options
type SearchOptions struct {
	// Limit caps the number of ranked results (server enforces its own max).
	Limit int `json:"limit,omitempty"`
	// TopK is how many candidate lines the summary quotes.
	TopK int `json:"top_k,omitempty"`
	// AllowLLM overrides the server default for using the language-model
	// answer backend. Nil means use the configured default.
	AllowLLM *bool `json:"allow_llm,omitempty"`
}

// SearchResponse represents a ranked search result response
type SearchResponse struct {
	SearchID      string          `json:"search_id"`
	Results       []ScoredListing `json:"results"`
	Total         int             `json:"total"`
	Filters       *FilterSet      `json:"filters"`
	Summary       string          `json:"summary"`
	SummarySource string          `json:"summary_source"` // "llm" or "fallback"
	Took          int64           `json:"took_ms"`
}

// RoommateResponse represents a shared-housing candidate response
type RoommateResponse struct {
	SearchID string              `json:"search_id"`
	Results  []RoommateCandidate `json:"results"`
	Total    int                 `json:"total"`
	Filters  *FilterSet          `json:"filters"`
	Took     int64               `json:"took_ms"`
}
