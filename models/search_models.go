package models

// SearchResult represents one page matched by site search
type SearchResult struct {
	Slug    string  `json:"slug"`
	Title   string  `json:"title"`
	Summary string  `json:"summary"`
	URL     string  `json:"url"`
	Score   float64 `json:"score"`
}

// SearchResponse represents the full search response
type SearchResponse struct {
	BaseResponse
	Query    string         `json:"query"`
	Results  []SearchResult `json:"results"`
	Count    int            `json:"count"`
	Duration string         `json:"duration"`
}
