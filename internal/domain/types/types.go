// Package types contains common types used across the application
package types

// Phase is one time-boxed stage of a learning roadmap. Topics are ordered
// chronologically.
type Phase struct {
	Phase  string   `json:"phase"`
	Topics []string `json:"topics"`
}

// Story is a trending technology story fetched from the upstream
// story-ranking service. Fetched fresh per request, never persisted.
type Story struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Score int    `json:"score"`
	Time  string `json:"time,omitempty"`
	Type  string `json:"type"`
	By    string `json:"by"`
}
