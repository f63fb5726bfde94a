package store

// Snippet is a retrieved knowledge fragment with its catalog metadata.
// Immutable from the pipeline's perspective.
type Snippet struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	Intent   string  `json:"intent"`
	Language string  `json:"language"` // "he" | "en"
	Category string  `json:"category"`
	Score    float64 `json:"score"` // distance, smaller = more similar
}
