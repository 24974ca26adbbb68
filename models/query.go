package models

// QueryRequest is one natural-language question for the assistant,
// optionally grounded to a previously uploaded image.
type QueryRequest struct {
	UserID  string `json:"user_id,omitempty"`  // anonymous user identity
	Text    string `json:"text"`               // the question itself
	Lang    string `json:"lang"`               // "en" or "hi"
	ImageID string `json:"image_id,omitempty"` // handle from a prior upload
}

// Source is one document the backend cites for its answer.
type Source struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// QueryResponse is the assistant's answer. Meta carries the provenance
// tag under "mode" (ai, fallback or demo) and must be surfaced to the
// caller as received.
type QueryResponse struct {
	Answer     string   `json:"answer"`
	Confidence float64  `json:"confidence"` // backend self-reported, 0..1
	Actions    []string `json:"actions"`    // suggested follow-up actions, ordered
	Sources    []Source `json:"sources"`
	Meta       Meta     `json:"meta"`
}

// QueryHistory lists past queries for a user. In demo mode the backend
// returns an explanatory message and an empty list.
type QueryHistory struct {
	Message string           `json:"message,omitempty"`
	Queries []map[string]any `json:"queries"`
}
