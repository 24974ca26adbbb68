package models

// PolicyMatchRequest is a farmer profile matched against government schemes.
type PolicyMatchRequest struct {
	UserID     string  `json:"user_id,omitempty"`
	State      string  `json:"state"`
	Crop       string  `json:"crop,omitempty"`
	LandSize   float64 `json:"land_size,omitempty"`   // hectares
	FarmerType string  `json:"farmer_type,omitempty"` // small, marginal, large
}

// SchemeInfo describes one matched government scheme.
type SchemeInfo struct {
	Name           string   `json:"name"`
	Code           string   `json:"code"`
	Description    string   `json:"description"`
	Eligibility    []string `json:"eligibility"`
	RequiredDocs   []string `json:"required_docs"`
	Benefits       string   `json:"benefits"`
	ApplicationURL string   `json:"application_url,omitempty"`
}

// PolicyMatchResponse lists the schemes a profile qualifies for.
// TotalMatches is surfaced exactly as the backend reported it and is not
// recomputed from MatchedSchemes.
type PolicyMatchResponse struct {
	MatchedSchemes  []SchemeInfo `json:"matched_schemes"`
	TotalMatches    int          `json:"total_matches"`
	Recommendations []string     `json:"recommendations"`
	Meta            Meta         `json:"meta"`
}

// SchemeList is the unfiltered scheme catalogue. Entries keep the raw
// backend shape, which carries eligibility fields beyond SchemeInfo.
type SchemeList struct {
	Schemes []map[string]any `json:"schemes"`
	Total   int              `json:"total"`
	Filters Meta             `json:"filters"`
}

// StateList enumerates states usable for scheme filtering.
type StateList struct {
	States []string `json:"states"`
}
