package models

// ChemRecoRequest asks for treatment guidance for a crop symptom,
// optionally grounded to an uploaded image.
type ChemRecoRequest struct {
	Crop         string `json:"crop"`
	Symptom      string `json:"symptom"`
	ImageID      string `json:"image_id,omitempty"`
	Severity     string `json:"severity,omitempty"`      // mild, moderate, severe
	AffectedArea string `json:"affected_area,omitempty"` // leaves, stem, fruit, root
}

// Treatment is one recommended intervention, ordered from cultural to
// chemical by the backend.
type Treatment struct {
	Type        string   `json:"type"` // cultural, biological, chemical
	Method      string   `json:"method"`
	Description string   `json:"description"`
	Timing      string   `json:"timing"`
	Precautions []string `json:"precautions"`
}

// ChemRecoResponse is the diagnosis with conservative recommendations.
type ChemRecoResponse struct {
	Diagnosis       string      `json:"diagnosis"`
	Confidence      float64     `json:"confidence"` // 0..1
	Recommendations []Treatment `json:"recommendations"`
	NextSteps       []string    `json:"next_steps"`
	Warnings        []string    `json:"warnings"`
	Meta            Meta        `json:"meta"`
}

// CropInfo describes one crop supported for recommendations.
type CropInfo struct {
	Name         string   `json:"name"`
	Value        string   `json:"value"`
	CommonIssues []string `json:"common_issues"`
}

// CropList is the catalogue of supported crops.
type CropList struct {
	Crops []CropInfo `json:"crops"`
}

// SymptomCategory groups common symptoms by plant part.
type SymptomCategory struct {
	Category string   `json:"category"`
	Symptoms []string `json:"symptoms"`
}

// SymptomList is the catalogue of common symptoms.
type SymptomList struct {
	SymptomCategories []SymptomCategory `json:"symptom_categories"`
}
