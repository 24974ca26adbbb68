package models

// UploadResponse describes an analysed crop image. ImageID is the handle
// later referenced by QueryRequest and ChemRecoRequest.
type UploadResponse struct {
	ImageID    string  `json:"image_id"`
	URL        string  `json:"url"`
	Label      string  `json:"label"`      // classification result
	Confidence float64 `json:"confidence"` // 0..1
	Meta       Meta    `json:"meta"`       // filename, size (bytes), storage
}
