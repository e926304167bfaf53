package entity

// Document is the raw OCR output for one photographed invoice or label.
// The text and the engine-reported confidence are produced by the OCR
// collaborator; this core never mutates either.
type Document struct {
	Text       string  `json:"text"`
	Confidence float32 `json:"confidence"`
}
