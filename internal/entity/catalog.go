package entity

// CatalogEntry is one row of caller-supplied product master data.
// The catalog is read-only input for the duration of a reconciliation call.
type CatalogEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Barcode string `json:"barcode_gtin,omitempty"`
}

// MatchResult is the outcome of resolving a raw name against the catalog.
// A zero value (empty ProductID, score 0) signals "no match".
type MatchResult struct {
	ProductID string  `json:"product_id,omitempty"`
	Score     float64 `json:"score"`
}
