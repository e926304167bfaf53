package entity

import "time"

// ExpiryInfo carries the expiry date and lot code read from a product label.
// Either field may be absent; correlation with invoice lines is the caller's
// concern.
type ExpiryInfo struct {
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	LotCode    string     `json:"lot_code,omitempty"`
}
