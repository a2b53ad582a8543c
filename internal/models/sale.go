package models

import "time"

// Sale rows are append-only once created. Profit is computed at insert
// time from the garment's cost price.
type Sale struct {
	ID          int       `json:"id"`
	GarmentID   int       `json:"garment_id"`
	GarmentName string    `json:"garment,omitempty"`
	Quantity    int       `json:"quantity"`
	SalePrice   float64   `json:"sale_price"`
	SaleDate    time.Time `json:"sale_date"`
	Profit      float64   `json:"profit"`
	UserID      int       `json:"user_id"`
	Username    string    `json:"recorded_by,omitempty"`
}
