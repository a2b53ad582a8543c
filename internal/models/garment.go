package models

import "time"

// Garment represents a stock-keeping unit tracked by name, category, size
// and color. SupplierID is nullable; SupplierName is filled in by the
// left join when listing and stays empty for garments with no supplier.
type Garment struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Size         string    `json:"size"`
	Color        string    `json:"color"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
	CostPrice    float64   `json:"cost_price"`
	SupplierID   *int      `json:"supplier_id,omitempty"`
	SupplierName string    `json:"supplier,omitempty"`
	DateAdded    time.Time `json:"date_added"`
	LastUpdated  time.Time `json:"last_updated"`
}
