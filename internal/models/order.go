package models

import "time"

// Order statuses. Status is a plain state field; no transition table is
// enforced.
const (
	OrderPending   = "pending"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

type Order struct {
	ID              int       `json:"id"`
	GarmentID       int       `json:"garment_id"`
	GarmentName     string    `json:"garment,omitempty"`
	Quantity        int       `json:"quantity"`
	OrderDate       time.Time `json:"order_date"`
	Status          string    `json:"status"`
	CustomerName    string    `json:"customer_name"`
	CustomerContact string    `json:"customer_contact"`
}

// ValidOrderStatus reports whether s is one of the known order states.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}
