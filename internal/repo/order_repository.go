package repo

import "github.com/rogerio-castellano/garment-inventory/internal/models"

// OrderRepository defines data operations over customer orders. Listings
// carry the garment name resolved through a join.
type OrderRepository interface {
	Create(o models.Order) (models.Order, error)
	GetAll() ([]models.Order, error)
	UpdateStatus(id int, status string) error
}
