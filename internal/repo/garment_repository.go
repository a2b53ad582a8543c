package repo

import "github.com/rogerio-castellano/garment-inventory/internal/models"

// GarmentFilter narrows GetAll results. Empty fields are ignored.
type GarmentFilter struct {
	Name     string
	Category string
	Size     string
}

// CategoryTotal is the per-category quantity aggregate behind the
// inventory breakdown chart.
type CategoryTotal struct {
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// GarmentRepository defines data operations over garments. Listings carry
// the supplier name resolved through a left join; garments without a
// supplier keep an empty name.
type GarmentRepository interface {
	Create(g models.Garment) (models.Garment, error)
	GetAll(filter GarmentFilter) ([]models.Garment, error)
	GetByID(id int) (models.Garment, error)
	Update(g models.Garment) (models.Garment, error)
	Delete(id int) error
	AdjustQuantity(id, delta int) (models.Garment, error)
	CategoryTotals() ([]CategoryTotal, error)
}
