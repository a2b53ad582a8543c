package repo

import "github.com/rogerio-castellano/garment-inventory/internal/models"

// SupplierRepository defines data operations over suppliers. Delete is
// restricted: a supplier still referenced by garments cannot be removed.
type SupplierRepository interface {
	Create(s models.Supplier) (models.Supplier, error)
	GetAll() ([]models.Supplier, error)
	GetByID(id int) (models.Supplier, error)
	Delete(id int) error
}
