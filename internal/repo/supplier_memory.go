package repo

import (
	"time"

	"github.com/rogerio-castellano/garment-inventory/internal/models"
)

type InMemorySupplierRepository struct {
	suppliers []models.Supplier
	nextID    int
	garments  *InMemoryGarmentRepository
}

func NewInMemorySupplierRepository() *InMemorySupplierRepository {
	return &InMemorySupplierRepository{nextID: 1}
}

// SetGarmentRepository lets Delete honor the referenced-by-garments
// restriction, matching the foreign key check in Postgres.
func (r *InMemorySupplierRepository) SetGarmentRepository(g *InMemoryGarmentRepository) {
	r.garments = g
}

func (r *InMemorySupplierRepository) Create(s models.Supplier) (models.Supplier, error) {
	s.ID = r.nextID
	r.nextID++
	s.DateAdded = time.Now().UTC()
	r.suppliers = append(r.suppliers, s)
	return s, nil
}

func (r *InMemorySupplierRepository) GetAll() ([]models.Supplier, error) {
	return r.suppliers, nil
}

func (r *InMemorySupplierRepository) GetByID(id int) (models.Supplier, error) {
	for _, s := range r.suppliers {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Supplier{}, ErrSupplierNotFound
}

func (r *InMemorySupplierRepository) Delete(id int) error {
	if r.garments != nil {
		for _, g := range r.garments.garments {
			if g.SupplierID != nil && *g.SupplierID == id {
				return ErrSupplierInUse
			}
		}
	}
	for i, s := range r.suppliers {
		if s.ID == id {
			r.suppliers = append(r.suppliers[:i], r.suppliers[i+1:]...)
			return nil
		}
	}
	return ErrSupplierNotFound
}

// SupplierName implements SupplierResolver for garment listings.
func (r *InMemorySupplierRepository) SupplierName(id int) string {
	for _, s := range r.suppliers {
		if s.ID == id {
			return s.Name
		}
	}
	return ""
}

func (r *InMemorySupplierRepository) Clear() {
	r.suppliers = nil
	r.nextID = 1
}
