package repo

import (
	"time"

	"github.com/rogerio-castellano/garment-inventory/internal/models"
)

type InMemoryOrderRepository struct {
	orders   []models.Order
	nextID   int
	garments *InMemoryGarmentRepository
}

func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{nextID: 1}
}

func (r *InMemoryOrderRepository) SetGarmentRepository(g *InMemoryGarmentRepository) {
	r.garments = g
}

func (r *InMemoryOrderRepository) Create(o models.Order) (models.Order, error) {
	if r.garments != nil {
		if _, err := r.garments.GetByID(o.GarmentID); err != nil {
			return models.Order{}, ErrGarmentNotFound
		}
	}
	o.ID = r.nextID
	r.nextID++
	o.OrderDate = time.Now().UTC()
	r.orders = append(r.orders, o)
	return o, nil
}

func (r *InMemoryOrderRepository) GetAll() ([]models.Order, error) {
	out := make([]models.Order, 0, len(r.orders))
	for i := len(r.orders) - 1; i >= 0; i-- {
		o := r.orders[i]
		if r.garments != nil {
			if g, err := r.garments.GetByID(o.GarmentID); err == nil {
				o.GarmentName = g.Name
			}
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *InMemoryOrderRepository) UpdateStatus(id int, status string) error {
	for i, o := range r.orders {
		if o.ID == id {
			r.orders[i].Status = status
			return nil
		}
	}
	return ErrOrderNotFound
}

func (r *InMemoryOrderRepository) Clear() {
	r.orders = nil
	r.nextID = 1
}
