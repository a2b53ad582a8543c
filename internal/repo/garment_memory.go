package repo

import (
	"sort"
	"strings"
	"time"

	"github.com/rogerio-castellano/garment-inventory/internal/models"
)

// InMemoryGarmentRepository backs the handler tests. A SupplierResolver
// stands in for the left join when one is set.
type InMemoryGarmentRepository struct {
	garments []models.Garment
	nextID   int
	resolver SupplierResolver
}

// SupplierResolver maps a supplier id to its name for listings.
type SupplierResolver interface {
	SupplierName(id int) string
}

func NewInMemoryGarmentRepository() *InMemoryGarmentRepository {
	return &InMemoryGarmentRepository{nextID: 1}
}

func (r *InMemoryGarmentRepository) SetSupplierResolver(res SupplierResolver) {
	r.resolver = res
}

func (r *InMemoryGarmentRepository) Create(g models.Garment) (models.Garment, error) {
	g.ID = r.nextID
	r.nextID++
	now := time.Now().UTC()
	g.DateAdded = now
	g.LastUpdated = now
	r.garments = append(r.garments, g)
	return g, nil
}

func (r *InMemoryGarmentRepository) GetAll(filter GarmentFilter) ([]models.Garment, error) {
	var out []models.Garment
	for _, g := range r.garments {
		if filter.Name != "" && !strings.Contains(strings.ToLower(g.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Category != "" && g.Category != filter.Category {
			continue
		}
		if filter.Size != "" && g.Size != filter.Size {
			continue
		}
		out = append(out, r.withSupplierName(g))
	}
	return out, nil
}

func (r *InMemoryGarmentRepository) GetByID(id int) (models.Garment, error) {
	for _, g := range r.garments {
		if g.ID == id {
			return r.withSupplierName(g), nil
		}
	}
	return models.Garment{}, ErrGarmentNotFound
}

func (r *InMemoryGarmentRepository) Update(g models.Garment) (models.Garment, error) {
	for i, existing := range r.garments {
		if existing.ID == g.ID {
			g.DateAdded = existing.DateAdded
			g.LastUpdated = time.Now().UTC()
			r.garments[i] = g
			return g, nil
		}
	}
	return models.Garment{}, ErrGarmentNotFound
}

func (r *InMemoryGarmentRepository) Delete(id int) error {
	for i, g := range r.garments {
		if g.ID == id {
			r.garments = append(r.garments[:i], r.garments[i+1:]...)
			return nil
		}
	}
	return ErrGarmentNotFound
}

func (r *InMemoryGarmentRepository) AdjustQuantity(id, delta int) (models.Garment, error) {
	for i, g := range r.garments {
		if g.ID == id {
			if g.Quantity+delta < 0 {
				return models.Garment{}, ErrInvalidQuantityChange
			}
			r.garments[i].Quantity += delta
			r.garments[i].LastUpdated = time.Now().UTC()
			return r.withSupplierName(r.garments[i]), nil
		}
	}
	return models.Garment{}, ErrGarmentNotFound
}

func (r *InMemoryGarmentRepository) CategoryTotals() ([]CategoryTotal, error) {
	byCategory := map[string]int{}
	for _, g := range r.garments {
		byCategory[g.Category] += g.Quantity
	}
	var totals []CategoryTotal
	for category, qty := range byCategory {
		totals = append(totals, CategoryTotal{Category: category, Quantity: qty})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Category < totals[j].Category })
	return totals, nil
}

// Clear resets the repository between tests.
func (r *InMemoryGarmentRepository) Clear() {
	r.garments = nil
	r.nextID = 1
}

func (r *InMemoryGarmentRepository) withSupplierName(g models.Garment) models.Garment {
	if g.SupplierID != nil && r.resolver != nil {
		g.SupplierName = r.resolver.SupplierName(*g.SupplierID)
	}
	return g
}
