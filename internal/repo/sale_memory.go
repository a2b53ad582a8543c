package repo

import (
	"sort"
	"time"

	"github.com/rogerio-castellano/garment-inventory/internal/models"
)

type InMemorySaleRepository struct {
	sales    []models.Sale
	nextID   int
	garments *InMemoryGarmentRepository
	users    *InMemoryUserRepository
}

func NewInMemorySaleRepository() *InMemorySaleRepository {
	return &InMemorySaleRepository{nextID: 1}
}

func (r *InMemorySaleRepository) SetRepositories(g *InMemoryGarmentRepository, u *InMemoryUserRepository) {
	r.garments = g
	r.users = u
}

func (r *InMemorySaleRepository) Create(s models.Sale) (models.Sale, error) {
	if r.garments != nil {
		if _, err := r.garments.GetByID(s.GarmentID); err != nil {
			return models.Sale{}, ErrGarmentNotFound
		}
	}
	s.ID = r.nextID
	r.nextID++
	s.SaleDate = time.Now().UTC()
	r.sales = append(r.sales, s)
	return s, nil
}

func (r *InMemorySaleRepository) GetAll() ([]models.Sale, error) {
	out := make([]models.Sale, 0, len(r.sales))
	for i := len(r.sales) - 1; i >= 0; i-- {
		s := r.sales[i]
		if r.garments != nil {
			if g, err := r.garments.GetByID(s.GarmentID); err == nil {
				s.GarmentName = g.Name
			}
		}
		if r.users != nil {
			if u, err := r.users.GetByID(s.UserID); err == nil {
				s.Username = u.Username
			}
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *InMemorySaleRepository) MonthlyTotals(months int) ([]MonthlyTotal, error) {
	since := time.Now().UTC().AddDate(0, -months, 0)
	byMonth := map[string]float64{}
	for _, s := range r.sales {
		if s.SaleDate.Before(since) {
			continue
		}
		byMonth[s.SaleDate.Format("2006-01")] += s.SalePrice * float64(s.Quantity)
	}
	var totals []MonthlyTotal
	for month, revenue := range byMonth {
		totals = append(totals, MonthlyTotal{Month: month, Revenue: revenue})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Month < totals[j].Month })
	return totals, nil
}

func (r *InMemorySaleRepository) Clear() {
	r.sales = nil
	r.nextID = 1
}
