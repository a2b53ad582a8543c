package repo

import "github.com/rogerio-castellano/garment-inventory/internal/models"

// MonthlyTotal aggregates sale revenue per calendar month, feeding the
// sales trend chart.
type MonthlyTotal struct {
	Month   string  `json:"month"` // YYYY-MM
	Revenue float64 `json:"revenue"`
}

// SaleRepository records completed sales. Rows are append-only; Create
// stores the precomputed profit alongside the sale.
type SaleRepository interface {
	Create(s models.Sale) (models.Sale, error)
	GetAll() ([]models.Sale, error)
	MonthlyTotals(months int) ([]MonthlyTotal, error)
}
