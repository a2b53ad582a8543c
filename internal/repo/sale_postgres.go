package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/rogerio-castellano/garment-inventory/internal/models"
)

type PostgresSaleRepository struct {
	db *sql.DB
}

func NewPostgresSaleRepository(db *sql.DB) *PostgresSaleRepository {
	return &PostgresSaleRepository{db: db}
}

func (r *PostgresSaleRepository) Create(s models.Sale) (models.Sale, error) {
	query := `INSERT INTO sales (garment_id, quantity, sale_price, sale_date, profit, user_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	s.SaleDate = time.Now().UTC()
	err := r.db.QueryRowContext(ctx, query,
		s.GarmentID, s.Quantity, s.SalePrice, s.SaleDate, s.Profit, s.UserID).
		Scan(&s.ID)
	if isForeignKeyViolation(err) {
		return models.Sale{}, ErrGarmentNotFound
	}
	return s, err
}

func (r *PostgresSaleRepository) GetAll() ([]models.Sale, error) {
	query := `SELECT s.id, s.garment_id, g.garment_name, s.quantity, s.sale_price, s.sale_date, s.profit, s.user_id, u.username
		FROM sales s
		JOIN garments g ON s.garment_id = g.id
		JOIN users u ON s.user_id = u.id
		ORDER BY s.sale_date DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []models.Sale
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.ID, &s.GarmentID, &s.GarmentName, &s.Quantity, &s.SalePrice, &s.SaleDate, &s.Profit, &s.UserID, &s.Username); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *PostgresSaleRepository) MonthlyTotals(months int) ([]MonthlyTotal, error) {
	query := `SELECT to_char(sale_date, 'YYYY-MM') AS month, COALESCE(SUM(sale_price * quantity), 0)
		FROM sales
		WHERE sale_date >= $1
		GROUP BY month
		ORDER BY month`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	since := time.Now().UTC().AddDate(0, -months, 0)
	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []MonthlyTotal
	for rows.Next() {
		var t MonthlyTotal
		if err := rows.Scan(&t.Month, &t.Revenue); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
