package repo

import (
	"context"
	"database/sql"
	"time"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics(threshold int) (Metrics, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var m Metrics

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM garments`).Scan(&m.TotalGarments); err != nil {
		return Metrics{}, err
	}
	if err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(quantity * price), 0) FROM garments`).Scan(&m.TotalInventoryValue); err != nil {
		return Metrics{}, err
	}
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM garments WHERE quantity < $1`, threshold).Scan(&m.LowStockCount); err != nil {
		return Metrics{}, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&m.TotalOrders); err != nil {
		return Metrics{}, err
	}
	if err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(sale_price * quantity), 0) FROM sales`).Scan(&m.TotalSalesRevenue); err != nil {
		return Metrics{}, err
	}

	return m, nil
}
