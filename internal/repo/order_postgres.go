package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/rogerio-castellano/garment-inventory/internal/models"
)

type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func (r *PostgresOrderRepository) Create(o models.Order) (models.Order, error) {
	query := `INSERT INTO orders (garment_id, quantity, order_date, status, customer_name, customer_contact)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	o.OrderDate = time.Now().UTC()
	err := r.db.QueryRowContext(ctx, query,
		o.GarmentID, o.Quantity, o.OrderDate, o.Status, o.CustomerName, o.CustomerContact).
		Scan(&o.ID)
	if isForeignKeyViolation(err) {
		return models.Order{}, ErrGarmentNotFound
	}
	return o, err
}

func (r *PostgresOrderRepository) GetAll() ([]models.Order, error) {
	query := `SELECT o.id, o.garment_id, g.garment_name, o.quantity, o.order_date, o.status, o.customer_name, o.customer_contact
		FROM orders o
		JOIN garments g ON o.garment_id = g.id
		ORDER BY o.order_date DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.GarmentID, &o.GarmentName, &o.Quantity, &o.OrderDate, &o.Status, &o.CustomerName, &o.CustomerContact); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresOrderRepository) UpdateStatus(id int, status string) error {
	query := `UPDATE orders SET status = $1 WHERE id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
