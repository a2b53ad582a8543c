package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/garment-inventory/internal/models"
)

type PostgresGarmentRepository struct {
	db *sql.DB
}

func NewPostgresGarmentRepository(db *sql.DB) *PostgresGarmentRepository {
	return &PostgresGarmentRepository{db: db}
}

func (r *PostgresGarmentRepository) Create(g models.Garment) (models.Garment, error) {
	query := `INSERT INTO garments (garment_name, category, size, color, quantity, price, cost_price, supplier_id, date_added, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	now := time.Now().UTC()
	g.DateAdded = now
	g.LastUpdated = now
	err := r.db.QueryRowContext(ctx, query,
		g.Name, g.Category, g.Size, g.Color, g.Quantity, g.Price, g.CostPrice, g.SupplierID, g.DateAdded, g.LastUpdated).
		Scan(&g.ID)
	if isForeignKeyViolation(err) {
		return models.Garment{}, ErrSupplierNotFound
	}
	return g, err
}

func (r *PostgresGarmentRepository) GetAll(filter GarmentFilter) ([]models.Garment, error) {
	query := `SELECT g.id, g.garment_name, g.category, g.size, g.color, g.quantity,
			g.price, g.cost_price, g.supplier_id, COALESCE(s.supplier_name, ''), g.date_added, g.last_updated
		FROM garments g
		LEFT JOIN suppliers s ON g.supplier_id = s.id
		WHERE 1=1`

	args := []any{}
	argIdx := 1
	if filter.Name != "" {
		query += fmt.Sprintf(" AND g.garment_name ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Name+"%")
		argIdx++
	}
	if filter.Category != "" {
		query += fmt.Sprintf(" AND g.category = $%d", argIdx)
		args = append(args, filter.Category)
		argIdx++
	}
	if filter.Size != "" {
		query += fmt.Sprintf(" AND g.size = $%d", argIdx)
		args = append(args, filter.Size)
		argIdx++
	}
	query += " ORDER BY g.id"

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var garments []models.Garment
	for rows.Next() {
		g, err := scanGarment(rows)
		if err != nil {
			return nil, err
		}
		garments = append(garments, g)
	}
	return garments, rows.Err()
}

func (r *PostgresGarmentRepository) GetByID(id int) (models.Garment, error) {
	query := `SELECT g.id, g.garment_name, g.category, g.size, g.color, g.quantity,
			g.price, g.cost_price, g.supplier_id, COALESCE(s.supplier_name, ''), g.date_added, g.last_updated
		FROM garments g
		LEFT JOIN suppliers s ON g.supplier_id = s.id
		WHERE g.id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	g, err := scanGarment(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Garment{}, ErrGarmentNotFound
	}
	return g, err
}

func (r *PostgresGarmentRepository) Update(g models.Garment) (models.Garment, error) {
	query := `UPDATE garments
		SET garment_name = $1, category = $2, size = $3, color = $4, quantity = $5,
			price = $6, cost_price = $7, supplier_id = $8, last_updated = $9
		WHERE id = $10`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	g.LastUpdated = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query,
		g.Name, g.Category, g.Size, g.Color, g.Quantity, g.Price, g.CostPrice, g.SupplierID, g.LastUpdated, g.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Garment{}, ErrSupplierNotFound
		}
		return models.Garment{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Garment{}, ErrGarmentNotFound
	}
	return g, nil
}

func (r *PostgresGarmentRepository) Delete(id int) error {
	query := `DELETE FROM garments WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrGarmentNotFound
	}
	return nil
}

// AdjustQuantity applies a stock delta but never lets the quantity drop
// below zero.
func (r *PostgresGarmentRepository) AdjustQuantity(id, delta int) (models.Garment, error) {
	query := `UPDATE garments
		SET quantity = quantity + $1, last_updated = $2
		WHERE id = $3 AND quantity + $1 >= 0
		RETURNING id, garment_name, category, size, color, quantity, price, cost_price, supplier_id, date_added, last_updated`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var g models.Garment
	err := r.db.QueryRowContext(ctx, query, delta, time.Now().UTC(), id).
		Scan(&g.ID, &g.Name, &g.Category, &g.Size, &g.Color, &g.Quantity,
			&g.Price, &g.CostPrice, &g.SupplierID, &g.DateAdded, &g.LastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		// no row matched: either the garment is missing or the delta
		// would push the quantity negative
		if _, getErr := r.GetByID(id); errors.Is(getErr, ErrGarmentNotFound) {
			return models.Garment{}, ErrGarmentNotFound
		}
		return models.Garment{}, ErrInvalidQuantityChange
	}
	return g, err
}

func (r *PostgresGarmentRepository) CategoryTotals() ([]CategoryTotal, error) {
	query := `SELECT category, SUM(quantity) FROM garments GROUP BY category ORDER BY category`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []CategoryTotal
	for rows.Next() {
		var t CategoryTotal
		if err := rows.Scan(&t.Category, &t.Quantity); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGarment(row rowScanner) (models.Garment, error) {
	var g models.Garment
	err := row.Scan(&g.ID, &g.Name, &g.Category, &g.Size, &g.Color, &g.Quantity,
		&g.Price, &g.CostPrice, &g.SupplierID, &g.SupplierName, &g.DateAdded, &g.LastUpdated)
	return g, err
}
