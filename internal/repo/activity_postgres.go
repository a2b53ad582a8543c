package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/garment-inventory/internal/models"
)

type PostgresActivityRepository struct {
	db *sql.DB
}

func NewPostgresActivityRepository(db *sql.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

func (r *PostgresActivityRepository) Record(userID int, activity string) error {
	query := `INSERT INTO activity_log (user_id, activity) VALUES ($1, $2)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, query, userID, activity); err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

func (r *PostgresActivityRepository) Recent(limit int) ([]models.ActivityEntry, error) {
	query := `SELECT a.id, a.user_id, u.username, a.activity, a.timestamp
		FROM activity_log a
		JOIN users u ON a.user_id = u.id
		ORDER BY a.timestamp DESC
		LIMIT $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ActivityEntry
	for rows.Next() {
		var e models.ActivityEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Username, &e.Activity, &e.Timestamp); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
