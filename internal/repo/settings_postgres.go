package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rogerio-castellano/garment-inventory/internal/models"
)

type PostgresSettingsRepository struct {
	db *sql.DB
}

func NewPostgresSettingsRepository(db *sql.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

func (r *PostgresSettingsRepository) Get(name string) (models.Setting, error) {
	query := `SELECT setting_name, setting_value, last_updated FROM settings WHERE setting_name = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var s models.Setting
	err := r.db.QueryRowContext(ctx, query, name).Scan(&s.Name, &s.Value, &s.LastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Setting{}, ErrSettingNotFound
	}
	return s, err
}

func (r *PostgresSettingsRepository) Set(name, value string) error {
	query := `INSERT INTO settings (setting_name, setting_value, last_updated)
		VALUES ($1, $2, $3)
		ON CONFLICT (setting_name) DO UPDATE SET setting_value = $2, last_updated = $3`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, name, value, time.Now().UTC())
	return err
}

func (r *PostgresSettingsRepository) All() ([]models.Setting, error) {
	query := `SELECT setting_name, setting_value, last_updated FROM settings ORDER BY setting_name`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []models.Setting
	for rows.Next() {
		var s models.Setting
		if err := rows.Scan(&s.Name, &s.Value, &s.LastUpdated); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}
