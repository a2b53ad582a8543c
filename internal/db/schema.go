package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"
)

// DefaultInventoryThreshold seeds the inventory_threshold setting on
// first run.
const DefaultInventoryThreshold = 10

// DefaultCompanyName seeds the company_name setting on first run.
const DefaultCompanyName = "Garment Inventory System"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(10) NOT NULL CHECK (role IN ('admin', 'staff')),
		email VARCHAR(255),
		last_login TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		profile_pic BYTEA
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id SERIAL PRIMARY KEY,
		supplier_name VARCHAR(255) NOT NULL,
		contact_person VARCHAR(255),
		phone VARCHAR(20),
		email VARCHAR(255),
		address TEXT,
		rating INT DEFAULT 0,
		date_added TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS garments (
		id SERIAL PRIMARY KEY,
		garment_name VARCHAR(255) NOT NULL,
		category VARCHAR(100) NOT NULL,
		size VARCHAR(10) NOT NULL,
		color VARCHAR(50) NOT NULL,
		quantity INT NOT NULL,
		price FLOAT NOT NULL,
		cost_price FLOAT NOT NULL,
		supplier_id INT REFERENCES suppliers(id),
		date_added TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		last_updated TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		garment_id INT REFERENCES garments(id),
		quantity INT NOT NULL,
		order_date TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		status VARCHAR(10) DEFAULT 'pending'
			CHECK (status IN ('pending', 'shipped', 'delivered', 'cancelled')),
		customer_name VARCHAR(255),
		customer_contact VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id SERIAL PRIMARY KEY,
		garment_id INT REFERENCES garments(id),
		quantity INT NOT NULL,
		sale_price FLOAT NOT NULL,
		sale_date TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		profit FLOAT,
		user_id INT REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS activity_log (
		id SERIAL PRIMARY KEY,
		user_id INT REFERENCES users(id),
		activity TEXT NOT NULL,
		timestamp TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id SERIAL PRIMARY KEY,
		setting_name VARCHAR(255) UNIQUE NOT NULL,
		setting_value VARCHAR(255) NOT NULL,
		last_updated TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
}

// EnsureSchema creates every table if absent and seeds the two default
// settings rows. Safe to call on every startup; a seed row that already
// exists is left untouched.
func EnsureSchema(conn *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, stmt := range schemaStatements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	seed := `INSERT INTO settings (setting_name, setting_value) VALUES ($1, $2)
		ON CONFLICT (setting_name) DO NOTHING`
	defaults := map[string]string{
		"inventory_threshold": strconv.Itoa(DefaultInventoryThreshold),
		"company_name":        DefaultCompanyName,
	}
	for name, value := range defaults {
		if _, err := conn.ExecContext(ctx, seed, name, value); err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", name, err)
		}
	}

	return nil
}
