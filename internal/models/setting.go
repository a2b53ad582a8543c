package models

import "time"

// Well-known setting keys seeded at bootstrap.
const (
	SettingInventoryThreshold = "inventory_threshold"
	SettingCompanyName        = "company_name"
)

type Setting struct {
	Name        string    `json:"setting_name"`
	Value       string    `json:"setting_value"`
	LastUpdated time.Time `json:"last_updated"`
}
