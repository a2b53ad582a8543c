package repo

import "github.com/rogerio-castellano/garment-inventory/internal/models"

// SettingsRepository is the persistent side of the key/value settings
// store. Set upserts; readers that cache values reload explicitly.
type SettingsRepository interface {
	Get(name string) (models.Setting, error)
	Set(name, value string) error
	All() ([]models.Setting, error)
}
