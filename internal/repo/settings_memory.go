package repo

import (
	"sort"
	"time"

	"github.com/rogerio-castellano/garment-inventory/internal/models"
)

type InMemorySettingsRepository struct {
	values map[string]models.Setting
}

func NewInMemorySettingsRepository() *InMemorySettingsRepository {
	return &InMemorySettingsRepository{values: map[string]models.Setting{}}
}

func (r *InMemorySettingsRepository) Get(name string) (models.Setting, error) {
	s, ok := r.values[name]
	if !ok {
		return models.Setting{}, ErrSettingNotFound
	}
	return s, nil
}

func (r *InMemorySettingsRepository) Set(name, value string) error {
	r.values[name] = models.Setting{Name: name, Value: value, LastUpdated: time.Now().UTC()}
	return nil
}

func (r *InMemorySettingsRepository) All() ([]models.Setting, error) {
	var settings []models.Setting
	for _, s := range r.values {
		settings = append(settings, s)
	}
	sort.Slice(settings, func(i, j int) bool { return settings[i].Name < settings[j].Name })
	return settings, nil
}

func (r *InMemorySettingsRepository) Clear() {
	r.values = map[string]models.Setting{}
}
