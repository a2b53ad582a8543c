package settings

import (
	"errors"
	"strconv"
	"sync"

	"github.com/rogerio-castellano/garment-inventory/internal/db"
	"github.com/rogerio-castellano/garment-inventory/internal/models"
	"github.com/rogerio-castellano/garment-inventory/internal/repo"
)

// ErrInvalidThreshold is returned when the stored or submitted threshold
// is not a non-negative integer.
var ErrInvalidThreshold = errors.New("threshold must be a non-negative integer")

// Store holds the last loaded settings rows. Handlers that depend on a
// setting call Load first, so a row written by another process is seen
// on the next request. Writes go through to the repository first and
// update the cache only on success.
type Store struct {
	mu          sync.RWMutex
	settings    repo.SettingsRepository
	threshold   int
	companyName string
}

func NewStore(settings repo.SettingsRepository) *Store {
	return &Store{
		settings:    settings,
		threshold:   db.DefaultInventoryThreshold,
		companyName: db.DefaultCompanyName,
	}
}

// Load reads the settings rows into the cache. Missing rows keep their
// defaults; a non-numeric threshold row is rejected rather than guessed.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	threshold, err := s.settings.Get(models.SettingInventoryThreshold)
	switch {
	case errors.Is(err, repo.ErrSettingNotFound):
		// keep default
	case err != nil:
		return err
	default:
		n, convErr := strconv.Atoi(threshold.Value)
		if convErr != nil || n < 0 {
			return ErrInvalidThreshold
		}
		s.threshold = n
	}

	name, err := s.settings.Get(models.SettingCompanyName)
	switch {
	case errors.Is(err, repo.ErrSettingNotFound):
		// keep default
	case err != nil:
		return err
	default:
		s.companyName = name.Value
	}

	return nil
}

func (s *Store) Threshold() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.threshold
}

func (s *Store) CompanyName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.companyName
}

// SetThreshold persists the new threshold and refreshes the cache. The
// change takes effect on the next low-stock evaluation; stored garment
// rows are not touched.
func (s *Store) SetThreshold(n int) error {
	if n < 0 {
		return ErrInvalidThreshold
	}
	if err := s.settings.Set(models.SettingInventoryThreshold, strconv.Itoa(n)); err != nil {
		return err
	}
	s.mu.Lock()
	s.threshold = n
	s.mu.Unlock()
	return nil
}

func (s *Store) SetCompanyName(name string) error {
	if err := s.settings.Set(models.SettingCompanyName, name); err != nil {
		return err
	}
	s.mu.Lock()
	s.companyName = name
	s.mu.Unlock()
	return nil
}
