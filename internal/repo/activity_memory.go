package repo

import (
	"time"

	"github.com/rogerio-castellano/garment-inventory/internal/models"
)

type InMemoryActivityRepository struct {
	entries []models.ActivityEntry
	nextID  int
	users   *InMemoryUserRepository
}

func NewInMemoryActivityRepository() *InMemoryActivityRepository {
	return &InMemoryActivityRepository{nextID: 1}
}

func (r *InMemoryActivityRepository) SetUserRepository(u *InMemoryUserRepository) {
	r.users = u
}

func (r *InMemoryActivityRepository) Record(userID int, activity string) error {
	r.entries = append(r.entries, models.ActivityEntry{
		ID:        r.nextID,
		UserID:    userID,
		Activity:  activity,
		Timestamp: time.Now().UTC(),
	})
	r.nextID++
	return nil
}

func (r *InMemoryActivityRepository) Recent(limit int) ([]models.ActivityEntry, error) {
	var out []models.ActivityEntry
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		e := r.entries[i]
		if r.users != nil {
			if u, err := r.users.GetByID(e.UserID); err == nil {
				e.Username = u.Username
			}
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *InMemoryActivityRepository) Clear() {
	r.entries = nil
	r.nextID = 1
}
