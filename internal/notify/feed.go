package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/rogerio-castellano/garment-inventory/internal/repo"
)

const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
)

// Notification is an in-process alert. Notifications are not persisted
// and do not survive a restart.
type Notification struct {
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

// Feed is an append-only list of notifications shared by the handlers.
// Repeated low-stock checks append repeated alerts; the feed does no
// deduplication.
type Feed struct {
	mu    sync.Mutex
	items []Notification
}

func NewFeed() *Feed {
	return &Feed{}
}

func (f *Feed) Add(message, severity string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, Notification{
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	})
}

// All returns a copy of the feed, oldest first.
func (f *Feed) All() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notification, len(f.items))
	copy(out, f.items)
	return out
}

// Clear empties the feed. Used by tests.
func (f *Feed) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = nil
}

// CheckLowInventory appends one warning per garment whose quantity is
// strictly below the threshold and returns how many alerts were raised.
func (f *Feed) CheckLowInventory(garments repo.GarmentRepository, threshold int) (int, error) {
	all, err := garments.GetAll(repo.GarmentFilter{})
	if err != nil {
		return 0, err
	}

	count := 0
	for _, g := range all {
		if g.Quantity < threshold {
			f.Add(fmt.Sprintf("Low stock: %s has %d left (threshold %d)", g.Name, g.Quantity, threshold), SeverityWarning)
			count++
		}
	}
	return count, nil
}
