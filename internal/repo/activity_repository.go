package repo

import "github.com/rogerio-castellano/garment-inventory/internal/models"

// ActivityRepository is the append-only audit trail. Entries are never
// updated or deleted; Recent reads them back newest first with the
// username joined in.
type ActivityRepository interface {
	Record(userID int, activity string) error
	Recent(limit int) ([]models.ActivityEntry, error)
}
