package models

import "time"

// ActivityEntry is one row of the append-only audit trail. Username is
// joined in when reading the feed back.
type ActivityEntry struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	Activity  string    `json:"activity"`
	Timestamp time.Time `json:"timestamp"`
}
