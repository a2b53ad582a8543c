package handlers

import (
	"net/http"
	"time"
)

// currentThreshold reloads the settings cache from storage and returns
// the fresh threshold. Another session may have changed it since the
// last request, so every handler that depends on it refreshes first.
func currentThreshold(w http.ResponseWriter) (int, bool) {
	if err := settingsStore.Load(); err != nil {
		http.Error(w, "could not load settings", http.StatusInternalServerError)
		return 0, false
	}
	return settingsStore.Threshold(), true
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// logActivity records the entry best effort; a failed audit write never
// fails the request that caused it.
func logActivity(userID int, activity string) {
	if activityRepo == nil || userID == 0 {
		return
	}
	_ = activityRepo.Record(userID, activity)
}
