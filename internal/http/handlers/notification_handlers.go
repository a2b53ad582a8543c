package handlers

import (
	"encoding/json"
	"net/http"
)

// GetNotificationsHandler godoc
// @Summary In-process notification feed, oldest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} notify.Notification
// @Router /notifications [get]
func GetNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(feed.All())
}

// CheckLowInventoryHandler godoc
// @Summary Scan stock and raise low-stock alerts
// @Description Appends one warning per garment currently below the
// @Description threshold. Repeated checks raise repeated alerts.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} NotificationCheckResult
// @Failure 500 {string} string "Internal error"
// @Router /notifications/check [post]
func CheckLowInventoryHandler(w http.ResponseWriter, r *http.Request) {
	threshold, ok := currentThreshold(w)
	if !ok {
		return
	}

	raised, err := feed.CheckLowInventory(garmentRepo, threshold)
	if err != nil {
		http.Error(w, "could not scan inventory", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(NotificationCheckResult{Raised: raised})
}
