package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	models "github.com/rogerio-castellano/garment-inventory/internal/models"
)

const defaultActivityLimit = 50

func activityResponses(entries []models.ActivityEntry) []ActivityResponse {
	response := make([]ActivityResponse, len(entries))
	for i, e := range entries {
		response[i] = ActivityResponse{
			Id:        e.ID,
			UserID:    e.UserID,
			Username:  e.Username,
			Activity:  e.Activity,
			Timestamp: formatTime(e.Timestamp),
		}
	}
	return response
}

// GetActivityHandler godoc
// @Summary Recent activity log entries, newest first
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum entries to return"
// @Success 200 {array} ActivityResponse
// @Failure 500 {string} string "Internal error"
// @Router /activity [get]
func GetActivityHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultActivityLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	entries, err := activityRepo.Recent(limit)
	if err != nil {
		http.Error(w, "could not fetch activity log", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(activityResponses(entries))
}
