package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	mw "github.com/rogerio-castellano/garment-inventory/internal/http/middleware"
	"github.com/rogerio-castellano/garment-inventory/internal/settings"
)

// GetSettingsHandler godoc
// @Summary Read the current settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SettingsResponse
// @Router /settings [get]
func GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	if err := settingsStore.Load(); err != nil {
		http.Error(w, "could not load settings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SettingsResponse{
		InventoryThreshold: settingsStore.Threshold(),
		CompanyName:        settingsStore.CompanyName(),
	})
}

// UpdateSettingsHandler godoc
// @Summary Update settings
// @Description Changing the threshold affects low-stock evaluation from
// @Description the next read on; stored rows are untouched.
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body SettingsUpdateRequest true "Fields to change"
// @Success 200 {object} SettingsResponse
// @Failure 400 {string} string "Invalid value"
// @Router /settings [put]
func UpdateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var req SettingsUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if req.InventoryThreshold == nil && req.CompanyName == nil {
		http.Error(w, "no settings to change", http.StatusBadRequest)
		return
	}

	if req.InventoryThreshold != nil {
		if err := settingsStore.SetThreshold(*req.InventoryThreshold); err != nil {
			if errors.Is(err, settings.ErrInvalidThreshold) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "could not update threshold", http.StatusInternalServerError)
			return
		}
		logActivity(mw.GetUserID(r), fmt.Sprintf("Set inventory threshold to %d", *req.InventoryThreshold))
		redisService.InvalidateDashboardMetrics()
	}

	if req.CompanyName != nil {
		if err := settingsStore.SetCompanyName(*req.CompanyName); err != nil {
			http.Error(w, "could not update company name", http.StatusInternalServerError)
			return
		}
		logActivity(mw.GetUserID(r), fmt.Sprintf("Set company name to %s", *req.CompanyName))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SettingsResponse{
		InventoryThreshold: settingsStore.Threshold(),
		CompanyName:        settingsStore.CompanyName(),
	})
}
