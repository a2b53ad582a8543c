package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

const (
	monthlySalesWindow   = 6
	recentActivityWindow = 10
)

// GetDashboardHandler godoc
// @Summary Dashboard metrics and chart aggregates
// @Description Returns the headline counts plus the per-category stock
// @Description breakdown, the recent monthly sales trend and the latest
// @Description activity entries. Metrics are served from the Redis cache
// @Description when fresh.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardResponse
// @Failure 500 {string} string "Internal error"
// @Router /dashboard [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	threshold, ok := currentThreshold(w)
	if !ok {
		return
	}

	metrics, cached := redisService.CachedDashboardMetrics()
	if !cached {
		m, err := metricsRepo.GetDashboardMetrics(threshold)
		if err != nil {
			http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
			return
		}
		metrics = m
		redisService.StoreDashboardMetrics(metrics)
	}

	categories, err := garmentRepo.CategoryTotals()
	if err != nil {
		http.Error(w, "failed to fetch category totals", http.StatusInternalServerError)
		return
	}

	monthly, err := saleRepo.MonthlyTotals(monthlySalesWindow)
	if err != nil {
		http.Error(w, "failed to fetch sales trend", http.StatusInternalServerError)
		return
	}

	recent, err := activityRepo.Recent(recentActivityWindow)
	if err != nil {
		http.Error(w, "failed to fetch recent activity", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(DashboardResponse{
		Metrics:        metrics,
		CategoryTotals: categories,
		MonthlySales:   monthly,
		RecentActivity: activityResponses(recent),
	}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
