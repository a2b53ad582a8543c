package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	mw "github.com/rogerio-castellano/garment-inventory/internal/http/middleware"
	models "github.com/rogerio-castellano/garment-inventory/internal/models"
	"github.com/rogerio-castellano/garment-inventory/internal/notify"
	repo "github.com/rogerio-castellano/garment-inventory/internal/repo"
)

func garmentResponse(g models.Garment, threshold int) GarmentResponse {
	return GarmentResponse{
		Id:           g.ID,
		Name:         g.Name,
		Category:     g.Category,
		Size:         g.Size,
		Color:        g.Color,
		Quantity:     g.Quantity,
		Price:        g.Price,
		CostPrice:    g.CostPrice,
		SupplierID:   g.SupplierID,
		SupplierName: g.SupplierName,
		DateAdded:    formatTime(g.DateAdded),
		LastUpdated:  formatTime(g.LastUpdated),
		LowStock:     g.Quantity < threshold,
	}
}

// CreateGarmentHandler godoc
// @Summary Create a new garment
// @Description Adds a garment to the inventory
// @Tags garments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param garment body GarmentRequest true "Garment to add"
// @Success 201 {object} GarmentResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Supplier not found"
// @Router /garments [post]
func CreateGarmentHandler(w http.ResponseWriter, r *http.Request) {
	threshold, ok := currentThreshold(w)
	if !ok {
		return
	}

	var req GarmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateGarment(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	garment := models.Garment{
		Name:       req.Name,
		Category:   req.Category,
		Size:       req.Size,
		Color:      req.Color,
		Quantity:   req.Quantity,
		Price:      req.Price,
		CostPrice:  req.CostPrice,
		SupplierID: req.SupplierID,
	}
	created, err := garmentRepo.Create(garment)
	if err != nil {
		if errors.Is(err, repo.ErrSupplierNotFound) {
			http.Error(w, "supplier not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not create garment", http.StatusInternalServerError)
		return
	}

	logActivity(mw.GetUserID(r), fmt.Sprintf("Added garment %s", created.Name))
	redisService.InvalidateDashboardMetrics()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(garmentResponse(created, threshold))
}

// GetGarmentsHandler godoc
// @Summary List garments, optionally filtered
// @Tags garments
// @Produce json
// @Param name query string false "Filter by name substring"
// @Param category query string false "Filter by category"
// @Param size query string false "Filter by size"
// @Success 200 {array} GarmentResponse
// @Failure 500 {string} string "Internal error"
// @Router /garments [get]
func GetGarmentsHandler(w http.ResponseWriter, r *http.Request) {
	threshold, ok := currentThreshold(w)
	if !ok {
		return
	}

	q := r.URL.Query()
	filter := repo.GarmentFilter{
		Name:     q.Get("name"),
		Category: q.Get("category"),
		Size:     q.Get("size"),
	}

	garments, err := garmentRepo.GetAll(filter)
	if err != nil {
		http.Error(w, "could not fetch garments", http.StatusInternalServerError)
		return
	}

	response := make([]GarmentResponse, len(garments))
	for i, g := range garments {
		response[i] = garmentResponse(g, threshold)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetGarmentByIDHandler godoc
// @Summary Get garment by ID
// @Tags garments
// @Produce json
// @Param id path int true "Garment ID"
// @Success 200 {object} GarmentResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /garments/{id} [get]
func GetGarmentByIDHandler(w http.ResponseWriter, r *http.Request) {
	threshold, ok := currentThreshold(w)
	if !ok {
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid garment ID", http.StatusBadRequest)
		return
	}

	garment, err := garmentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrGarmentNotFound) {
			http.Error(w, "garment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch garment", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(garmentResponse(garment, threshold))
}

// UpdateGarmentHandler godoc
// @Summary Update a garment
// @Tags garments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Garment ID"
// @Param garment body GarmentRequest true "Updated garment"
// @Success 200 {object} GarmentResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Not found"
// @Router /garments/{id} [put]
func UpdateGarmentHandler(w http.ResponseWriter, r *http.Request) {
	threshold, ok := currentThreshold(w)
	if !ok {
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid garment ID", http.StatusBadRequest)
		return
	}

	var req GarmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateGarment(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	garment := models.Garment{
		ID:         id,
		Name:       req.Name,
		Category:   req.Category,
		Size:       req.Size,
		Color:      req.Color,
		Quantity:   req.Quantity,
		Price:      req.Price,
		CostPrice:  req.CostPrice,
		SupplierID: req.SupplierID,
	}
	updated, err := garmentRepo.Update(garment)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrGarmentNotFound):
			http.Error(w, "garment not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrSupplierNotFound):
			http.Error(w, "supplier not found", http.StatusNotFound)
		default:
			http.Error(w, "could not update garment", http.StatusInternalServerError)
		}
		return
	}

	logActivity(mw.GetUserID(r), fmt.Sprintf("Updated garment %s", updated.Name))
	redisService.InvalidateDashboardMetrics()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(garmentResponse(updated, threshold))
}

// DeleteGarmentHandler godoc
// @Summary Delete a garment
// @Tags garments
// @Security BearerAuth
// @Param id path int true "Garment ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /garments/{id} [delete]
func DeleteGarmentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid garment ID", http.StatusBadRequest)
		return
	}

	if err := garmentRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrGarmentNotFound) {
			http.Error(w, "garment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete garment", http.StatusInternalServerError)
		return
	}

	logActivity(mw.GetUserID(r), fmt.Sprintf("Deleted garment %d", id))
	redisService.InvalidateDashboardMetrics()
	w.WriteHeader(http.StatusNoContent)
}

// AdjustGarmentQuantityHandler godoc
// @Summary Adjust garment stock by a delta
// @Description Applies a positive or negative stock adjustment. The
// @Description quantity never goes below zero; an oversized negative
// @Description delta is rejected whole.
// @Tags garments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Garment ID"
// @Param adjustment body QuantityAdjustmentRequest true "Delta to apply"
// @Success 200 {object} GarmentResponse
// @Failure 400 {string} string "Invalid adjustment"
// @Failure 404 {string} string "Not found"
// @Failure 422 {string} string "Would drop below zero"
// @Router /garments/{id}/adjust [post]
func AdjustGarmentQuantityHandler(w http.ResponseWriter, r *http.Request) {
	threshold, ok := currentThreshold(w)
	if !ok {
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid garment ID", http.StatusBadRequest)
		return
	}

	var req QuantityAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if req.Delta == 0 {
		http.Error(w, "delta must be non-zero", http.StatusBadRequest)
		return
	}

	adjusted, err := garmentRepo.AdjustQuantity(id, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrGarmentNotFound):
			http.Error(w, "garment not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrInvalidQuantityChange):
			http.Error(w, "adjustment would drop quantity below zero", http.StatusUnprocessableEntity)
		default:
			http.Error(w, "could not adjust quantity", http.StatusInternalServerError)
		}
		return
	}

	logActivity(mw.GetUserID(r), fmt.Sprintf("Adjusted stock of %s by %+d", adjusted.Name, req.Delta))
	redisService.InvalidateDashboardMetrics()

	if adjusted.Quantity < threshold {
		feed.Add(fmt.Sprintf("Low stock: %s has %d left (threshold %d)", adjusted.Name, adjusted.Quantity, threshold), notify.SeverityWarning)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(garmentResponse(adjusted, threshold))
}
