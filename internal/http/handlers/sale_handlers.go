package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	mw "github.com/rogerio-castellano/garment-inventory/internal/http/middleware"
	models "github.com/rogerio-castellano/garment-inventory/internal/models"
	"github.com/rogerio-castellano/garment-inventory/internal/notify"
	repo "github.com/rogerio-castellano/garment-inventory/internal/repo"
)

func saleResponse(s models.Sale) SaleResponse {
	return SaleResponse{
		Id:          s.ID,
		GarmentID:   s.GarmentID,
		GarmentName: s.GarmentName,
		UserID:      s.UserID,
		Username:    s.Username,
		Quantity:    s.Quantity,
		SalePrice:   s.SalePrice,
		Profit:      s.Profit,
		SaleDate:    formatTime(s.SaleDate),
	}
}

// CreateSaleHandler godoc
// @Summary Record a completed sale
// @Description Decrements the garment's stock and stores the sale with
// @Description its profit, computed from the garment's cost price at
// @Description the moment of sale. A sale larger than the available
// @Description stock is rejected whole.
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sale body SaleRequest true "Sale to record"
// @Success 201 {object} SaleResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Garment not found"
// @Failure 422 {string} string "Insufficient stock"
// @Router /sales [post]
func CreateSaleHandler(w http.ResponseWriter, r *http.Request) {
	threshold, ok := currentThreshold(w)
	if !ok {
		return
	}

	var req SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateSale(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	garment, err := garmentRepo.GetByID(req.GarmentID)
	if err != nil {
		if errors.Is(err, repo.ErrGarmentNotFound) {
			http.Error(w, "garment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch garment", http.StatusInternalServerError)
		return
	}

	adjusted, err := garmentRepo.AdjustQuantity(req.GarmentID, -req.Quantity)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidQuantityChange) {
			http.Error(w, "insufficient stock", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "could not adjust stock", http.StatusInternalServerError)
		return
	}

	userID := mw.GetUserID(r)
	sale := models.Sale{
		GarmentID: req.GarmentID,
		Quantity:  req.Quantity,
		SalePrice: req.SalePrice,
		Profit:    (req.SalePrice - garment.CostPrice) * float64(req.Quantity),
		UserID:    userID,
	}
	created, err := saleRepo.Create(sale)
	if err != nil {
		// put the stock back; the sale row was never written
		garmentRepo.AdjustQuantity(req.GarmentID, req.Quantity)
		http.Error(w, "could not record sale", http.StatusInternalServerError)
		return
	}

	logActivity(userID, fmt.Sprintf("Sold %d x %s", created.Quantity, garment.Name))
	redisService.InvalidateDashboardMetrics()

	if adjusted.Quantity < threshold {
		feed.Add(fmt.Sprintf("Low stock: %s has %d left (threshold %d)", adjusted.Name, adjusted.Quantity, threshold), notify.SeverityWarning)
	}

	created.GarmentName = garment.Name
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(saleResponse(created))
}

// GetSalesHandler godoc
// @Summary List all sales, newest first
// @Tags sales
// @Produce json
// @Success 200 {array} SaleResponse
// @Failure 500 {string} string "Internal error"
// @Router /sales [get]
func GetSalesHandler(w http.ResponseWriter, r *http.Request) {
	sales, err := saleRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch sales", http.StatusInternalServerError)
		return
	}

	response := make([]SaleResponse, len(sales))
	for i, s := range sales {
		response[i] = saleResponse(s)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
