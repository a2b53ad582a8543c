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
	repo "github.com/rogerio-castellano/garment-inventory/internal/repo"
)

func orderResponse(o models.Order) OrderResponse {
	return OrderResponse{
		Id:              o.ID,
		GarmentID:       o.GarmentID,
		GarmentName:     o.GarmentName,
		Quantity:        o.Quantity,
		OrderDate:       formatTime(o.OrderDate),
		Status:          o.Status,
		CustomerName:    o.CustomerName,
		CustomerContact: o.CustomerContact,
	}
}

// CreateOrderHandler godoc
// @Summary Place a customer order
// @Description New orders start in the pending state. Placing an order
// @Description does not move stock; stock moves when a sale is recorded.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body OrderRequest true "Order to place"
// @Success 201 {object} OrderResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Garment not found"
// @Router /orders [post]
func CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateOrder(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	created, err := orderRepo.Create(models.Order{
		GarmentID:       req.GarmentID,
		Quantity:        req.Quantity,
		Status:          models.OrderPending,
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
	})
	if err != nil {
		if errors.Is(err, repo.ErrGarmentNotFound) {
			http.Error(w, "garment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not create order", http.StatusInternalServerError)
		return
	}

	logActivity(mw.GetUserID(r), fmt.Sprintf("Placed order %d for garment %d", created.ID, created.GarmentID))
	redisService.InvalidateDashboardMetrics()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(orderResponse(created))
}

// GetOrdersHandler godoc
// @Summary List all orders, newest first
// @Tags orders
// @Produce json
// @Success 200 {array} OrderResponse
// @Failure 500 {string} string "Internal error"
// @Router /orders [get]
func GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := orderRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderResponse(o)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// UpdateOrderStatusHandler godoc
// @Summary Update an order's status
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param status body OrderStatusRequest true "New status"
// @Success 204 "Updated"
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Not found"
// @Router /orders/{id}/status [put]
func UpdateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid order ID", http.StatusBadRequest)
		return
	}

	var req OrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateOrderStatus(req.Status)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	if err := orderRepo.UpdateStatus(id, req.Status); err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update order", http.StatusInternalServerError)
		return
	}

	logActivity(mw.GetUserID(r), fmt.Sprintf("Order %d marked %s", id, req.Status))
	w.WriteHeader(http.StatusNoContent)
}
