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

func supplierResponse(s models.Supplier) SupplierResponse {
	return SupplierResponse{
		Id:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		Rating:        s.Rating,
		DateAdded:     formatTime(s.DateAdded),
	}
}

// CreateSupplierHandler godoc
// @Summary Create a new supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param supplier body SupplierRequest true "Supplier to add"
// @Success 201 {object} SupplierResponse
// @Failure 400 {array} ValidationError
// @Router /suppliers [post]
func CreateSupplierHandler(w http.ResponseWriter, r *http.Request) {
	var req SupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateSupplier(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	created, err := supplierRepo.Create(models.Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		Rating:        req.Rating,
	})
	if err != nil {
		http.Error(w, "could not create supplier", http.StatusInternalServerError)
		return
	}

	logActivity(mw.GetUserID(r), fmt.Sprintf("Added supplier %s", created.Name))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(supplierResponse(created))
}

// GetSuppliersHandler godoc
// @Summary List all suppliers
// @Tags suppliers
// @Produce json
// @Success 200 {array} SupplierResponse
// @Failure 500 {string} string "Internal error"
// @Router /suppliers [get]
func GetSuppliersHandler(w http.ResponseWriter, r *http.Request) {
	suppliers, err := supplierRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch suppliers", http.StatusInternalServerError)
		return
	}

	response := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		response[i] = supplierResponse(s)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetSupplierByIDHandler godoc
// @Summary Get supplier by ID
// @Tags suppliers
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} SupplierResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /suppliers/{id} [get]
func GetSupplierByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid supplier ID", http.StatusBadRequest)
		return
	}

	supplier, err := supplierRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrSupplierNotFound) {
			http.Error(w, "supplier not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch supplier", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(supplierResponse(supplier))
}

// DeleteSupplierHandler godoc
// @Summary Delete a supplier
// @Description Removal is restricted while any garment still references
// @Description the supplier.
// @Tags suppliers
// @Security BearerAuth
// @Param id path int true "Supplier ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Supplier still referenced"
// @Router /suppliers/{id} [delete]
func DeleteSupplierHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid supplier ID", http.StatusBadRequest)
		return
	}

	if err := supplierRepo.Delete(id); err != nil {
		switch {
		case errors.Is(err, repo.ErrSupplierNotFound):
			http.Error(w, "supplier not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrSupplierInUse):
			http.Error(w, "supplier is still referenced by garments", http.StatusConflict)
		default:
			http.Error(w, "could not delete supplier", http.StatusInternalServerError)
		}
		return
	}

	logActivity(mw.GetUserID(r), fmt.Sprintf("Deleted supplier %d", id))
	w.WriteHeader(http.StatusNoContent)
}
