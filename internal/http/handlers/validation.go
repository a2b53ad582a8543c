package handlers

import (
	"strings"

	"github.com/rogerio-castellano/garment-inventory/internal/models"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateGarment(g GarmentRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(g.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if strings.TrimSpace(g.Category) == "" {
		errs = append(errs, ValidationError{Field: "Category", Description: "Category is required"})
	}
	if g.Quantity < 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	}
	if g.Price <= 0 {
		errs = append(errs, ValidationError{Field: "Price", Description: "Price must be greater than zero"})
	}
	if g.CostPrice < 0 {
		errs = append(errs, ValidationError{Field: "CostPrice", Description: "Cost price cannot be negative"})
	}
	return errs
}

func validateSupplier(s SupplierRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	return errs
}

func validateOrder(o OrderRequest) []ValidationError {
	errs := []ValidationError{}
	if o.GarmentID <= 0 {
		errs = append(errs, ValidationError{Field: "GarmentID", Description: "Garment is required"})
	}
	if o.Quantity <= 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity must be greater than zero"})
	}
	return errs
}

func validateSale(s SaleRequest) []ValidationError {
	errs := []ValidationError{}
	if s.GarmentID <= 0 {
		errs = append(errs, ValidationError{Field: "GarmentID", Description: "Garment is required"})
	}
	if s.Quantity <= 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity must be greater than zero"})
	}
	if s.SalePrice <= 0 {
		errs = append(errs, ValidationError{Field: "SalePrice", Description: "Sale price must be greater than zero"})
	}
	return errs
}

func validateOrderStatus(status string) []ValidationError {
	if !models.ValidOrderStatus(status) {
		return []ValidationError{{Field: "Status", Description: "Status must be pending, shipped, delivered or cancelled"}}
	}
	return nil
}
