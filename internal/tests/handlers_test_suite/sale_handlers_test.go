package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/garment-inventory/internal/http/handlers"
)

func TestCreateSaleHandler(t *testing.T) {
	t.Cleanup(resetInventory)

	garment := mustCreateGarment(testRouter, handler.GarmentRequest{
		Name: "Tee", Category: "Tops", Quantity: 10, Price: 20, CostPrice: 8,
	})

	w := createSale(testRouter, handler.SaleRequest{
		GarmentID: garment.Id,
		Quantity:  3,
		SalePrice: 20,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var sale handler.SaleResponse
	if err := json.NewDecoder(w.Body).Decode(&sale); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	// profit = (sale price - cost price) * quantity
	if sale.Profit != 36 {
		t.Errorf("expected profit 36, got %v", sale.Profit)
	}
	if sale.GarmentName != "Tee" {
		t.Errorf("expected garment name 'Tee', got %q", sale.GarmentName)
	}

	// stock is decremented by the sold quantity
	w = doRequest(testRouter, http.MethodGet, fmt.Sprintf("/garments/%d", garment.Id), nil, adminToken)
	var g handler.GarmentResponse
	if err := json.NewDecoder(w.Body).Decode(&g); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if g.Quantity != 7 {
		t.Errorf("expected quantity 7 after sale, got %d", g.Quantity)
	}
}

func TestCreateSaleHandler_InsufficientStock(t *testing.T) {
	t.Cleanup(resetInventory)

	garment := mustCreateGarment(testRouter, handler.GarmentRequest{
		Name: "Tee", Category: "Tops", Quantity: 2, Price: 20,
	})

	w := createSale(testRouter, handler.SaleRequest{
		GarmentID: garment.Id,
		Quantity:  5,
		SalePrice: 20,
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 Unprocessable Entity, got %d", w.Code)
	}

	// the rejected sale must leave stock untouched
	w = doRequest(testRouter, http.MethodGet, fmt.Sprintf("/garments/%d", garment.Id), nil, adminToken)
	var g handler.GarmentResponse
	if err := json.NewDecoder(w.Body).Decode(&g); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if g.Quantity != 2 {
		t.Errorf("expected quantity 2 after rejected sale, got %d", g.Quantity)
	}

	// and no sale row is written
	w = doRequest(testRouter, http.MethodGet, "/sales", nil, adminToken)
	var sales []handler.SaleResponse
	if err := json.NewDecoder(w.Body).Decode(&sales); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(sales) != 0 {
		t.Errorf("expected no sales, got %d", len(sales))
	}
}

func TestCreateSaleHandler_UnknownGarment(t *testing.T) {
	t.Cleanup(resetInventory)

	w := createSale(testRouter, handler.SaleRequest{GarmentID: 9999, Quantity: 1, SalePrice: 20})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestCreateSaleHandler_Invalid(t *testing.T) {
	t.Cleanup(resetInventory)

	w := createSale(testRouter, handler.SaleRequest{GarmentID: 0, Quantity: 0, SalePrice: 0})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestSaleRecordsSeller(t *testing.T) {
	t.Cleanup(resetInventory)

	garment := mustCreateGarment(testRouter, handler.GarmentRequest{
		Name: "Tee", Category: "Tops", Quantity: 10, Price: 20,
	})

	w := doRequest(testRouter, http.MethodPost, "/sales", handler.SaleRequest{
		GarmentID: garment.Id, Quantity: 1, SalePrice: 20,
	}, staffToken)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	w = doRequest(testRouter, http.MethodGet, "/sales", nil, staffToken)
	var sales []handler.SaleResponse
	if err := json.NewDecoder(w.Body).Decode(&sales); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(sales) != 1 || sales[0].Username != "staff" {
		t.Errorf("expected the sale to carry the seller's username, got %+v", sales)
	}
}

func TestSaleBelowThresholdRaisesAlert(t *testing.T) {
	t.Cleanup(resetInventory)

	garment := mustCreateGarment(testRouter, handler.GarmentRequest{
		Name: "Tee", Category: "Tops", Quantity: 11, Price: 20,
	})

	w := createSale(testRouter, handler.SaleRequest{GarmentID: garment.Id, Quantity: 2, SalePrice: 20})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	if len(feed.All()) == 0 {
		t.Error("expected a low-stock notification after the sale dropped stock below the threshold")
	}
}
