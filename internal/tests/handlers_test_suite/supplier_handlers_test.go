package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/garment-inventory/internal/http/handlers"
)

func TestCreateSupplierHandler(t *testing.T) {
	t.Cleanup(resetInventory)

	w := createSupplier(testRouter, handler.SupplierRequest{
		Name:          "Acme Textiles",
		ContactPerson: "Jo Martin",
		Phone:         "555-0101",
		Email:         "jo@acme.example",
		Address:       "1 Mill Road",
		Rating:        4,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.SupplierResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Name != "Acme Textiles" || resp.Rating != 4 {
		t.Errorf("unexpected supplier response: %+v", resp)
	}
}

func TestCreateSupplierHandler_MissingName(t *testing.T) {
	t.Cleanup(resetInventory)

	w := createSupplier(testRouter, handler.SupplierRequest{Name: "  "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestDeleteSupplierRestrictedWhileReferenced(t *testing.T) {
	t.Cleanup(resetInventory)

	w := createSupplier(testRouter, handler.SupplierRequest{Name: "Acme Textiles"})
	var supplier handler.SupplierResponse
	if err := json.NewDecoder(w.Body).Decode(&supplier); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	garment := mustCreateGarment(testRouter, handler.GarmentRequest{
		Name: "Tee", Category: "Tops", Quantity: 5, Price: 10, SupplierID: &supplier.Id,
	})

	w = doRequest(testRouter, http.MethodDelete, fmt.Sprintf("/suppliers/%d", supplier.Id), nil, adminToken)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict while referenced, got %d", w.Code)
	}

	// once the garment is gone the supplier can be removed
	w = doRequest(testRouter, http.MethodDelete, fmt.Sprintf("/garments/%d", garment.Id), nil, adminToken)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 deleting garment, got %d", w.Code)
	}

	w = doRequest(testRouter, http.MethodDelete, fmt.Sprintf("/suppliers/%d", supplier.Id), nil, adminToken)
	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 No Content, got %d", w.Code)
	}
}

func TestDeleteSupplierNotFound(t *testing.T) {
	w := doRequest(testRouter, http.MethodDelete, "/suppliers/9999", nil, adminToken)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestGetSuppliersHandler(t *testing.T) {
	t.Cleanup(resetInventory)

	createSupplier(testRouter, handler.SupplierRequest{Name: "Acme Textiles"})
	createSupplier(testRouter, handler.SupplierRequest{Name: "Weave & Co"})

	w := doRequest(testRouter, http.MethodGet, "/suppliers", nil, staffToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp []handler.SupplierResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 2 {
		t.Errorf("expected 2 suppliers, got %d", len(resp))
	}
}
