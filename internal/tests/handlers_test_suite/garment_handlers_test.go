package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	handler "github.com/rogerio-castellano/garment-inventory/internal/http/handlers"
)

func TestCreateGarmentHandler_Valid(t *testing.T) {
	t.Cleanup(resetInventory)

	w := createGarment(testRouter, handler.GarmentRequest{
		Name:     "Denim Jacket",
		Category: "Outerwear",
		Size:     "M",
		Color:    "Blue",
		Quantity: 25,
		Price:    89.90,
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.GarmentResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.Name != "Denim Jacket" {
		t.Errorf("expected name 'Denim Jacket', got %v", resp.Name)
	}
	if resp.Quantity != 25 {
		t.Errorf("expected quantity 25, got %v", resp.Quantity)
	}
	if resp.LowStock {
		t.Error("25 units against the default threshold must not be low stock")
	}
}

func TestCreateGarmentHandler_Invalid(t *testing.T) {
	t.Cleanup(resetInventory)

	tests := []struct {
		name           string
		payload        handler.GarmentRequest
		expectedErrors []string
	}{
		{
			name:           "Empty name and category",
			payload:        handler.GarmentRequest{Name: "", Category: "", Price: 10},
			expectedErrors: []string{"Name", "Category"},
		},
		{
			name:           "Zero price",
			payload:        handler.GarmentRequest{Name: "Tee", Category: "Tops", Price: 0},
			expectedErrors: []string{"Price"},
		},
		{
			name:           "Negative quantity",
			payload:        handler.GarmentRequest{Name: "Tee", Category: "Tops", Price: 10, Quantity: -1},
			expectedErrors: []string{"Quantity"},
		},
		{
			name:           "Negative cost price",
			payload:        handler.GarmentRequest{Name: "Tee", Category: "Tops", Price: 10, CostPrice: -2},
			expectedErrors: []string{"CostPrice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createGarment(testRouter, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var resp []handler.ValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateGarmentHandler_NonNumericPrice(t *testing.T) {
	t.Cleanup(resetInventory)

	body := `{"name":"Tee","category":"Tops","quantity":5,"price":"abc"}`
	w := doRawRequest(testRouter, http.MethodPost, "/garments", body, adminToken)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request for non-numeric price, got %d", w.Code)
	}
}

func TestGetGarmentsFiltered(t *testing.T) {
	t.Cleanup(resetInventory)

	mustCreateGarment(testRouter, handler.GarmentRequest{Name: "Linen Shirt", Category: "Tops", Size: "M", Quantity: 5, Price: 30})
	mustCreateGarment(testRouter, handler.GarmentRequest{Name: "Linen Pants", Category: "Bottoms", Size: "M", Quantity: 5, Price: 40})
	mustCreateGarment(testRouter, handler.GarmentRequest{Name: "Wool Coat", Category: "Outerwear", Size: "L", Quantity: 5, Price: 120})

	w := doRequest(testRouter, http.MethodGet, "/garments?name=linen", nil, staffToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp []handler.GarmentResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 2 {
		t.Errorf("expected 2 garments matching 'linen', got %d", len(resp))
	}

	w = doRequest(testRouter, http.MethodGet, "/garments?category=Outerwear", nil, staffToken)
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 1 || resp[0].Name != "Wool Coat" {
		t.Errorf("expected only the Wool Coat in Outerwear, got %v", resp)
	}
}

func TestGetGarmentByIDHandler_NotFound(t *testing.T) {
	w := doRequest(testRouter, http.MethodGet, "/garments/9999", nil, staffToken)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestUpdateGarmentHandler(t *testing.T) {
	t.Cleanup(resetInventory)

	created := mustCreateGarment(testRouter, handler.GarmentRequest{Name: "Tee", Category: "Tops", Quantity: 8, Price: 15})

	w := doRequest(testRouter, http.MethodPut, fmt.Sprintf("/garments/%d", created.Id), handler.GarmentRequest{
		Name: "Tee V2", Category: "Tops", Quantity: 12, Price: 18,
	}, adminToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.GarmentResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Name != "Tee V2" || resp.Quantity != 12 {
		t.Errorf("update not applied, got %+v", resp)
	}
	if resp.LowStock {
		t.Error("12 units against the default threshold must not be low stock")
	}
}

func TestDeleteGarmentHandler(t *testing.T) {
	t.Cleanup(resetInventory)

	created := mustCreateGarment(testRouter, handler.GarmentRequest{Name: "Tee", Category: "Tops", Quantity: 8, Price: 15})

	w := doRequest(testRouter, http.MethodDelete, fmt.Sprintf("/garments/%d", created.Id), nil, adminToken)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	w = doRequest(testRouter, http.MethodGet, fmt.Sprintf("/garments/%d", created.Id), nil, adminToken)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestAdjustQuantityHandler(t *testing.T) {
	t.Cleanup(resetInventory)

	created := mustCreateGarment(testRouter, handler.GarmentRequest{Name: "Tee", Category: "Tops", Quantity: 10, Price: 15})

	w := adjustGarment(testRouter, created.Id, handler.QuantityAdjustmentRequest{Delta: -4})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.GarmentResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Quantity != 6 {
		t.Errorf("expected quantity 6 after adjustment, got %d", resp.Quantity)
	}
	if !resp.LowStock {
		t.Error("6 units against the default threshold must be low stock")
	}

	// dropping below the threshold raises a feed alert
	found := false
	for _, n := range feed.All() {
		if strings.Contains(n.Message, "Tee") {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected a low-stock notification for Tee")
	}
}

func TestAdjustQuantityHandler_BelowZeroRejectedWhole(t *testing.T) {
	t.Cleanup(resetInventory)

	created := mustCreateGarment(testRouter, handler.GarmentRequest{Name: "Tee", Category: "Tops", Quantity: 3, Price: 15})

	w := adjustGarment(testRouter, created.Id, handler.QuantityAdjustmentRequest{Delta: -5})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 Unprocessable Entity, got %d", w.Code)
	}

	// quantity must be untouched, not clamped
	w = doRequest(testRouter, http.MethodGet, fmt.Sprintf("/garments/%d", created.Id), nil, adminToken)
	var resp handler.GarmentResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Quantity != 3 {
		t.Errorf("expected quantity 3 after rejected adjustment, got %d", resp.Quantity)
	}
}

func TestAdjustQuantityHandler_ZeroDelta(t *testing.T) {
	t.Cleanup(resetInventory)

	created := mustCreateGarment(testRouter, handler.GarmentRequest{Name: "Tee", Category: "Tops", Quantity: 3, Price: 15})

	w := adjustGarment(testRouter, created.Id, handler.QuantityAdjustmentRequest{Delta: 0})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request for zero delta, got %d", w.Code)
	}
}

func TestGarmentCarriesSupplierName(t *testing.T) {
	t.Cleanup(resetInventory)

	w := createSupplier(testRouter, handler.SupplierRequest{Name: "Acme Textiles"})
	var supplier handler.SupplierResponse
	if err := json.NewDecoder(w.Body).Decode(&supplier); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	created := mustCreateGarment(testRouter, handler.GarmentRequest{
		Name: "Tee", Category: "Tops", Quantity: 20, Price: 15, SupplierID: &supplier.Id,
	})

	w = doRequest(testRouter, http.MethodGet, fmt.Sprintf("/garments/%d", created.Id), nil, staffToken)
	var resp handler.GarmentResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.SupplierName != "Acme Textiles" {
		t.Errorf("expected supplier name 'Acme Textiles', got %q", resp.SupplierName)
	}
}
