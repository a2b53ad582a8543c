package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/garment-inventory/internal/http/handlers"
)

func getDashboard(t *testing.T) handler.DashboardResponse {
	t.Helper()
	w := doRequest(testRouter, http.MethodGet, "/dashboard", nil, adminToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.DashboardResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return resp
}

func TestDashboardEmptyInventory(t *testing.T) {
	t.Cleanup(resetInventory)
	resetInventory()

	resp := getDashboard(t)
	if resp.Metrics.TotalGarments != 0 {
		t.Errorf("expected 0 garments, got %d", resp.Metrics.TotalGarments)
	}
	if resp.Metrics.TotalInventoryValue != 0 {
		t.Errorf("expected inventory value 0, got %v", resp.Metrics.TotalInventoryValue)
	}
}

func TestDashboardInventoryValue(t *testing.T) {
	t.Cleanup(resetInventory)
	resetInventory()

	// 2 x 10.00 + 3 x 5.00 = 35.00
	mustCreateGarment(testRouter, handler.GarmentRequest{Name: "Tee", Category: "Tops", Quantity: 2, Price: 10})
	mustCreateGarment(testRouter, handler.GarmentRequest{Name: "Sock", Category: "Accessories", Quantity: 3, Price: 5})

	resp := getDashboard(t)
	if resp.Metrics.TotalGarments != 2 {
		t.Errorf("expected 2 garments, got %d", resp.Metrics.TotalGarments)
	}
	if resp.Metrics.TotalInventoryValue != 35 {
		t.Errorf("expected inventory value 35, got %v", resp.Metrics.TotalInventoryValue)
	}
}

func TestDashboardLowStockCountMatchesFlags(t *testing.T) {
	t.Cleanup(resetInventory)
	resetInventory()

	mustCreateGarment(testRouter, handler.GarmentRequest{Name: "Tee", Category: "Tops", Quantity: 3, Price: 10})
	mustCreateGarment(testRouter, handler.GarmentRequest{Name: "Coat", Category: "Outerwear", Quantity: 50, Price: 120})
	mustCreateGarment(testRouter, handler.GarmentRequest{Name: "Sock", Category: "Accessories", Quantity: 9, Price: 5})

	w := doRequest(testRouter, http.MethodGet, "/garments", nil, adminToken)
	var garments []handler.GarmentResponse
	if err := json.NewDecoder(w.Body).Decode(&garments); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	flagged := 0
	for _, g := range garments {
		if g.LowStock {
			flagged++
		}
	}

	resp := getDashboard(t)
	if resp.Metrics.LowStockCount != flagged {
		t.Errorf("low stock count %d disagrees with %d flagged garments", resp.Metrics.LowStockCount, flagged)
	}
	if flagged != 2 {
		t.Errorf("expected 2 flagged garments at the default threshold, got %d", flagged)
	}
}

func TestDashboardAggregates(t *testing.T) {
	t.Cleanup(resetInventory)
	resetInventory()

	tee := mustCreateGarment(testRouter, handler.GarmentRequest{Name: "Tee", Category: "Tops", Quantity: 20, Price: 20, CostPrice: 8})
	mustCreateGarment(testRouter, handler.GarmentRequest{Name: "Polo", Category: "Tops", Quantity: 15, Price: 30})
	mustCreateGarment(testRouter, handler.GarmentRequest{Name: "Coat", Category: "Outerwear", Quantity: 5, Price: 120})

	createOrder(testRouter, handler.OrderRequest{GarmentID: tee.Id, Quantity: 2})
	createSale(testRouter, handler.SaleRequest{GarmentID: tee.Id, Quantity: 2, SalePrice: 20})

	resp := getDashboard(t)
	if resp.Metrics.TotalOrders != 1 {
		t.Errorf("expected 1 order, got %d", resp.Metrics.TotalOrders)
	}
	if resp.Metrics.TotalSalesRevenue != 40 {
		t.Errorf("expected revenue 40, got %v", resp.Metrics.TotalSalesRevenue)
	}

	// category totals reflect current stock: Tops 20-2+15, Outerwear 5
	totals := map[string]int{}
	for _, c := range resp.CategoryTotals {
		totals[c.Category] = c.Quantity
	}
	if totals["Tops"] != 33 {
		t.Errorf("expected Tops total 33, got %d", totals["Tops"])
	}
	if totals["Outerwear"] != 5 {
		t.Errorf("expected Outerwear total 5, got %d", totals["Outerwear"])
	}

	if len(resp.MonthlySales) == 0 {
		t.Error("expected at least one monthly sales bucket")
	}
}

func TestDashboardCarriesRecentActivity(t *testing.T) {
	t.Cleanup(resetInventory)
	resetInventory()

	tee := mustCreateGarment(testRouter, handler.GarmentRequest{Name: "Tee", Category: "Tops", Quantity: 20, Price: 20, CostPrice: 8})
	createSale(testRouter, handler.SaleRequest{GarmentID: tee.Id, Quantity: 2, SalePrice: 20})

	resp := getDashboard(t)
	if len(resp.RecentActivity) != 2 {
		t.Fatalf("expected 2 recent activity entries, got %d", len(resp.RecentActivity))
	}
	// newest first, same order as the activity log
	if resp.RecentActivity[0].Activity != "Sold 2 x Tee" {
		t.Errorf("expected the sale entry first, got %q", resp.RecentActivity[0].Activity)
	}
	if resp.RecentActivity[1].Activity != "Added garment Tee" {
		t.Errorf("expected the creation entry second, got %q", resp.RecentActivity[1].Activity)
	}
	if resp.RecentActivity[0].Username == "" {
		t.Error("expected the acting username to be resolved")
	}
}
