package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	_ "github.com/rogerio-castellano/garment-inventory/docs"
)

func TestSwaggerDocServed(t *testing.T) {
	w := doRequest(testRouter, http.MethodGet, "/swagger/doc.json", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var doc struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	if err := json.NewDecoder(w.Body).Decode(&doc); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if doc.Swagger != "2.0" {
		t.Errorf("expected swagger version 2.0, got %q", doc.Swagger)
	}
	if _, ok := doc.Paths["/garments"]; !ok {
		t.Error("expected the garments path to be documented")
	}
}
