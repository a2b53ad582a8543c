package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/garment-inventory/internal/http/handlers"
)

func TestRegisterThenLogin(t *testing.T) {
	t.Cleanup(resetInventory)

	w := doRequest(testRouter, http.MethodPost, "/register", handler.RegisterRequest{
		Username: "alice",
		Password: "password1",
		Role:     "staff",
		Email:    "alice@example.com",
	}, "")

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var reg handler.RegisterResult
	if err := json.NewDecoder(w.Body).Decode(&reg); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if reg.Token == "" {
		t.Error("expected a token in the register response")
	}

	w = doRequest(testRouter, http.MethodPost, "/login", handler.CredentialsRequest{
		Username: "alice",
		Password: "password1",
	}, "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var login handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&login); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if login.Token == "" {
		t.Error("expected a token in the login response")
	}
	if login.Role != "staff" {
		t.Errorf("expected role staff, got %q", login.Role)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Cleanup(resetInventory)

	payload := handler.RegisterRequest{Username: "alice", Password: "password1", Role: "staff"}

	w := doRequest(testRouter, http.MethodPost, "/register", payload, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	w = doRequest(testRouter, http.MethodPost, "/register", payload, "")
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict, got %d", w.Code)
	}

	// the original account still works
	w = doRequest(testRouter, http.MethodPost, "/login", handler.CredentialsRequest{
		Username: "alice",
		Password: "password1",
	}, "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 OK after duplicate attempt, got %d", w.Code)
	}
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	t.Cleanup(resetInventory)

	tests := []struct {
		name    string
		payload handler.RegisterRequest
	}{
		{"missing credentials", handler.RegisterRequest{Username: "", Password: ""}},
		{"short username", handler.RegisterRequest{Username: "ab", Password: "password1"}},
		{"short password", handler.RegisterRequest{Username: "bob", Password: "12345"}},
		{"unknown role", handler.RegisterRequest{Username: "bob", Password: "password1", Role: "owner"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(testRouter, http.MethodPost, "/register", tt.payload, "")
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400 Bad Request, got %d", w.Code)
			}
		})
	}
}

func TestLoginWrongPasswordLeavesLastLoginUntouched(t *testing.T) {
	t.Cleanup(resetInventory)

	before, err := userRepo.GetByUsername("staff")
	if err != nil {
		t.Fatalf("error fetching user: %v", err)
	}

	w := doRequest(testRouter, http.MethodPost, "/login", handler.CredentialsRequest{
		Username: "staff",
		Password: "not-the-password",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 Unauthorized, got %d", w.Code)
	}

	after, err := userRepo.GetByUsername("staff")
	if err != nil {
		t.Fatalf("error fetching user: %v", err)
	}
	if !after.LastLogin.Equal(before.LastLogin) {
		t.Error("failed login must not touch last_login")
	}
}

func TestLoginUnknownUser(t *testing.T) {
	w := doRequest(testRouter, http.MethodPost, "/login", handler.CredentialsRequest{
		Username: "ghost",
		Password: "password1",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestLoginRecordsActivity(t *testing.T) {
	t.Cleanup(resetInventory)

	w := doRequest(testRouter, http.MethodPost, "/login", handler.CredentialsRequest{
		Username: "staff",
		Password: "secret123",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	w = doRequest(testRouter, http.MethodGet, "/activity", nil, adminToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var entries []handler.ActivityResponse
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	found := false
	for _, e := range entries {
		if e.Activity == "User logged in" && e.Username == "staff" {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected a 'User logged in' entry for staff in the activity log")
	}
}

func TestLogout(t *testing.T) {
	w := doRequest(testRouter, http.MethodPost, "/logout", nil, staffToken)
	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 No Content, got %d", w.Code)
	}
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	w := doRequest(testRouter, http.MethodGet, "/garments", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestAdminRouteWithStaffToken(t *testing.T) {
	t.Cleanup(resetInventory)

	w := doRequest(testRouter, http.MethodPost, "/garments", handler.GarmentRequest{
		Name: "Shirt", Category: "Tops", Quantity: 1, Price: 10,
	}, staffToken)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 Forbidden, got %d", w.Code)
	}
}
