package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/rogerio-castellano/garment-inventory/internal/auth"
	handler "github.com/rogerio-castellano/garment-inventory/internal/http/handlers"
	rl "github.com/rogerio-castellano/garment-inventory/internal/http/rate_limiter"
	"github.com/rogerio-castellano/garment-inventory/internal/http/router"
	"github.com/rogerio-castellano/garment-inventory/internal/models"
	"github.com/rogerio-castellano/garment-inventory/internal/notify"
	"github.com/rogerio-castellano/garment-inventory/internal/repo"
	"github.com/rogerio-castellano/garment-inventory/internal/settings"
	"golang.org/x/crypto/bcrypt"
)

var (
	adminToken string
	staffToken string

	garmentRepo  *repo.InMemoryGarmentRepository
	supplierRepo *repo.InMemorySupplierRepository
	orderRepo    *repo.InMemoryOrderRepository
	saleRepo     *repo.InMemorySaleRepository
	userRepo     *repo.InMemoryUserRepository
	activityRepo *repo.InMemoryActivityRepository
	settingsRepo *repo.InMemorySettingsRepository

	settingsStore *settings.Store
	feed          *notify.Feed

	testRouter http.Handler
)

func init() {
	setupTestRepos("secret123")
	testRouter = router.NewRouter()

	var err error
	adminToken, err = generateToken(testRouter, "admin", "secret123")
	if err != nil {
		panic(fmt.Sprintf("error generating admin token: %v", err))
	}
	staffToken, err = generateToken(testRouter, "staff", "secret123")
	if err != nil {
		panic(fmt.Sprintf("error generating staff token: %v", err))
	}
}

func setupTestRepos(password string) {
	garmentRepo = repo.NewInMemoryGarmentRepository()
	supplierRepo = repo.NewInMemorySupplierRepository()
	orderRepo = repo.NewInMemoryOrderRepository()
	saleRepo = repo.NewInMemorySaleRepository()
	userRepo = repo.NewInMemoryUserRepository()
	activityRepo = repo.NewInMemoryActivityRepository()
	settingsRepo = repo.NewInMemorySettingsRepository()

	garmentRepo.SetSupplierResolver(supplierRepo)
	supplierRepo.SetGarmentRepository(garmentRepo)
	orderRepo.SetGarmentRepository(garmentRepo)
	saleRepo.SetRepositories(garmentRepo, userRepo)
	activityRepo.SetUserRepository(userRepo)

	metricsRepo := repo.NewInMemoryMetricsRepository()
	metricsRepo.SetRepositories(garmentRepo, orderRepo, saleRepo)

	handler.SetGarmentRepo(garmentRepo)
	handler.SetSupplierRepo(supplierRepo)
	handler.SetOrderRepo(orderRepo)
	handler.SetSaleRepo(saleRepo)
	handler.SetUserRepo(userRepo)
	handler.SetActivityRepo(activityRepo)
	handler.SetMetricsRepo(metricsRepo)

	handler.SetAuthService(auth.NewService(userRepo, activityRepo))
	handler.SetRedisService(nil)

	settingsStore = settings.NewStore(settingsRepo)
	if err := settingsStore.Load(); err != nil {
		panic(fmt.Sprintf("error loading settings: %v", err))
	}
	handler.SetSettingsStore(settingsStore)

	feed = notify.NewFeed()
	handler.SetNotificationFeed(feed)

	seedUsers(password)
}

// seedUsers recreates the two fixed accounts. Their IDs stay stable
// because Clear resets the ID counter, so issued tokens remain valid.
func seedUsers(password string) {
	userRepo.Clear()
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	})
	userRepo.CreateUser(models.User{
		Username:     "staff",
		PasswordHash: string(hash),
		Role:         models.RoleStaff,
	})
}

// resetInventory drops all data except the seeded users and puts the
// threshold back at its default.
func resetInventory() {
	garmentRepo.Clear()
	supplierRepo.Clear()
	orderRepo.Clear()
	saleRepo.Clear()
	activityRepo.Clear()
	feed.Clear()
	seedUsers("secret123")
	settingsStore.SetThreshold(10)
}

func doRequest(r http.Handler, method, path string, payload any, token string) *httptest.ResponseRecorder {
	// the auth endpoints are throttled; keep tests out of the limiter
	rl.CleanupAllVisitors()

	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRawRequest(r http.Handler, method, path, rawBody, token string) *httptest.ResponseRecorder {
	rl.CleanupAllVisitors()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(rawBody)))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	w := doRequest(r, http.MethodPost, "/login", payload, "")

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func createGarment(r http.Handler, g handler.GarmentRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/garments", g, adminToken)
}

func adjustGarment(r http.Handler, garmentID int, adj handler.QuantityAdjustmentRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, fmt.Sprintf("/garments/%d/adjust", garmentID), adj, adminToken)
}

func createSupplier(r http.Handler, s handler.SupplierRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/suppliers", s, adminToken)
}

func createOrder(r http.Handler, o handler.OrderRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/orders", o, adminToken)
}

func createSale(r http.Handler, s handler.SaleRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/sales", s, adminToken)
}

func setThreshold(r http.Handler, n int) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPut, "/settings", handler.SettingsUpdateRequest{InventoryThreshold: &n}, adminToken)
}

func mustCreateGarment(r http.Handler, g handler.GarmentRequest) handler.GarmentResponse {
	w := createGarment(r, g)
	var resp handler.GarmentResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		panic(fmt.Sprintf("garment decoding failed: %v", err))
	}
	return resp
}
