package handlers

import (
	"github.com/rogerio-castellano/garment-inventory/internal/auth"
	"github.com/rogerio-castellano/garment-inventory/internal/notify"
	"github.com/rogerio-castellano/garment-inventory/internal/redissvc"
	repo "github.com/rogerio-castellano/garment-inventory/internal/repo"
	"github.com/rogerio-castellano/garment-inventory/internal/settings"
)

var (
	garmentRepo  repo.GarmentRepository
	supplierRepo repo.SupplierRepository
	orderRepo    repo.OrderRepository
	saleRepo     repo.SaleRepository
	userRepo     repo.UserRepository
	activityRepo repo.ActivityRepository
	metricsRepo  repo.MetricsRepository

	authService   *auth.Service
	settingsStore *settings.Store
	feed          *notify.Feed
	redisService  *redissvc.RedisService
)

func SetGarmentRepo(r repo.GarmentRepository) {
	garmentRepo = r
}

func SetSupplierRepo(r repo.SupplierRepository) {
	supplierRepo = r
}

func SetOrderRepo(r repo.OrderRepository) {
	orderRepo = r
}

func SetSaleRepo(r repo.SaleRepository) {
	saleRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetActivityRepo(r repo.ActivityRepository) {
	activityRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetAuthService(s *auth.Service) {
	authService = s
}

func SetSettingsStore(s *settings.Store) {
	settingsStore = s
}

func SetNotificationFeed(f *notify.Feed) {
	feed = f
}

func SetRedisService(rs *redissvc.RedisService) {
	redisService = rs
}
