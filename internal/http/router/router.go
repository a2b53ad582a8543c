package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/garment-inventory/internal/http/handlers"
	mw "github.com/rogerio-castellano/garment-inventory/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	// auth endpoints are public but throttled
	r.Group(func(r chi.Router) {
		r.Use(mw.RateLimitMiddleware)
		r.Post("/register", handlers.RegisterHandler)
		r.Post("/login", handlers.LoginHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// read endpoints, any authenticated user
	r.Group(func(r chi.Router) {
		r.Use(mw.AuthMiddleware)

		r.Post("/logout", handlers.LogoutHandler)

		r.Get("/garments", handlers.GetGarmentsHandler)
		r.Get("/garments/{id}", handlers.GetGarmentByIDHandler)
		r.Post("/garments/{id}/adjust", handlers.AdjustGarmentQuantityHandler)

		r.Get("/suppliers", handlers.GetSuppliersHandler)
		r.Get("/suppliers/{id}", handlers.GetSupplierByIDHandler)

		r.Get("/orders", handlers.GetOrdersHandler)
		r.Post("/orders", handlers.CreateOrderHandler)
		r.Put("/orders/{id}/status", handlers.UpdateOrderStatusHandler)

		r.Get("/sales", handlers.GetSalesHandler)
		r.Post("/sales", handlers.CreateSaleHandler)

		r.Get("/dashboard", handlers.GetDashboardHandler)

		r.Get("/notifications", handlers.GetNotificationsHandler)
		r.Post("/notifications/check", handlers.CheckLowInventoryHandler)
	})

	// mutations reserved for admins
	r.Group(func(r chi.Router) {
		r.Use(mw.AuthMiddleware, mw.RequireAdmin)

		r.Post("/garments", handlers.CreateGarmentHandler)
		r.Put("/garments/{id}", handlers.UpdateGarmentHandler)
		r.Delete("/garments/{id}", handlers.DeleteGarmentHandler)

		r.Post("/suppliers", handlers.CreateSupplierHandler)
		r.Delete("/suppliers/{id}", handlers.DeleteSupplierHandler)

		r.Get("/settings", handlers.GetSettingsHandler)
		r.Put("/settings", handlers.UpdateSettingsHandler)
		r.Get("/users", handlers.GetUsersHandler)
		r.Get("/activity", handlers.GetActivityHandler)
	})

	return r
}
