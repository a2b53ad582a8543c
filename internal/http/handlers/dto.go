package handlers

import "github.com/rogerio-castellano/garment-inventory/internal/repo"

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type GarmentRequest struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Size       string  `json:"size"`
	Color      string  `json:"color"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	CostPrice  float64 `json:"cost_price"`
	SupplierID *int    `json:"supplier_id,omitempty"`
}

type GarmentResponse struct {
	Id           int     `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Size         string  `json:"size"`
	Color        string  `json:"color"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	CostPrice    float64 `json:"cost_price"`
	SupplierID   *int    `json:"supplier_id,omitempty"`
	SupplierName string  `json:"supplier_name,omitempty"`
	DateAdded    string  `json:"date_added,omitempty"`
	LastUpdated  string  `json:"last_updated,omitempty"`
	LowStock     bool    `json:"low_stock"`
}

type QuantityAdjustmentRequest struct {
	Delta int `json:"delta"` // can be positive or negative
}

type SupplierRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Rating        int    `json:"rating"`
}

type SupplierResponse struct {
	Id            int    `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Rating        int    `json:"rating"`
	DateAdded     string `json:"date_added,omitempty"`
}

type OrderRequest struct {
	GarmentID       int    `json:"garment_id"`
	Quantity        int    `json:"quantity"`
	CustomerName    string `json:"customer_name"`
	CustomerContact string `json:"customer_contact"`
}

type OrderResponse struct {
	Id              int    `json:"id"`
	GarmentID       int    `json:"garment_id"`
	GarmentName     string `json:"garment_name,omitempty"`
	Quantity        int    `json:"quantity"`
	OrderDate       string `json:"order_date"`
	Status          string `json:"status"`
	CustomerName    string `json:"customer_name,omitempty"`
	CustomerContact string `json:"customer_contact,omitempty"`
}

type OrderStatusRequest struct {
	Status string `json:"status"`
}

type SaleRequest struct {
	GarmentID int     `json:"garment_id"`
	Quantity  int     `json:"quantity"`
	SalePrice float64 `json:"sale_price"`
}

type SaleResponse struct {
	Id          int     `json:"id"`
	GarmentID   int     `json:"garment_id"`
	GarmentName string  `json:"garment_name,omitempty"`
	UserID      int     `json:"user_id"`
	Username    string  `json:"username,omitempty"`
	Quantity    int     `json:"quantity"`
	SalePrice   float64 `json:"sale_price"`
	Profit      float64 `json:"profit"`
	SaleDate    string  `json:"sale_date"`
}

type UserResponse struct {
	Id        int    `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Email     string `json:"email,omitempty"`
	LastLogin string `json:"last_login,omitempty"`
}

type SettingsResponse struct {
	InventoryThreshold int    `json:"inventory_threshold"`
	CompanyName        string `json:"company_name"`
}

type SettingsUpdateRequest struct {
	InventoryThreshold *int    `json:"inventory_threshold,omitempty"`
	CompanyName        *string `json:"company_name,omitempty"`
}

type ActivityResponse struct {
	Id        int    `json:"id"`
	UserID    int    `json:"user_id"`
	Username  string `json:"username,omitempty"`
	Activity  string `json:"activity"`
	Timestamp string `json:"timestamp"`
}

type NotificationCheckResult struct {
	Raised int `json:"raised"`
}

type DashboardResponse struct {
	Metrics        repo.Metrics         `json:"metrics"`
	CategoryTotals []repo.CategoryTotal `json:"category_totals"`
	MonthlySales   []repo.MonthlyTotal  `json:"monthly_sales"`
	RecentActivity []ActivityResponse   `json:"recent_activity"`
}
