package repo

// Metrics feeds the dashboard cards: product and order counts, total
// stock value, low-stock count against the current threshold, and total
// sale revenue.
type Metrics struct {
	TotalGarments       int     `json:"total_garments"`
	TotalInventoryValue float64 `json:"total_inventory_value"`
	LowStockCount       int     `json:"low_stock_count"`
	TotalOrders         int     `json:"total_orders"`
	TotalSalesRevenue   float64 `json:"total_sales_revenue"`
}

type MetricsRepository interface {
	GetDashboardMetrics(threshold int) (Metrics, error)
}
