package repo

// InMemoryMetricsRepository computes the dashboard aggregates from the
// in-memory repositories it is pointed at.
type InMemoryMetricsRepository struct {
	garments *InMemoryGarmentRepository
	orders   *InMemoryOrderRepository
	sales    *InMemorySaleRepository
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (r *InMemoryMetricsRepository) SetRepositories(g *InMemoryGarmentRepository, o *InMemoryOrderRepository, s *InMemorySaleRepository) {
	r.garments = g
	r.orders = o
	r.sales = s
}

func (r *InMemoryMetricsRepository) GetDashboardMetrics(threshold int) (Metrics, error) {
	var m Metrics
	if r.garments != nil {
		for _, g := range r.garments.garments {
			m.TotalGarments++
			m.TotalInventoryValue += float64(g.Quantity) * g.Price
			if g.Quantity < threshold {
				m.LowStockCount++
			}
		}
	}
	if r.orders != nil {
		m.TotalOrders = len(r.orders.orders)
	}
	if r.sales != nil {
		for _, s := range r.sales.sales {
			m.TotalSalesRevenue += s.SalePrice * float64(s.Quantity)
		}
	}
	return m, nil
}
