package service

import (
	"context"

	"github.com/karibugroceries/karibu-api/internal/domain/entity"
	"github.com/karibugroceries/karibu-api/internal/domain/repository"
)

// recentSalesLimit is how many of the latest transactions the dashboard shows.
const recentSalesLimit = 5

// DashboardService provides the aggregate figures shown on the dashboard
type DashboardService struct {
	produceRepo         repository.ProduceRepository
	saleRepo            repository.SaleRepository
	creditSaleRepo      repository.CreditSaleRepository
	lowStockThresholdKg float64
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	produceRepo repository.ProduceRepository,
	saleRepo repository.SaleRepository,
	creditSaleRepo repository.CreditSaleRepository,
	lowStockThresholdKg float64,
) *DashboardService {
	return &DashboardService{
		produceRepo:         produceRepo,
		saleRepo:            saleRepo,
		creditSaleRepo:      creditSaleRepo,
		lowStockThresholdKg: lowStockThresholdKg,
	}
}

// DashboardStats represents the aggregate dashboard figures
type DashboardStats struct {
	// TotalStock is the sum of tonnage across all produce lots, in kg
	TotalStock float64 `json:"total_stock"`
	// TotalSales counts completed sales plus credit sales
	TotalSales int `json:"total_sales"`
	// TotalRevenue sums amounts paid on completed sales, in UGX
	TotalRevenue int64 `json:"total_revenue"`
	// PendingCredits sums outstanding amounts on credit sales, in UGX
	PendingCredits int64 `json:"pending_credits"`
	// LowStockItems counts produce lots strictly below the threshold
	LowStockItems int `json:"low_stock_items"`
}

// DashboardData is the dashboard payload: the stats plus recent transactions
type DashboardData struct {
	Stats       DashboardStats `json:"stats"`
	RecentSales []entity.Sale  `json:"recent_sales"`
}

// ComputeStats reduces the collections to dashboard stats. Empty collections
// yield zero-valued stats.
func ComputeStats(produce []entity.Produce, sales []entity.Sale, creditSales []entity.CreditSale, lowStockThresholdKg float64) DashboardStats {
	stats := DashboardStats{
		TotalSales: len(sales) + len(creditSales),
	}
	for _, p := range produce {
		stats.TotalStock += p.TonnageKg
		if p.IsLowStock(lowStockThresholdKg) {
			stats.LowStockItems++
		}
	}
	for _, s := range sales {
		stats.TotalRevenue += s.AmountPaidUgx
	}
	for _, c := range creditSales {
		stats.PendingCredits += c.AmountDueUgx
	}
	return stats
}

// GetDashboard recomputes the dashboard from the current collections on
// every call. The collections never change at runtime, so no caching is
// needed.
func (s *DashboardService) GetDashboard(ctx context.Context) (*DashboardData, error) {
	produce, err := s.produceRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	creditSales, err := s.creditSaleRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.saleRepo.Recent(ctx, recentSalesLimit)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		Stats:       ComputeStats(produce, sales, creditSales, s.lowStockThresholdKg),
		RecentSales: recent,
	}, nil
}
