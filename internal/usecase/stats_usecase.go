package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type StatsUsecase struct {
	products repo.ProductRepository
	orders   repo.OrderRepository
}

func NewStatsUsecase(products repo.ProductRepository, orders repo.OrderRepository) *StatsUsecase {
	return &StatsUsecase{products: products, orders: orders}
}

type DashboardStats struct {
	TotalProducts int64   `json:"total_products"`
	TotalOrders   int64   `json:"total_orders"`
	PendingOrders int64   `json:"pending_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
}

func (u *StatsUsecase) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	totalProducts, err := u.products.Count(ctx)
	if err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	totalOrders, err := u.orders.Count(ctx)
	if err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	pendingOrders, err := u.orders.CountByStatus(ctx, model.OrderStatusPending)
	if err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	revenue, err := u.orders.SumTotalPrice(ctx)
	if err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return DashboardStats{
		TotalProducts: totalProducts,
		TotalOrders:   totalOrders,
		PendingOrders: pendingOrders,
		TotalRevenue:  revenue,
	}, nil
}
