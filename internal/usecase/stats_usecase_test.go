package usecase_test

import (
	"context"
	"errors"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStatsUsecase_GetDashboardStats(t *testing.T) {
	pRepo := new(ProductRepoMock)
	oRepo := new(OrderRepoMock)
	uc := usecase.NewStatsUsecase(pRepo, oRepo)

	pRepo.On("Count", mock.Anything).Return(int64(12), nil)
	oRepo.On("Count", mock.Anything).Return(int64(5), nil)
	oRepo.On("CountByStatus", mock.Anything, model.OrderStatusPending).Return(int64(2), nil)
	oRepo.On("SumTotalPrice", mock.Anything).Return(149.97, nil)

	got, err := uc.GetDashboardStats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, usecase.DashboardStats{
		TotalProducts: 12,
		TotalOrders:   5,
		PendingOrders: 2,
		TotalRevenue:  149.97,
	}, got)
}

func TestStatsUsecase_GetDashboardStats_DBError(t *testing.T) {
	pRepo := new(ProductRepoMock)
	oRepo := new(OrderRepoMock)
	uc := usecase.NewStatsUsecase(pRepo, oRepo)

	pRepo.On("Count", mock.Anything).Return(int64(0), errors.New("conn closed"))

	_, err := uc.GetDashboardStats(context.Background())
	assertErrContains(t, err, "db error")
}
