package repository

import (
	"app/internal/domain/model"
	"context"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	// 新しい順に全件
	ListAllDesc(ctx context.Context) ([]model.Order, error)

	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status string) error

	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	SumTotalPrice(ctx context.Context) (float64, error)
}
