package repository

import (
	"app/internal/domain/model"
	"context"
)

type OrderItemRepository interface {
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
}
