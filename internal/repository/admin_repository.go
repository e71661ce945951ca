package repository

import (
	"app/internal/domain/model"
	"context"
)

type AdminRepository interface {
	FindByID(ctx context.Context, id int64) (model.Admin, error)
	FindByUsername(ctx context.Context, username string) (model.Admin, error)
	Create(ctx context.Context, a model.Admin) (int64, error)
}
