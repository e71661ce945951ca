package repository

import (
	"app/internal/domain/model"
	"context"
)

type SettingRepository interface {
	ListAll(ctx context.Context) ([]model.WebsiteSetting, error)
	FindByKey(ctx context.Context, key string) (model.WebsiteSetting, error)

	// あれば更新、なければ作成
	Upsert(ctx context.Context, key string, value string) error
}
