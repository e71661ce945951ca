package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingGormRepository struct {
	db *gorm.DB
}

func NewSettingGormRepository(db *gorm.DB) *SettingGormRepository {
	return &SettingGormRepository{db: db}
}

func (r *SettingGormRepository) ListAll(ctx context.Context) ([]model.WebsiteSetting, error) {
	var settings []model.WebsiteSetting
	if err := r.db.WithContext(ctx).Order("key asc").Find(&settings).Error; err != nil {
		return []model.WebsiteSetting{}, err
	}
	return settings, nil
}

func (r *SettingGormRepository) FindByKey(ctx context.Context, key string) (model.WebsiteSetting, error) {
	var s model.WebsiteSetting
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.WebsiteSetting{}, repo.ErrNotFound
	}
	if err != nil {
		return model.WebsiteSetting{}, err
	}
	return s, nil
}

// key重複時はvalueだけ上書き
func (r *SettingGormRepository) Upsert(ctx context.Context, key string, value string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&model.WebsiteSetting{Key: key, Value: value}).Error
}
