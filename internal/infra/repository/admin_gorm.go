package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type AdminGormRepository struct {
	db *gorm.DB
}

func NewAdminGormRepository(db *gorm.DB) *AdminGormRepository {
	return &AdminGormRepository{db: db}
}

func (r *AdminGormRepository) FindByID(ctx context.Context, id int64) (model.Admin, error) {
	var a model.Admin
	err := r.db.WithContext(ctx).First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Admin{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Admin{}, err
	}
	return a, nil
}

func (r *AdminGormRepository) FindByUsername(ctx context.Context, username string) (model.Admin, error) {
	var a model.Admin
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Admin{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Admin{}, err
	}
	return a, nil
}

func (r *AdminGormRepository) Create(ctx context.Context, a model.Admin) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
		return 0, err
	}
	return a.ID, nil
}
