package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type SessionGormRepository struct {
	db *gorm.DB
}

func NewSessionGormRepository(db *gorm.DB) *SessionGormRepository {
	return &SessionGormRepository{db: db}
}

func (r *SessionGormRepository) Create(ctx context.Context, s model.AdminSession) error {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return err
	}
	return nil
}

func (r *SessionGormRepository) FindByToken(ctx context.Context, token string) (model.AdminSession, error) {
	var s model.AdminSession
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.AdminSession{}, repo.ErrNotFound
	}
	if err != nil {
		return model.AdminSession{}, err
	}
	return s, nil
}

func (r *SessionGormRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.AdminSession{}).Error
}

// 期限切れセッションの掃除
func (r *SessionGormRepository) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.AdminSession{}).Error
}
