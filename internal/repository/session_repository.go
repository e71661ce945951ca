package repository

import (
	"app/internal/domain/model"
	"context"
)

// 管理者セッションの永続化。tokenは不透明な文字列。
type SessionRepository interface {
	Create(ctx context.Context, s model.AdminSession) error
	FindByToken(ctx context.Context, token string) (model.AdminSession, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}
