package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type AdminOutput struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AuthUsecase struct {
	admins     repo.AdminRepository
	sessions   repo.SessionRepository
	sessionTTL time.Duration
}

// DI
func NewAuthUsecase(admins repo.AdminRepository, sessions repo.SessionRepository, sessionTTL time.Duration) *AuthUsecase {
	return &AuthUsecase{
		admins:     admins,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Loginは認証に成功したらサーバー側セッションを作り、そのtokenを返す。
// ユーザー不在とパスワード不一致は同じエラーにする（列挙攻撃対策）。
func (u *AuthUsecase) Login(ctx context.Context, username string, password string) (AdminOutput, string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return AdminOutput{}, "", NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	admin, err := u.admins.FindByUsername(ctx, username)
	if err == repo.ErrNotFound {
		return AdminOutput{}, "", NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		return AdminOutput{}, "", NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return AdminOutput{}, "", NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	token, err := generateSessionToken()
	if err != nil {
		return AdminOutput{}, "", NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	now := time.Now()
	err = u.sessions.Create(ctx, model.AdminSession{
		Token:     token,
		AdminID:   admin.ID,
		ExpiresAt: now.Add(u.sessionTTL),
		CreatedAt: now,
	})
	if err != nil {
		return AdminOutput{}, "", NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toAdminOutput(admin), token, nil
}

func (u *AuthUsecase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := u.sessions.DeleteByToken(ctx, token); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// CheckAuthはセッションが生きているかを返す。失敗理由は区別しない。
func (u *AuthUsecase) CheckAuth(ctx context.Context, token string) (AdminOutput, bool) {
	if token == "" {
		return AdminOutput{}, false
	}

	s, err := u.sessions.FindByToken(ctx, token)
	if err != nil {
		return AdminOutput{}, false
	}
	if time.Now().After(s.ExpiresAt) {
		return AdminOutput{}, false
	}

	admin, err := u.admins.FindByID(ctx, s.AdminID)
	if err != nil {
		return AdminOutput{}, false
	}

	return toAdminOutput(admin), true
}

// HashPasswordは管理者作成（初期化）用。
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func toAdminOutput(a model.Admin) AdminOutput {
	return AdminOutput{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
	}
}

// ランダムなセッショントークンを作る。
func generateSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
