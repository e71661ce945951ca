package middleware

import (
	"net/http"
	"time"

	"app/internal/repository"

	"github.com/labstack/echo/v4"
)

const (
	SessionCookieName = "admin_session"

	CtxAdminIDKey       = "admin_id"       // int64
	CtxAdminUsernameKey = "admin_username" // string
	CtxSessionTokenKey  = "session_token"  // string
)

// 管理APIのセッションゲート。
// Cookieのtokenをサーバー側ストアで解決できなければ、
// ハンドラに入る前に401で打ち切る。
func AdminSessionGuard(sessions repository.SessionRepository, admins repository.AdminRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			ctx := c.Request().Context()

			s, err := sessions.FindByToken(ctx, cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			if time.Now().After(s.ExpiresAt) {
				// 期限切れは掃除してから拒否
				_ = sessions.DeleteByToken(ctx, s.Token)
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			admin, err := admins.FindByID(ctx, s.AdminID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//contextへ保存
			c.Set(CtxAdminIDKey, admin.ID)
			c.Set(CtxAdminUsernameKey, admin.Username)
			c.Set(CtxSessionTokenKey, s.Token)

			return next(c)
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
