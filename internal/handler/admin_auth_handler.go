package handler

import (
	"net/http"
	"time"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminAuthHandler struct {
	uc           *usecase.AuthUsecase
	cookieSecure bool
	sessionTTL   time.Duration
}

// DI
func NewAdminAuthHandler(uc *usecase.AuthUsecase, cfg config.Config) *AdminAuthHandler {
	return &AdminAuthHandler{
		uc:           uc,
		cookieSecure: cfg.CookieSecure,
		sessionTTL:   cfg.SessionTTL,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string              `json:"message"`
	Admin   usecase.AdminOutput `json:"admin"`
}

type CheckAuthResponse struct {
	Authenticated bool                 `json:"authenticated"`
	Admin         *usecase.AdminOutput `json:"admin,omitempty"`
}

// login/check-authはゲートの外、logoutはゲートの中。
func (h *AdminAuthHandler) RegisterRoutes(e *echo.Echo, guard echo.MiddlewareFunc) {
	e.POST("/api/admin/login", h.login)
	e.GET("/api/admin/check-auth", h.checkAuth)
	e.POST("/api/admin/logout", h.logout, guard)
}

func (h *AdminAuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	admin, token, err := h.uc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	h.setSessionCookie(c, token)

	return c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		Admin:   admin,
	})
}

func (h *AdminAuthHandler) logout(c echo.Context) error {
	token, _ := c.Get(middleware.CtxSessionTokenKey).(string)

	if err := h.uc.Logout(c.Request().Context(), token); err != nil {
		return writeError(c, err)
	}

	h.clearSessionCookie(c)

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Logout successful"})
}

func (h *AdminAuthHandler) checkAuth(c echo.Context) error {
	token := ""
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		token = cookie.Value
	}

	admin, ok := h.uc.CheckAuth(c.Request().Context(), token)
	if !ok {
		return c.JSON(http.StatusOK, CheckAuthResponse{Authenticated: false})
	}

	return c.JSON(http.StatusOK, CheckAuthResponse{
		Authenticated: true,
		Admin:         &admin,
	})
}

// セッションtokenをCookieにセット
func (h *AdminAuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(h.sessionTTL),
	})
}

func (h *AdminAuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
