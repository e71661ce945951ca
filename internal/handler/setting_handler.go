package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 公開側の設定読み取り（認証なし）
type SettingHandler struct {
	uc *usecase.SettingUsecase
}

func NewSettingHandler(uc *usecase.SettingUsecase) *SettingHandler {
	return &SettingHandler{uc: uc}
}

func (h *SettingHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/settings", h.get)
}

func (h *SettingHandler) get(c echo.Context) error {
	out, err := h.uc.GetSettings(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
