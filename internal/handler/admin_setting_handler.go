package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminSettingHandler struct {
	uc *usecase.SettingUsecase
}

func NewAdminSettingHandler(uc *usecase.SettingUsecase) *AdminSettingHandler {
	return &AdminSettingHandler{uc: uc}
}

func (h *AdminSettingHandler) RegisterRoutes(e *echo.Echo, guard echo.MiddlewareFunc) {
	admin := e.Group("/api/admin", guard)

	admin.GET("/settings", h.get)
	admin.PUT("/settings", h.update)
}

func (h *AdminSettingHandler) get(c echo.Context) error {
	out, err := h.uc.GetSettings(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// bodyはkey→valueのmapそのもの
func (h *AdminSettingHandler) update(c echo.Context) error {
	var req map[string]string
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.UpdateSettings(c.Request().Context(), req); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Settings updated successfully"})
}
