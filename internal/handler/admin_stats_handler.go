package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminStatsHandler struct {
	uc *usecase.StatsUsecase
}

func NewAdminStatsHandler(uc *usecase.StatsUsecase) *AdminStatsHandler {
	return &AdminStatsHandler{uc: uc}
}

func (h *AdminStatsHandler) RegisterRoutes(e *echo.Echo, guard echo.MiddlewareFunc) {
	admin := e.Group("/api/admin", guard)

	admin.GET("/dashboard/stats", h.stats)
}

func (h *AdminStatsHandler) stats(c echo.Context) error {
	out, err := h.uc.GetDashboardStats(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
