package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminOrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewAdminOrderHandler(uc *usecase.OrderUsecase) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc}
}

type OrderStatusUpdateRequest struct {
	Status string `json:"status"`
}

type OrderStatusUpdateResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

func (h *AdminOrderHandler) RegisterRoutes(e *echo.Echo, guard echo.MiddlewareFunc) {
	admin := e.Group("/api/admin", guard)

	admin.GET("/orders", h.list)
	admin.PUT("/orders/:id/status", h.updateStatus)
}

func (h *AdminOrderHandler) list(c echo.Context) error {
	out, err := h.uc.AdminListOrders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminOrderHandler) updateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req OrderStatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	o, err := h.uc.AdminUpdateOrderStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, OrderStatusUpdateResponse{
		Message: "Order status updated successfully",
		OrderID: o.ID,
		Status:  o.Status,
	})
}
