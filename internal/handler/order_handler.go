package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderItemRequest struct {
	ID       int64   `json:"id"`
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderCreateRequest struct {
	CustomerName string             `json:"customer_name"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Address      string             `json:"address"`
	City         string             `json:"city"`
	ZipCode      string             `json:"zip_code"`
	TotalPrice   float64            `json:"total_price"`
	Items        []OrderItemRequest `json:"items"`
}

type OrderCreateResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/orders", h.create)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	items := make([]usecase.PlaceOrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.PlaceOrderItemInput{
			ProductID: it.ID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	orderID, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		ZipCode:      req.ZipCode,
		TotalPrice:   req.TotalPrice,
		Items:        items,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, OrderCreateResponse{
		Message: "Order placed successfully",
		OrderID: orderID,
	})
}
