package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/order-service/internal/core/ports"
)

type OrderHandler struct {
	orderService ports.OrderService
}

func NewOrderHandler(orderService ports.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create records an order submission outcome.
//
// @Summary      Submit an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Submission outcome"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /orders/create [post]
func (h *OrderHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orderService.Create(c.Request().Context(), user, *req.Success)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List returns the caller's visible orders: everything for admins, own
// orders for everyone else.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  orderListResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /orders/ [get]
func (h *OrderHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	orders, err := h.orderService.List(c.Request().Context(), user)
	if err != nil {
		return err
	}

	resp := orderListResponse{Orders: make([]orderResponse, 0, len(orders))}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(o))
	}
	return c.JSON(http.StatusOK, resp)
}
