package controllers

import (
	"errors"

	"shopkart/models"
	"shopkart/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// PlaceOrder godoc
// @Summary Place an order
// @Description Submit a new order with at least one item
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body models.PlaceOrderRequest true "Order Request"
// @Success 200 {object} models.PlaceOrderResponse
// @Failure 400 {object} models.MessageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/order [post]
func (ctrl *OrderController) PlaceOrder(c *gin.Context) {
	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.MessageResponse{Message: "Invalid order"})
		return
	}

	order, err := ctrl.orders.PlaceOrder(req)
	switch {
	case errors.Is(err, services.ErrInvalidOrder):
		c.JSON(400, models.MessageResponse{Message: "Invalid order"})
		return
	case errors.Is(err, services.ErrTotalMismatch):
		c.JSON(400, models.MessageResponse{Message: "Order total mismatch"})
		return
	case err != nil:
		c.JSON(500, models.ErrorResponse{Error: "Unable to place order"})
		return
	}

	c.JSON(200, models.PlaceOrderResponse{Message: "Order placed", OrderID: order.ID})
}

// GetOrders godoc
// @Summary List orders
// @Description List all orders, optionally filtered by user email
// @Tags Orders
// @Produce json
// @Param user query string false "Filter by user email"
// @Success 200 {array} models.Order
// @Failure 500 {object} models.ErrorResponse
// @Router /api/orders [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	orders, err := ctrl.orders.ListOrders(c.Query("user"))
	if err != nil {
		c.JSON(500, models.ErrorResponse{Error: "Unable to read orders"})
		return
	}
	c.JSON(200, orders)
}
