package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/olvera93/FoodApp/entity"
	"github.com/olvera93/FoodApp/pkg/resp"
	"github.com/olvera93/FoodApp/services"
	"github.com/olvera93/FoodApp/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders/checkout
func (h *OrderController) Checkout(c *gin.Context) {
	order, err := h.Svc.PlaceOrderFromCart(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c,
		"your order has been received, a secure payment link has been sent to your email",
		order)
}

// GET /orders/me
func (h *OrderController) ListMine(c *gin.Context) {
	orders, err := h.Svc.GetMyOrders(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "orders retrieved successfully", orders)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	order, err := h.Svc.GetOrderByID(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	// owners see their own orders, admins see all
	if order.UserID != utils.CurrentUserID(c) && !utils.HasRole(c, entity.RoleAdmin) {
		resp.Forbidden(c, "forbidden")
		return
	}
	resp.OK(c, "order retrieved successfully", order)
}

// GET /orders?status=&page=&size= (admin)
func (h *OrderController) List(c *gin.Context) {
	var status *entity.OrderStatus
	if raw := c.Query("status"); raw != "" {
		v := entity.OrderStatus(raw)
		status = &v
	}
	page := queryInt(c, "page", 0)
	size := queryInt(c, "size", 20)

	out, err := h.Svc.GetAllOrders(status, page, size)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "orders retrieved successfully", out)
}

// PATCH /orders/:id/status (admin)
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateOrderStatus(id, req.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "order status updated successfully", nil)
}
