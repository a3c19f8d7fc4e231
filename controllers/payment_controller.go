package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/olvera93/FoodApp/pkg/resp"
	"github.com/olvera93/FoodApp/services"
)

type PaymentController struct{ Svc *services.PaymentService }

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: s}
}

// POST /payments/initialize
func (h *PaymentController) Initialize(c *gin.Context) {
	var req struct {
		OrderID uint             `json:"orderId" binding:"required"`
		Amount  *decimal.Decimal `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	handle, err := h.Svc.InitializePayment(c.Request.Context(), req.OrderID, req.Amount)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "success", handle)
}

// PUT /payments/update
func (h *PaymentController) Update(c *gin.Context) {
	var req struct {
		OrderID       uint            `json:"orderId" binding:"required"`
		Amount        decimal.Decimal `json:"amount"`
		TransactionID string          `json:"transactionId" binding:"required"`
		Success       bool            `json:"success"`
		FailureReason string          `json:"failureReason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := h.Svc.UpdatePaymentForOrder(req.OrderID, req.Amount, req.TransactionID, req.Success, req.FailureReason)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "payment recorded successfully", nil)
}

// GET /payments (admin)
func (h *PaymentController) List(c *gin.Context) {
	payments, err := h.Svc.GetAllPayments()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "payments retrieved successfully", payments)
}

// GET /payments/:id (admin)
func (h *PaymentController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	payment, err := h.Svc.GetPaymentByID(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "payment retrieved successfully", payment)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}
	return fallback
}
