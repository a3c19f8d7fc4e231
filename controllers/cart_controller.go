package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/olvera93/FoodApp/pkg/resp"
	"github.com/olvera93/FoodApp/services"
	"github.com/olvera93/FoodApp/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	view, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "shopping cart retrieved successfully", view)
}

// POST /cart/items
func (h *CartController) AddItem(c *gin.Context) {
	var req struct {
		MenuID   uint `json:"menuId" binding:"required"`
		Quantity int  `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.AddItem(utils.CurrentUserID(c), req.MenuID, req.Quantity); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "item added to cart successfully", nil)
}

// PATCH /cart/items/increment
func (h *CartController) Increment(c *gin.Context) {
	var req struct {
		MenuID uint `json:"menuId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.IncrementItem(utils.CurrentUserID(c), req.MenuID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "item quantity incremented successfully", nil)
}

// PATCH /cart/items/decrement
func (h *CartController) Decrement(c *gin.Context) {
	var req struct {
		MenuID uint `json:"menuId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.DecrementItem(utils.CurrentUserID(c), req.MenuID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "item quantity updated successfully", nil)
}

// DELETE /cart/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Svc.RemoveItem(utils.CurrentUserID(c), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "item removed from cart successfully", nil)
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "shopping cart cleared successfully", nil)
}
