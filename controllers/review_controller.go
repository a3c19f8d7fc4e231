package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/olvera93/FoodApp/pkg/resp"
	"github.com/olvera93/FoodApp/services"
	"github.com/olvera93/FoodApp/utils"
)

type ReviewController struct{ Svc *services.ReviewService }

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: s}
}

// POST /reviews
func (h *ReviewController) Create(c *gin.Context) {
	var req services.ReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "review created successfully", review)
}

// GET /menus/:id/reviews
func (h *ReviewController) ListByMenu(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	reviews, err := h.Svc.ListByMenu(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "reviews retrieved successfully", reviews)
}
