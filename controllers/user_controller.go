package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/olvera93/FoodApp/pkg/resp"
	"github.com/olvera93/FoodApp/services"
	"github.com/olvera93/FoodApp/utils"
)

type UserController struct{ Svc *services.UserService }

func NewUserController(s *services.UserService) *UserController { return &UserController{Svc: s} }

// GET /users/me
func (h *UserController) Me(c *gin.Context) {
	user, err := h.Svc.Me(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "user retrieved successfully", user)
}

// PATCH /users/me
func (h *UserController) UpdateMe(c *gin.Context) {
	var req services.UpdateMeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.UpdateMe(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "user updated successfully", user)
}

// GET /users (admin)
func (h *UserController) List(c *gin.Context) {
	users, err := h.Svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "users retrieved successfully", users)
}
