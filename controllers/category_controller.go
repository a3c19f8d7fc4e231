package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/olvera93/FoodApp/pkg/resp"
	"github.com/olvera93/FoodApp/services"
)

type CategoryController struct{ Svc *services.CategoryService }

func NewCategoryController(s *services.CategoryService) *CategoryController {
	return &CategoryController{Svc: s}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GET /categories
func (h *CategoryController) List(c *gin.Context) {
	categories, err := h.Svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "categories retrieved successfully", categories)
}

// GET /categories/:id
func (h *CategoryController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	category, err := h.Svc.GetByID(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "category retrieved successfully", category)
}

// POST /categories (admin)
func (h *CategoryController) Create(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	category, err := h.Svc.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "category created successfully", category)
}

// PUT /categories/:id (admin)
func (h *CategoryController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	category, err := h.Svc.Update(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "category updated successfully", category)
}

// DELETE /categories/:id (admin)
func (h *CategoryController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "category deleted successfully", nil)
}
