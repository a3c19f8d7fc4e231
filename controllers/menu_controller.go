package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/olvera93/FoodApp/pkg/resp"
	"github.com/olvera93/FoodApp/services"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /menus?categoryId=&search=
func (h *MenuController) List(c *gin.Context) {
	var categoryID *uint
	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			resp.BadRequest(c, "invalid categoryId")
			return
		}
		v := uint(id)
		categoryID = &v
	}

	menus, err := h.Svc.List(categoryID, c.Query("search"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "menus retrieved successfully", menus)
}

// GET /menus/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	menu, err := h.Svc.GetByID(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "menu retrieved successfully", menu)
}

// POST /menus (admin)
func (h *MenuController) Create(c *gin.Context) {
	var req services.MenuIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	menu, err := h.Svc.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "menu created successfully", menu)
}

// PUT /menus/:id (admin)
func (h *MenuController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req services.MenuUpdateIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	menu, err := h.Svc.Update(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "menu updated successfully", menu)
}

// DELETE /menus/:id (admin)
func (h *MenuController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "menu deleted successfully", nil)
}
