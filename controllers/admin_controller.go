package controllers

import (
	"strconv"

	"github.com/SpideeCode/uberPharma/pkg/resp"
	"github.com/SpideeCode/uberPharma/services"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Users     *services.UserService
	Dashboard *services.DashboardService
}

func NewAdminController(users *services.UserService, dashboard *services.DashboardService) *AdminController {
	return &AdminController{Users: users, Dashboard: dashboard}
}

// GET /admin/dashboard
func (h *AdminController) DashboardView(c *gin.Context) {
	dash, err := h.Dashboard.ForAdmin()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dash)
}

// GET /admin/users
func (h *AdminController) ListUsers(c *gin.Context) {
	users, err := h.Users.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"users": users})
}

// POST /admin/users
func (h *AdminController) CreateUser(c *gin.Context) {
	var req services.CreateUserIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Users.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"user": user})
}

// POST /admin/users/:id/role
func (h *AdminController) UpdateUserRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}

	var body struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Users.UpdateRole(uint(id), body.Role)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"user": user})
}

// DELETE /admin/users/:id
func (h *AdminController) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}

	if err := h.Users.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "user deleted"})
}
