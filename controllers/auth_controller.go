package controllers

import (
	"net/http"

	"github.com/SpideeCode/uberPharma/pkg/resp"
	"github.com/SpideeCode/uberPharma/services"
	"github.com/SpideeCode/uberPharma/utils"
	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(req.Name, req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	resp.Created(c, gin.H{
		"id": user.ID, "name": user.Name, "email": user.Email, "role": user.Role,
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"id": user.ID, "name": user.Name, "email": user.Email, "role": user.Role,
		},
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	p := utils.MustPrincipal(c)
	user, err := a.Svc.GetProfile(p.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{
		"id": user.ID, "name": user.Name, "email": user.Email, "role": user.Role,
	})
}
