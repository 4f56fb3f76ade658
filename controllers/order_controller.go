package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SpideeCode/uberPharma/entity"
	"github.com/SpideeCode/uberPharma/pkg/resp"
	"github.com/SpideeCode/uberPharma/services"
	"github.com/SpideeCode/uberPharma/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// GET /orders. Clients see their own, pharmacy users their
// pharmacies', admins everything.
func (oc *OrderController) List(c *gin.Context) {
	p := utils.MustPrincipal(c)

	orders, err := oc.Svc.ListFor(p)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	p := utils.MustPrincipal(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := oc.Svc.Detail(p, uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order})
}

// GET /orders/:id/confirmation
func (oc *OrderController) Confirmation(c *gin.Context) {
	p := utils.MustPrincipal(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := oc.Svc.Detail(p, uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{
		"order":             order,
		"estimated_minutes": services.EstimatedDeliveryMinutes,
	})
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /api/orders/:id/status. Responds with the
// {success, message, order} shape the dashboard consumes.
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	p := utils.MustPrincipal(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid order id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	order, err := oc.Svc.UpdateStatus(p, uint(id), entity.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "order not found"})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "forbidden"})
		case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "order status updated",
		"order":   order,
	})
}
