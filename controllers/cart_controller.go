package controllers

import (
	"github.com/SpideeCode/uberPharma/pkg/resp"
	"github.com/SpideeCode/uberPharma/services"
	"github.com/SpideeCode/uberPharma/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

// GET /cart lists every cart of the caller, with computed totals.
func (h *CartController) List(c *gin.Context) {
	p := utils.MustPrincipal(c)

	carts, err := h.Svc.ListForUser(p)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"carts": carts})
}

// POST /cart/add
func (h *CartController) Add(c *gin.Context) {
	p := utils.MustPrincipal(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.Add(p, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"item": item, "message": "product added to cart"})
}

// POST /cart/remove
func (h *CartController) Remove(c *gin.Context) {
	p := utils.MustPrincipal(c)

	var body struct {
		CartItemID uint `json:"cart_item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.RemoveItem(p, body.CartItemID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "product removed from cart"})
}

// POST /cart/clear
func (h *CartController) Clear(c *gin.Context) {
	p := utils.MustPrincipal(c)

	var body struct {
		CartID uint `json:"cart_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Clear(p, body.CartID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cart cleared"})
}
