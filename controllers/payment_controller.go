package controllers

import (
	"strconv"

	"github.com/SpideeCode/uberPharma/pkg/resp"
	"github.com/SpideeCode/uberPharma/services"
	"github.com/SpideeCode/uberPharma/utils"
	"github.com/gin-gonic/gin"
)

// PaymentController fronts the simulated checkout. There is no gateway
// call; payment always succeeds.
type PaymentController struct {
	Carts  *services.CartService
	Orders *services.OrderService
}

func NewPaymentController(carts *services.CartService, orders *services.OrderService) *PaymentController {
	return &PaymentController{Carts: carts, Orders: orders}
}

// GET /payment?cart_id= returns the checkout preview: cart and total.
func (h *PaymentController) Preview(c *gin.Context) {
	p := utils.MustPrincipal(c)

	cartID, err := strconv.Atoi(c.Query("cart_id"))
	if err != nil || cartID <= 0 {
		resp.BadRequest(c, "cart_id is required")
		return
	}

	carts, err := h.Carts.ListForUser(p)
	if err != nil {
		fail(c, err)
		return
	}
	for i := range carts {
		if carts[i].ID == uint(cartID) {
			resp.OK(c, gin.H{"cart": carts[i]})
			return
		}
	}
	resp.NotFound(c, "not found")
}

// POST /payment converts the cart into an order.
func (h *PaymentController) Checkout(c *gin.Context) {
	p := utils.MustPrincipal(c)

	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Orders.Checkout(p, &req)
	if err != nil {
		fail(c, err)
		return
	}

	resp.Created(c, gin.H{
		"order":             order,
		"estimated_minutes": services.EstimatedDeliveryMinutes,
	})
}
