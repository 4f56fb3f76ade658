package controllers

import (
	"strconv"

	"github.com/SpideeCode/uberPharma/pkg/resp"
	"github.com/SpideeCode/uberPharma/services"
	"github.com/SpideeCode/uberPharma/utils"
	"github.com/gin-gonic/gin"
)

type ProductController struct{ Svc *services.ProductService }

func NewProductController(svc *services.ProductService) *ProductController {
	return &ProductController{Svc: svc}
}

// POST /products
func (h *ProductController) Create(c *gin.Context) {
	p := utils.MustPrincipal(c)

	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	product, err := h.Svc.Create(p, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"product": product})
}

// PUT /products/:id
func (h *ProductController) Update(c *gin.Context) {
	p := utils.MustPrincipal(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}

	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	product, err := h.Svc.Update(p, uint(id), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"product": product})
}

// DELETE /products/:id
func (h *ProductController) Delete(c *gin.Context) {
	p := utils.MustPrincipal(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}

	if err := h.Svc.Delete(p, uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "product deleted"})
}
