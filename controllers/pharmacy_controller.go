package controllers

import (
	"strconv"

	"github.com/SpideeCode/uberPharma/entity"
	"github.com/SpideeCode/uberPharma/pkg/resp"
	"github.com/SpideeCode/uberPharma/services"
	"github.com/SpideeCode/uberPharma/utils"
	"github.com/gin-gonic/gin"
)

type PharmacyController struct {
	Svc       *services.PharmacyService
	Carts     *services.CartService
	Dashboard *services.DashboardService
}

func NewPharmacyController(svc *services.PharmacyService, carts *services.CartService, dashboard *services.DashboardService) *PharmacyController {
	return &PharmacyController{Svc: svc, Carts: carts, Dashboard: dashboard}
}

// GET /pharmacies is the public catalog listing.
func (h *PharmacyController) List(c *gin.Context) {
	pharmacies, err := h.Svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"pharmacies": pharmacies})
}

// GET /pharmacies/:id is the catalog detail with products. When the caller
// is an authenticated client, their cart for this pharmacy rides along.
func (h *PharmacyController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid pharmacy id")
		return
	}

	pharmacy, err := h.Svc.Detail(uint(id))
	if err != nil {
		fail(c, err)
		return
	}

	var cart *services.CartView
	if p, ok := utils.CurrentPrincipal(c); ok && p.Role == entity.RoleClient {
		cart, err = h.Carts.ViewForPharmacy(p, pharmacy.ID)
		if err != nil {
			fail(c, err)
			return
		}
	}

	resp.OK(c, gin.H{"pharmacy": pharmacy, "cart": cart})
}

// GET /my/pharmacies
func (h *PharmacyController) Mine(c *gin.Context) {
	p := utils.MustPrincipal(c)
	pharmacies, err := h.Svc.ListOwned(p)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"pharmacies": pharmacies})
}

// POST /pharmacies
func (h *PharmacyController) Create(c *gin.Context) {
	p := utils.MustPrincipal(c)

	var req services.PharmacyIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	pharmacy, err := h.Svc.Create(p, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"pharmacy": pharmacy})
}

// PUT /pharmacies/:id
func (h *PharmacyController) Update(c *gin.Context) {
	p := utils.MustPrincipal(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid pharmacy id")
		return
	}

	var req services.PharmacyIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	pharmacy, err := h.Svc.Update(p, uint(id), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"pharmacy": pharmacy})
}

// DELETE /pharmacies/:id
func (h *PharmacyController) Delete(c *gin.Context) {
	p := utils.MustPrincipal(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid pharmacy id")
		return
	}

	if err := h.Svc.Delete(p, uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "pharmacy deleted"})
}

// GET /pharmacy/dashboard
func (h *PharmacyController) DashboardView(c *gin.Context) {
	p := utils.MustPrincipal(c)
	dash, err := h.Dashboard.ForOwner(p)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dash)
}
