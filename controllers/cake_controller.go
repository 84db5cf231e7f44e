// controllers/cake_controller.go
package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type CakeController struct {
	cakeService *services.CakeService
	deleteGuard *services.DeleteGuard
}

func NewCakeController(cakeService *services.CakeService, deleteGuard *services.DeleteGuard) *CakeController {
	return &CakeController{cakeService: cakeService, deleteGuard: deleteGuard}
}

// GET /cakes (Public): only cakes currently offered
func (cc *CakeController) List(c *gin.Context) {
	cakes, err := cc.cakeService.ListAvailable()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cakes)
}

// GET /cakes/:id (Public): cake plus its designs
func (cc *CakeController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	cake, designs, err := cc.cakeService.GetWithDesigns(uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"cake": cake, "designs": designs})
}

// GET /cakes/search (Public): ?q=&flavor=&size=&min_price=&max_price=
func (cc *CakeController) Search(c *gin.Context) {
	var minPrice, maxPrice *float64
	if s := c.Query("min_price"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			resp.BadRequest(c, "invalid min_price")
			return
		}
		minPrice = &v
	}
	if s := c.Query("max_price"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			resp.BadRequest(c, "invalid max_price")
			return
		}
		maxPrice = &v
	}

	cakes, err := cc.cakeService.Search(c.Query("q"), c.Query("flavor"), c.Query("size"), minPrice, maxPrice)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cakes)
}

// GET /cakes/flavors (Public): flavors currently offered, for dropdowns
func (cc *CakeController) Flavors(c *gin.Context) {
	flavors, err := cc.cakeService.Flavors()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, flavors)
}

// GET /cakes/sizes (Public)
func (cc *CakeController) Sizes(c *gin.Context) {
	sizes, err := cc.cakeService.Sizes()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, sizes)
}

// GET /calculator (Public): ?cake_id=&complexity= prices a prospective
// design without saving anything
func (cc *CakeController) Quote(c *gin.Context) {
	cakeID, err := strconv.Atoi(c.Query("cake_id"))
	if err != nil || cakeID < 1 {
		resp.BadRequest(c, "invalid cake_id")
		return
	}

	quote, err := cc.cakeService.Quote(uint(cakeID), entity.ComplexityLevel(c.Query("complexity")))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, quote)
}

// GET /admin/cakes (Admin): every cake, unavailable ones included
func (cc *CakeController) ListAll(c *gin.Context) {
	cakes, err := cc.cakeService.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cakes)
}

// POST /admin/cakes (Admin)
func (cc *CakeController) Create(c *gin.Context) {
	var in services.CakeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cake, err := cc.cakeService.Create(in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, cake)
}

// PUT /admin/cakes/:id (Admin)
func (cc *CakeController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var in services.CakeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cake, err := cc.cakeService.Update(uint(id), in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, cake)
}

// DELETE /admin/cakes/:id (Admin): refused while any of its designs
// still has reviews
func (cc *CakeController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := cc.deleteGuard.Delete(services.KindCake, uint(id)); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
