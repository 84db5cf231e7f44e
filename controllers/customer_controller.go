// controllers/customer_controller.go
package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	customerService *services.CustomerService
	deleteGuard     *services.DeleteGuard
}

func NewCustomerController(customerService *services.CustomerService, deleteGuard *services.DeleteGuard) *CustomerController {
	return &CustomerController{customerService: customerService, deleteGuard: deleteGuard}
}

// GET /admin/customers (Admin): customers with review activity
func (cc *CustomerController) List(c *gin.Context) {
	views, err := cc.customerService.ListViews()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, views)
}

// GET /admin/customers/:id (Admin)
func (cc *CustomerController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	view, err := cc.customerService.GetView(uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /admin/customers (Admin): account without credentials; the
// customer sets a password through signup
func (cc *CustomerController) Create(c *gin.Context) {
	var in services.CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	customer, err := cc.customerService.Create(in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, customer)
}

// PUT /admin/customers/:id (Admin)
func (cc *CustomerController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var in services.CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	customer, err := cc.customerService.Update(uint(id), in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, customer)
}

// DELETE /admin/customers/:id (Admin): refused while the customer has
// reviews
func (cc *CustomerController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := cc.deleteGuard.Delete(services.KindCustomer, uint(id)); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
