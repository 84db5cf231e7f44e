// controllers/auth_controller.go
package controllers

import (
	"net/http"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	City     string `json:"city"`
	Password string `json:"password" binding:"required,min=6"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	authService     *services.AuthService
	customerService *services.CustomerService
}

func NewAuthController(authService *services.AuthService, customerService *services.CustomerService) *AuthController {
	return &AuthController{authService: authService, customerService: customerService}
}

// POST /auth/signup
func (a *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	customer, err := a.authService.Signup(req.FullName, req.Email, req.City, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	resp.Created(c, gin.H{
		"customer_id": customer.ID,
		"full_name":   customer.FullName,
		"email":       customer.Email,
		"city":        customer.City,
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, customer, err := a.authService.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"customer": gin.H{
			"customer_id": customer.ID,
			"full_name":   customer.FullName,
			"email":       customer.Email,
			"city":        customer.City,
		},
	})
}

// POST /auth/admin/login
func (a *AuthController) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, admin, err := a.authService.AdminLogin(req.Username, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"admin": gin.H{
			"admin_id":  admin.ID,
			"username":  admin.Username,
			"full_name": admin.FullName,
		},
	})
}

// GET /auth/me (Protected)
func (a *AuthController) Me(c *gin.Context) {
	view, err := a.customerService.GetView(utils.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, view)
}
