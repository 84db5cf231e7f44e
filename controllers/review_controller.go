// controllers/review_controller.go
package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviewService *services.ReviewService
}

func NewReviewController(reviewService *services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

type SubmitReviewRequest struct {
	Rating     int    `json:"rating" binding:"required"`
	ReviewText string `json:"review_text"`
}

// POST /designs/:id/reviews (Protected): the logged-in customer reviews
// a design
func (rc *ReviewController) Submit(c *gin.Context) {
	customerID := utils.CurrentUserID(c)
	if customerID == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	designID, _ := strconv.Atoi(c.Param("id"))

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := rc.reviewService.Create(services.ReviewInput{
		CustomerID: customerID,
		DesignID:   uint(designID),
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, review)
}

// GET /profile/reviews (Protected)
func (rc *ReviewController) ListForMe(c *gin.Context) {
	customerID := utils.CurrentUserID(c)
	if customerID == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	reviews, err := rc.reviewService.ListForCustomer(customerID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}

// GET /admin/reviews (Admin): moderation table, hidden reviews included
func (rc *ReviewController) List(c *gin.Context) {
	rows, err := rc.reviewService.ListModeration()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

// POST /admin/reviews (Admin)
func (rc *ReviewController) Create(c *gin.Context) {
	var in services.ReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	review, err := rc.reviewService.Create(in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, review)
}

// PUT /admin/reviews/:id (Admin)
func (rc *ReviewController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var in services.ReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	review, err := rc.reviewService.Update(uint(id), in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, review)
}

// DELETE /admin/reviews/:id (Admin): reviews delete freely
func (rc *ReviewController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := rc.reviewService.Delete(uint(id)); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// PATCH /admin/reviews/:id/hide (Admin): {"is_hidden": bool}
func (rc *ReviewController) ToggleHide(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		IsHidden bool `json:"is_hidden"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := rc.reviewService.SetHidden(uint(id), req.IsHidden); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"is_hidden": req.IsHidden})
}
