// controllers/design_controller.go
package controllers

import (
	"fmt"
	"path/filepath"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Storefront pagination: 30 designs per page.
const designsPerPage = 30

type DesignController struct {
	designService *services.DesignService
	reviewService *services.ReviewService
	deleteGuard   *services.DeleteGuard
	uploadDir     string
}

func NewDesignController(designService *services.DesignService, reviewService *services.ReviewService, deleteGuard *services.DeleteGuard, uploadDir string) *DesignController {
	return &DesignController{
		designService: designService,
		reviewService: reviewService,
		deleteGuard:   deleteGuard,
		uploadDir:     uploadDir,
	}
}

// designForm mirrors DesignInput for multipart submissions with an
// optional image file.
type designForm struct {
	CakeID          uint   `form:"cake_id" binding:"required"`
	Theme           string `form:"theme"`
	ColorPalette    string `form:"color_palette"`
	TopperType      string `form:"topper_type"`
	ComplexityLevel string `form:"complexity_level"`
	Featured        bool   `form:"featured"`
}

// GET /designs (Public): enriched views, featured first, 30 per page
func (dc *DesignController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	views, err := dc.designService.ListWithDetails()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	total := len(views)
	totalPages := (total + designsPerPage - 1) / designsPerPage
	offset := (page - 1) * designsPerPage
	if offset > total {
		offset = total
	}
	end := offset + designsPerPage
	if end > total {
		end = total
	}

	resp.OK(c, gin.H{
		"items":         views[offset:end],
		"page":          page,
		"total_pages":   totalPages,
		"total_designs": total,
	})
}

// GET /designs/:id (Public): enriched view plus visible reviews
func (dc *DesignController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	view, err := dc.designService.GetWithDetails(uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	reviews, err := dc.reviewService.ListForDesign(uint(id), true)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	type reviewRow struct {
		ReviewID     uint   `json:"review_id"`
		Rating       int    `json:"rating"`
		ReviewText   string `json:"review_text"`
		ReviewDate   string `json:"review_date"`
		CustomerName string `json:"customer_name"`
		City         string `json:"city"`
	}
	rows := make([]reviewRow, 0, len(reviews))
	for _, r := range reviews {
		rows = append(rows, reviewRow{
			ReviewID:     r.ID,
			Rating:       r.Rating,
			ReviewText:   r.ReviewText,
			ReviewDate:   r.ReviewDate.Format("2006-01-02 15:04"),
			CustomerName: r.Customer.FullName,
			City:         r.Customer.City,
		})
	}

	resp.OK(c, gin.H{"design": view, "reviews": rows})
}

// GET /top-designs (Public): ?count= defaults to 10
func (dc *DesignController) Top(c *gin.Context) {
	count, _ := strconv.Atoi(c.DefaultQuery("count", "10"))
	if count < 1 {
		count = 10
	}

	views, err := dc.designService.TopDesigns(count)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, views)
}

// POST /admin/designs (Admin): multipart, optional image upload
func (dc *DesignController) Create(c *gin.Context) {
	in, err := dc.bindForm(c, 0)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	design, err := dc.designService.Create(*in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, design)
}

// PUT /admin/designs/:id (Admin)
func (dc *DesignController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	in, err := dc.bindForm(c, uint(id))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	design, err := dc.designService.Update(uint(id), *in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, design)
}

// DELETE /admin/designs/:id (Admin)
func (dc *DesignController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := dc.deleteGuard.Delete(services.KindDesign, uint(id)); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

func (dc *DesignController) bindForm(c *gin.Context, designID uint) (*services.DesignInput, error) {
	var form designForm
	if err := c.ShouldBind(&form); err != nil {
		return nil, err
	}

	in := services.DesignInput{
		CakeID:          form.CakeID,
		Theme:           form.Theme,
		ColorPalette:    form.ColorPalette,
		ComplexityLevel: entity.ComplexityLevel(form.ComplexityLevel),
		Featured:        form.Featured,
	}
	if form.TopperType != "" {
		in.TopperType = &form.TopperType
	}

	if file, err := c.FormFile("image"); err == nil {
		filename := fmt.Sprintf("design_%d_%s%s", designID, uuid.NewString(), filepath.Ext(file.Filename))
		savePath := filepath.Join(dc.uploadDir, filename)
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			return nil, fmt.Errorf("cannot save image: %w", err)
		}
		in.ImageURL = "/uploads/" + filename
	}
	return &in, nil
}
