package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshayp/cetadvisor/internal/app/models/dto"
	"github.com/akshayp/cetadvisor/internal/app/services"
	"github.com/akshayp/cetadvisor/internal/middleware"
	"github.com/akshayp/cetadvisor/internal/pkg/metrics"
)

// GuideController handles guide endpoints
type GuideController struct {
	guideService *services.GuideService
	metrics      *metrics.Metrics
}

// NewGuideController creates a new GuideController. metrics may be nil.
func NewGuideController(guideService *services.GuideService, m *metrics.Metrics) *GuideController {
	return &GuideController{
		guideService: guideService,
		metrics:      m,
	}
}

// GetGuides lists active guides
// @Summary List guides
// @Description Returns all active guides, newest first
// @Tags guides
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Guide} "Guides retrieved"
// @Router /guides [get]
func (c *GuideController) GetGuides(ctx *gin.Context) {
	guides, err := c.guideService.GetGuides(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(guides))
}

// DownloadGuide captures the lead and returns the guide file URL
// @Summary Download guide
// @Description Records the requester details and returns the guide file URL
// @Tags guides
// @Accept json
// @Produce json
// @Param request body dto.GuideDownloadRequest true "Requester details"
// @Success 200 {object} dto.APIResponse{data=dto.GuideDownloadData} "File URL returned"
// @Failure 400 {object} dto.APIResponse "Validation failure"
// @Failure 403 {object} dto.APIResponse "Guide not available"
// @Failure 404 {object} dto.APIResponse "Guide not found"
// @Router /guides/download [post]
func (c *GuideController) DownloadGuide(ctx *gin.Context) {
	var req dto.GuideDownloadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	data, err := c.guideService.DownloadGuide(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if c.metrics != nil {
		c.metrics.GuideDownloads.Inc()
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// CreateGuide creates a new guide
// @Summary Create guide
// @Description Creates a new downloadable guide
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGuideRequest true "Guide details"
// @Success 201 {object} dto.APIResponse{data=models.Guide} "Guide created"
// @Failure 400 {object} dto.APIResponse "Validation failure"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /admin/guides [post]
func (c *GuideController) CreateGuide(ctx *gin.Context) {
	var req dto.CreateGuideRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	guide, err := c.guideService.CreateGuide(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(guide))
}
