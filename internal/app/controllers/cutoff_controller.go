package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshayp/cetadvisor/internal/app/models/dto"
	"github.com/akshayp/cetadvisor/internal/app/services"
	"github.com/akshayp/cetadvisor/internal/middleware"
)

// CutoffController handles cutoff data endpoints
type CutoffController struct {
	cutoffService *services.CutoffService
}

// NewCutoffController creates a new CutoffController
func NewCutoffController(cutoffService *services.CutoffService) *CutoffController {
	return &CutoffController{cutoffService: cutoffService}
}

// GetCutoffs lists cutoff rows with optional filters
// @Summary List cutoffs
// @Description Returns cutoff rows matching the query filters, ordered by year and percentile descending
// @Tags cutoffs
// @Produce json
// @Param year query int false "Admission year"
// @Param branch query string false "Branch substring"
// @Param category query string false "Reservation category"
// @Param gender query string false "Gender"
// @Param home_university query string false "Home university region"
// @Param college_name query string false "College name substring"
// @Success 200 {object} dto.APIResponse{data=[]models.CutoffRecord} "Cutoffs retrieved"
// @Failure 400 {object} dto.APIResponse "Validation failure"
// @Router /cutoffs [get]
func (c *CutoffController) GetCutoffs(ctx *gin.Context) {
	var filters dto.CutoffFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	cutoffs, err := c.cutoffService.GetCutoffs(ctx, filters)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(cutoffs))
}

// BulkInsertCutoffs inserts many cutoff rows at once
// @Summary Bulk insert cutoffs
// @Description Validates and inserts all rows in a single statement
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkCutoffRequest true "Cutoff rows"
// @Success 201 {object} dto.APIResponse{data=[]models.CutoffRecord} "Rows inserted"
// @Failure 400 {object} dto.APIResponse "Validation failure"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /admin/cutoffs [post]
func (c *CutoffController) BulkInsertCutoffs(ctx *gin.Context) {
	var req dto.BulkCutoffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	records, err := c.cutoffService.BulkInsertCutoffs(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(records))
}
