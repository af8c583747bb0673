package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshayp/cetadvisor/internal/app/models/dto"
	"github.com/akshayp/cetadvisor/internal/app/services"
	"github.com/akshayp/cetadvisor/internal/middleware"
)

// UpdateController handles announcement update endpoints
type UpdateController struct {
	updateService *services.UpdateService
}

// NewUpdateController creates a new UpdateController
func NewUpdateController(updateService *services.UpdateService) *UpdateController {
	return &UpdateController{updateService: updateService}
}

// GetUpdates lists all updates
// @Summary List updates
// @Description Returns all published updates, newest first
// @Tags updates
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Update} "Updates retrieved"
// @Router /updates [get]
func (c *UpdateController) GetUpdates(ctx *gin.Context) {
	updates, err := c.updateService.GetUpdates(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(updates))
}

// CreateUpdate creates a new update
// @Summary Create update
// @Description Creates a new announcement update
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUpdateRequest true "Update content"
// @Success 201 {object} dto.APIResponse{data=models.Update} "Update created"
// @Failure 400 {object} dto.APIResponse "Validation failure"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /admin/updates [post]
func (c *UpdateController) CreateUpdate(ctx *gin.Context) {
	var req dto.CreateUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	update, err := c.updateService.CreateUpdate(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(update))
}

// EditUpdate applies a partial edit to an update
// @Summary Edit update
// @Description Edits title, content and/or published date of an update
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Update ID"
// @Param request body dto.PatchUpdateRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Update} "Update edited"
// @Failure 400 {object} dto.APIResponse "Validation failure"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Update not found"
// @Router /admin/updates/{id} [put]
func (c *UpdateController) EditUpdate(ctx *gin.Context) {
	var req dto.PatchUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	update, err := c.updateService.EditUpdate(ctx, ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(update))
}

// DeleteUpdate deletes an update
// @Summary Delete update
// @Description Deletes an update by ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Update ID"
// @Success 200 {object} dto.APIResponse "Update deleted"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Update not found"
// @Router /admin/updates/{id} [delete]
func (c *UpdateController) DeleteUpdate(ctx *gin.Context) {
	if err := c.updateService.DeleteUpdate(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Update deleted successfully"))
}
