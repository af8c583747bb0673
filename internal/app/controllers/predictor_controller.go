package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshayp/cetadvisor/internal/app/models/dto"
	"github.com/akshayp/cetadvisor/internal/app/services"
	"github.com/akshayp/cetadvisor/internal/middleware"
	"github.com/akshayp/cetadvisor/internal/pkg/metrics"
)

// PredictorController handles the college predictor endpoint
type PredictorController struct {
	predictorService *services.PredictorService
	metrics          *metrics.Metrics
}

// NewPredictorController creates a new PredictorController. metrics may be nil.
func NewPredictorController(predictorService *services.PredictorService, m *metrics.Metrics) *PredictorController {
	return &PredictorController{
		predictorService: predictorService,
		metrics:          m,
	}
}

// Predict buckets eligible colleges by admission likelihood
// @Summary Predict colleges
// @Description Partitions eligible colleges into safe, target and dream buckets for a student percentile
// @Tags predictor
// @Accept json
// @Produce json
// @Param request body dto.PredictRequest true "Student profile"
// @Success 200 {object} dto.APIResponse{data=dto.PredictionBuckets} "Prediction computed"
// @Failure 400 {object} dto.APIResponse "Validation failure"
// @Failure 500 {object} dto.APIResponse "Prediction failure"
// @Router /predict [post]
func (c *PredictorController) Predict(ctx *gin.Context) {
	var req dto.PredictRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	buckets, err := c.predictorService.PredictColleges(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if c.metrics != nil {
		c.metrics.PredictionsTotal.Inc()
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(buckets))
}
