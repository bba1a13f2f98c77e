package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Shortage forecast
// @Description Mean shortage risk per month and per blood type. Placeholder series are returned with sample_data=true when there is no usable inventory data.
// @Tags Prediction
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ForecastResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Inventory storage unavailable"
// @Router /prediction/forecast [get]
func (h *Handler) getForecast(c *gin.Context) {
	log := h.logger.WithField("method", "getForecast")

	result, err := h.predictionService.GetForecast(c.Request.Context(), actorFrom(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ForecastToResponse(result))
}

// @Summary Anemia prediction
// @Description Forward blood test values to the anemia model
// @Tags Prediction
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sample body AnemiaRequest true "Blood test values"
// @Success 200 {object} AnemiaResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Model service unavailable"
// @Router /prediction/anemia [post]
func (h *Handler) predictAnemia(c *gin.Context) {
	var input AnemiaRequest
	log := h.logger.WithField("method", "predictAnemia")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	prediction, err := h.predictionService.PredictAnemia(c.Request.Context(), DTOToAnemiaSample(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, AnemiaResponse{Positive: prediction.Positive, Label: prediction.Label})
}

// @Summary Donation insight
// @Description Text insight produced by the analytics service
// @Tags Prediction
// @Produce json
// @Security BearerAuth
// @Success 200 {object} InsightResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Insight service unavailable"
// @Router /prediction/insight [get]
func (h *Handler) getInsight(c *gin.Context) {
	log := h.logger.WithField("method", "getInsight")

	insight, err := h.predictionService.GetInsight(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, InsightResponse{Insight: insight})
}

// @Summary Import inventory records
// @Description Batch import of hospital inventory observations. Requires API key.
// @Tags Inventory
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param batch body ImportInventoryRequest true "Inventory records"
// @Success 201 {object} ImportInventoryResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /inventory/import [post]
func (h *Handler) importInventory(c *gin.Context) {
	var input ImportInventoryRequest
	log := h.logger.WithField("method", "importInventory")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	inserted, err := h.predictionService.ImportInventory(c.Request.Context(), DTOToInventoryRecords(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ImportInventoryResponse{Inserted: inserted})
}
