package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/blood_connect/internal/auth"
	"github.com/shenikar/blood_connect/internal/config"
	"github.com/shenikar/blood_connect/internal/models"
	"github.com/shenikar/blood_connect/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	requestService    service.RequestService
	authService       service.AuthService
	predictionService service.PredictionService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(requestService service.RequestService, authService service.AuthService, predictionService service.PredictionService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		requestService:    requestService,
		authService:       authService,
		predictionService: predictionService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// bindAndValidate разбирает JSON тело и проверяет его теги validate. При ошибке ответ уже записан.
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError переводит ошибку сервиса в HTTP статус
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	status, message := http.StatusInternalServerError, "internal server error"

	switch {
	case errors.Is(err, models.ErrNotFound):
		status, message = http.StatusNotFound, "not found"
	case errors.Is(err, models.ErrAlreadyExists):
		status, message = http.StatusConflict, "already exists"
	case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		status, message = http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, models.ErrForbidden):
		status, message = http.StatusForbidden, "forbidden"
	case errors.Is(err, models.ErrInvalidStatusTransition):
		status, message = http.StatusUnprocessableEntity, "invalid status transition"
	case errors.Is(err, models.ErrUpstream):
		status, message = http.StatusBadGateway, "upstream service unavailable"
	}

	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	} else {
		log.WithError(err).Warn("Request rejected")
	}
	c.JSON(status, gin.H{"error": message})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
