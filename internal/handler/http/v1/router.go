package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/blood_connect/internal/models"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	jwtAuth := JWTAuthMiddleware(h.authService, h.logger)

	// Регистрация и вход
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", h.signup)
		authGroup.POST("/login", h.login)
		authGroup.POST("/logout", jwtAuth, h.logout)
		authGroup.GET("/me", jwtAuth, h.me)
	}

	// Заявки на кровь
	requests := api.Group("/requests", jwtAuth)
	{
		requests.POST("", RequireRoles(models.RoleHospital, models.RoleRequester, models.RolePatient, models.RoleAdmin), h.createRequest)
		requests.GET("", h.listRequests)
		requests.GET("/mine", h.listMyRequests)
		requests.GET("/nearby", h.findNearby)
		requests.GET("/:id", h.getRequest)
		requests.PATCH("/:id/status", h.updateRequestStatus)
	}

	api.GET("/dashboard", jwtAuth, h.getDashboard)
	api.GET("/stats", jwtAuth, RequireRoles(models.RoleAdmin), h.getStats)

	// Прогноз и внешняя модель
	prediction := api.Group("/prediction", jwtAuth)
	{
		prediction.GET("/forecast", h.getForecast)
		prediction.POST("/anemia", h.predictAnemia)
		prediction.GET("/insight", h.getInsight)
	}

	// Машинный импорт складских данных
	api.POST("/inventory/import", APIKeyAuthMiddleware(h.cfg, h.logger), h.importInventory)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
