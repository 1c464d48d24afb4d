package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/dashboard", h.getDashboard)

	api.GET("/map/hazards", h.getMapHazards)
	api.GET("/map/hazards.geojson", h.getMapHazardsGeoJSON)

	social := api.Group("/social")
	{
		social.GET("/feed", h.getSocialFeed)
		social.GET("/trends", h.getSocialTrends)
		social.GET("/analytics", h.getSocialAnalytics)
	}

	api.GET("/report/options", h.getReportOptions)

	// Черновики формы; запись ограничена по частоте на клиента
	drafts := api.Group("/report/drafts", h.limiter.Middleware())
	{
		drafts.POST("", h.createDraft)
		drafts.GET("/:id", h.getDraft)
		drafts.PATCH("/:id", h.updateDraftField)
		drafts.DELETE("/:id", h.discardDraft)
		drafts.POST("/:id/location", h.applyLocation)
		drafts.POST("/:id/photos", h.addPhotos)
		drafts.POST("/:id/submit", h.submitDraft)
	}

	// Маршруты для просмотра принятых сообщений (по API-ключу)
	reports := api.Group("/reports", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		reports.GET("", h.listReports)
		reports.GET("/stats", h.getStats)
		reports.GET("/:id", h.getReport)
	}

	api.GET("/system/health", h.healthCheck)
}
