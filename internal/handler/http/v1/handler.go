package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/ocean_watch/internal/catalog"
	"github.com/shenikar/ocean_watch/internal/config"
	"github.com/shenikar/ocean_watch/internal/form"
	"github.com/shenikar/ocean_watch/internal/models"
	"github.com/shenikar/ocean_watch/internal/service"
)

type Handler struct {
	reportService service.ReportService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
	limiter       *RateLimiter
}

func NewHandler(reportService service.ReportService, logger *logrus.Logger, cfg *config.Config, limiter *RateLimiter) *Handler {
	return &Handler{
		reportService: reportService,
		logger:        logger,
		validate:      form.NewValidator(),
		cfg:           cfg,
		limiter:       limiter,
	}
}

// @Summary Dashboard overview
// @Description Stat cards, recent reports with badge variants and monitoring system health
// @Tags Dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Router /dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, DashboardResponse{
		Stats:             catalog.DashboardStats(),
		RecentReports:     toRecentReportResponses(catalog.RecentReports()),
		SystemHealth:      catalog.SystemHealth(),
		MaintenanceNotice: catalog.MaintenanceNotice,
	})
}

// @Summary Hazard map markers
// @Description Markers shown on the live hazard map. Unknown time ranges fall back to 24h; type filters match by substring.
// @Tags Map
// @Produce json
// @Param range query string false "Time range" Enums(1h, 6h, 24h, 7d) default(24h)
// @Param type query []string false "Hazard type filters" collectionFormat(multi)
// @Success 200 {object} MapHazardsResponse
// @Router /map/hazards [get]
func (h *Handler) getMapHazards(c *gin.Context) {
	markers := catalog.FilterMarkers(catalog.HazardMarkers(), c.QueryArray("type"))

	c.JSON(http.StatusOK, MapHazardsResponse{
		TimeRange:  catalog.NormalizeTimeRange(c.Query("range")),
		TimeRanges: catalog.TimeRanges(),
		Filters:    catalog.HazardFilters(),
		Layers:     catalog.MapLayers(),
		Markers:    toMarkerResponses(markers),
	})
}

// @Summary Hazard map as GeoJSON
// @Description Markers as a GeoJSON FeatureCollection of points
// @Tags Map
// @Produce json
// @Param type query []string false "Hazard type filters" collectionFormat(multi)
// @Success 200 {object} map[string]interface{}
// @Router /map/hazards.geojson [get]
func (h *Handler) getMapHazardsGeoJSON(c *gin.Context) {
	markers := catalog.FilterMarkers(catalog.HazardMarkers(), c.QueryArray("type"))
	fc := catalog.MarkersFeatureCollection(markers)

	raw, err := fc.MarshalJSON()
	if err != nil {
		h.logger.WithField("method", "getMapHazardsGeoJSON").WithError(err).Error("Failed to encode GeoJSON")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Data(http.StatusOK, "application/geo+json", raw)
}

// @Summary Social media feed
// @Description Monitoring stat cards and live posts with platform colour and sentiment variant
// @Tags Social
// @Produce json
// @Success 200 {object} SocialFeedResponse
// @Router /social/feed [get]
func (h *Handler) getSocialFeed(c *gin.Context) {
	c.JSON(http.StatusOK, SocialFeedResponse{
		Stats: catalog.SocialStats(),
		Posts: toSocialPostResponses(catalog.SocialPosts()),
	})
}

// @Summary Social media trends
// @Tags Social
// @Produce json
// @Success 200 {object} SocialTrendsResponse
// @Router /social/trends [get]
func (h *Handler) getSocialTrends(c *gin.Context) {
	c.JSON(http.StatusOK, SocialTrendsResponse{
		Keywords: catalog.TrendingKeywords(),
		Regions:  catalog.RegionalDistribution(),
	})
}

// @Summary Social media analytics
// @Tags Social
// @Produce json
// @Success 200 {object} SocialAnalyticsResponse
// @Router /social/analytics [get]
func (h *Handler) getSocialAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, SocialAnalyticsResponse{
		Sentiment:        catalog.SentimentBreakdown(),
		CredibilityScore: catalog.CredibilityScore,
	})
}

// @Summary Report form options
// @Description Hazard types, severity levels, reporting guidelines and attachment limits
// @Tags Report
// @Produce json
// @Success 200 {object} ReportOptionsResponse
// @Router /report/options [get]
func (h *Handler) getReportOptions(c *gin.Context) {
	c.JSON(http.StatusOK, ReportOptionsResponse{
		HazardTypes:    form.HazardTypes(),
		SeverityLevels: form.SeverityLevels(),
		Guidelines:     form.Guidelines(),
		MaxPhotos:      form.MaxPhotos,
		MaxPhotoBytes:  form.MaxPhotoBytes,
	})
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

// respondError переводит ошибку сервиса в HTTP-ответ
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrDraftNotFound):
		log.WithError(err).Warn("Draft not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
	case errors.Is(err, models.ErrReportNotFound):
		log.WithError(err).Warn("Report not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
	case errors.Is(err, models.ErrInvalidReport),
		errors.Is(err, form.ErrUnknownField),
		errors.Is(err, form.ErrTooManyPhotos),
		errors.Is(err, form.ErrPhotoTooLarge):
		log.WithError(err).Warn("Request rejected by service")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
