package web

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/ocean_watch/internal/catalog"
	"github.com/shenikar/ocean_watch/internal/form"
	"github.com/shenikar/ocean_watch/internal/metrics"
	"github.com/shenikar/ocean_watch/internal/service"
)

const (
	actionSubmit       = "submit"
	actionLocate       = "locate"
	actionLocateFailed = "locate_failed"
)

// Page - данные, общие для всех страниц, и содержимое конкретной страницы
type Page struct {
	Title            string
	ActivePath       string
	SidebarCollapsed bool
	Nav              []NavGroup
	Header           Header
	Notification     *form.Notification
	Content          any
}

type dashboardContent struct {
	Stats         []catalog.StatCard
	RecentReports []catalog.RecentReport
	SystemHealth  []catalog.HealthMetric
	Notice        string
}

type mapContent struct {
	TimeRange       string
	TimeRanges      []catalog.TimeRange
	Filters         []string
	SelectedFilters []string
	Layers          []string
	Markers         []catalog.HazardMarker
}

type reportContent struct {
	Form           form.HazardReportForm
	HazardTypes    []form.Option
	SeverityLevels []form.SeverityLevel
	Guidelines     []form.Guideline
	MaxPhotos      int
}

type socialContent struct {
	Tab              string
	Stats            []catalog.StatCard
	Posts            []catalog.SocialPost
	Keywords         []catalog.TrendingKeyword
	Regions          []catalog.RegionShare
	Sentiment        []catalog.SentimentShare
	CredibilityScore float64
}

type placeholderContent struct {
	Heading string
}

type notFoundContent struct {
	Path string
}

type Handler struct {
	reportService service.ReportService
	renderer      *Renderer
	logger        *logrus.Logger
	metrics       *metrics.Metrics
}

func NewHandler(reportService service.ReportService, renderer *Renderer, logger *logrus.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		reportService: reportService,
		renderer:      renderer,
		logger:        logger,
		metrics:       m,
	}
}

// RegisterRoutes регистрирует HTML-страницы. Все прочие пути отдают страницу 404.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.dashboard)
	router.GET("/map", h.hazardMap)
	router.GET("/report", h.reportForm)
	router.POST("/report", h.reportAction)
	router.GET("/social", h.social)
	for _, p := range placeholders() {
		router.GET(p.Path, h.placeholder(p.Title))
	}
	router.POST("/sidebar/toggle", h.toggleSidebar)

	router.NoRoute(h.notFound)
}

func (h *Handler) render(c *gin.Context, status int, page string, p Page) {
	p.ActivePath = c.Request.URL.Path
	p.Nav = navGroups()
	p.Header = defaultHeader()
	p.SidebarCollapsed = sidebarIsCollapsed(c)

	body, err := h.renderer.Render(page, p)
	if err != nil {
		h.logger.WithField("page", page).WithError(err).Error("Failed to render page")
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", body)
}

func (h *Handler) dashboard(c *gin.Context) {
	h.render(c, http.StatusOK, "dashboard.tmpl", Page{
		Title: "Ocean Watch Dashboard",
		Content: dashboardContent{
			Stats:         catalog.DashboardStats(),
			RecentReports: catalog.RecentReports(),
			SystemHealth:  catalog.SystemHealth(),
			Notice:        catalog.MaintenanceNotice,
		},
	})
}

func (h *Handler) hazardMap(c *gin.Context) {
	selected := c.QueryArray("type")
	h.render(c, http.StatusOK, "map.tmpl", Page{
		Title: "Live Hazard Map",
		Content: mapContent{
			TimeRange:       catalog.NormalizeTimeRange(c.Query("range")),
			TimeRanges:      catalog.TimeRanges(),
			Filters:         catalog.HazardFilters(),
			SelectedFilters: selected,
			Layers:          catalog.MapLayers(),
			Markers:         catalog.FilterMarkers(catalog.HazardMarkers(), selected),
		},
	})
}

func (h *Handler) social(c *gin.Context) {
	tab := c.DefaultQuery("tab", "feed")
	switch tab {
	case "feed", "trends", "analytics":
	default:
		tab = "feed"
	}
	h.render(c, http.StatusOK, "social.tmpl", Page{
		Title: "Social Media Monitoring",
		Content: socialContent{
			Tab:              tab,
			Stats:            catalog.SocialStats(),
			Posts:            catalog.SocialPosts(),
			Keywords:         catalog.TrendingKeywords(),
			Regions:          catalog.RegionalDistribution(),
			Sentiment:        catalog.SentimentBreakdown(),
			CredibilityScore: catalog.CredibilityScore,
		},
	})
}

func (h *Handler) placeholder(title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.render(c, http.StatusOK, "placeholder.tmpl", Page{
			Title:   title,
			Content: placeholderContent{Heading: title + " - Coming Soon"},
		})
	}
}

func (h *Handler) notFound(c *gin.Context) {
	h.logger.WithField("path", c.Request.URL.Path).Warn("Page not found")
	h.render(c, http.StatusNotFound, "not_found.tmpl", Page{
		Title:   "Page not found",
		Content: notFoundContent{Path: c.Request.URL.Path},
	})
}

func (h *Handler) reportForm(c *gin.Context) {
	h.renderReport(c, http.StatusOK, form.Empty(), nil)
}

func (h *Handler) renderReport(c *gin.Context, status int, f form.HazardReportForm, note *form.Notification) {
	h.render(c, status, "report.tmpl", Page{
		Title:        "Report Ocean Hazard",
		Notification: note,
		Content: reportContent{
			Form:           f,
			HazardTypes:    form.HazardTypes(),
			SeverityLevels: form.SeverityLevels(),
			Guidelines:     form.Guidelines(),
			MaxPhotos:      form.MaxPhotos,
		},
	})
}

// reportAction обрабатывает кнопки формы: отправку и результат геолокации
func (h *Handler) reportAction(c *gin.Context) {
	log := h.logger.WithField("method", "reportAction")

	f := form.Empty()
	if err := c.ShouldBind(&f); err != nil {
		log.WithError(err).Warn("Failed to bind report form")
		note := form.Error("Unable to read the report form.", "")
		h.renderReport(c, http.StatusBadRequest, f, &note)
		return
	}

	switch c.DefaultPostForm("action", actionSubmit) {
	case actionLocate:
		pos, ok := parsePosition(c)
		if !ok {
			h.metrics.GeolocationOutcomes.WithLabelValues("error").Inc()
			note := f.LocationFailed()
			h.renderReport(c, http.StatusOK, f, &note)
			return
		}
		h.metrics.GeolocationOutcomes.WithLabelValues("success").Inc()
		note := f.ApplyPosition(pos)
		h.renderReport(c, http.StatusOK, f, &note)

	case actionLocateFailed:
		h.metrics.GeolocationOutcomes.WithLabelValues("error").Inc()
		note := f.LocationFailed()
		h.renderReport(c, http.StatusOK, f, &note)

	default:
		attachPhotos(c, log, &f)
		_, note := h.reportService.SubmitForm(c.Request.Context(), &f)
		h.renderReport(c, http.StatusOK, f, &note)
	}
}

func parsePosition(c *gin.Context) (form.Position, bool) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(c.PostForm("geo_latitude")), 64)
	if err != nil || lat < -90 || lat > 90 {
		return form.Position{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(c.PostForm("geo_longitude")), 64)
	if err != nil || lon < -180 || lon > 180 {
		return form.Position{}, false
	}
	return form.Position{Latitude: lat, Longitude: lon}, true
}

// attachPhotos переносит описания файлов из multipart-формы. Сами файлы не сохраняются.
// Файлы сверх лимитов пропускаются, отправку формы они не блокируют.
func attachPhotos(c *gin.Context, log *logrus.Entry, f *form.HazardReportForm) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return
	}
	mf, err := c.MultipartForm()
	if err != nil {
		log.WithError(err).Warn("Failed to read attached photos")
		return
	}
	for _, fh := range mf.File["photos"] {
		if fh.Size == 0 && fh.Filename == "" {
			continue
		}
		err := f.AddPhoto(form.Attachment{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
		})
		if err != nil {
			log.WithError(err).WithField("file", fh.Filename).Warn("Photo skipped")
		}
	}
}

func sidebarIsCollapsed(c *gin.Context) bool {
	state, err := c.Cookie(sidebarCookie)
	return err == nil && state == sidebarCollapsed
}

// toggleSidebar переключает состояние бокового меню и возвращает на исходную страницу
func (h *Handler) toggleSidebar(c *gin.Context) {
	next := sidebarCollapsed
	if sidebarIsCollapsed(c) {
		next = sidebarExpanded
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sidebarCookie, next, 7*24*60*60, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, returnPath(c.PostForm("return_to")))
}

// returnPath допускает только локальные пути, чтобы редирект не уводил на чужой сайт
func returnPath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(raw, "//") {
		return "/"
	}
	return u.RequestURI()
}
