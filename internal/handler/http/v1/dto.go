package v1

import (
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/ocean_watch/internal/catalog"
	"github.com/shenikar/ocean_watch/internal/classify"
	"github.com/shenikar/ocean_watch/internal/form"
)

// RecentReportResponse DTO записи в списке последних сообщений
// @Description Последнее сообщение с вариантом бейджа
type RecentReportResponse struct {
	catalog.RecentReport
	SeverityVariant classify.Variant `json:"severity_variant"`
	StatusBadge     classify.Badge   `json:"status_badge"`
}

// DashboardResponse DTO главной страницы
// @Description Показатели, последние сообщения и состояние систем
type DashboardResponse struct {
	Stats             []catalog.StatCard     `json:"stats"`
	RecentReports     []RecentReportResponse `json:"recent_reports"`
	SystemHealth      []catalog.HealthMetric `json:"system_health"`
	MaintenanceNotice string                 `json:"maintenance_notice"`
}

// MarkerResponse DTO маркера на карте
// @Description Маркер опасности с цветом и бейджем статуса
type MarkerResponse struct {
	catalog.HazardMarker
	Color       string         `json:"color"`
	StatusBadge classify.Badge `json:"status_badge"`
}

// MapHazardsResponse DTO карты опасностей
// @Description Выбранные параметры карты и маркеры
type MapHazardsResponse struct {
	TimeRange  string              `json:"time_range"`
	TimeRanges []catalog.TimeRange `json:"time_ranges"`
	Filters    []string            `json:"filters"`
	Layers     []string            `json:"layers"`
	Markers    []MarkerResponse    `json:"markers"`
}

// SocialPostResponse DTO публикации из социальных сетей
// @Description Публикация с цветом платформы и вариантом тональности
type SocialPostResponse struct {
	catalog.SocialPost
	PlatformColor    string           `json:"platform_color"`
	SentimentVariant classify.Variant `json:"sentiment_variant"`
}

type SocialFeedResponse struct {
	Stats []catalog.StatCard   `json:"stats"`
	Posts []SocialPostResponse `json:"posts"`
}

type SocialTrendsResponse struct {
	Keywords []catalog.TrendingKeyword `json:"keywords"`
	Regions  []catalog.RegionShare     `json:"regions"`
}

type SocialAnalyticsResponse struct {
	Sentiment        []catalog.SentimentShare `json:"sentiment"`
	CredibilityScore float64                  `json:"credibility_score"`
}

// ReportOptionsResponse DTO справочников формы
// @Description Типы опасностей, уровни, рекомендации и лимиты вложений
type ReportOptionsResponse struct {
	HazardTypes    []form.Option        `json:"hazard_types"`
	SeverityLevels []form.SeverityLevel `json:"severity_levels"`
	Guidelines     []form.Guideline     `json:"guidelines"`
	MaxPhotos      int                  `json:"max_photos"`
	MaxPhotoBytes  int64                `json:"max_photo_bytes"`
}

// UpdateFieldRequest DTO изменения одного поля черновика
// @Description Имя поля и новое значение
type UpdateFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=hazard_type location latitude longitude severity description"`
	Value string `json:"value" validate:"max=4000"`
}

// LocationOutcomeRequest DTO результата геолокации клиента: координаты либо ошибка
// @Description Координаты или текст ошибки геолокации
type LocationOutcomeRequest struct {
	Latitude  *float64 `json:"latitude,omitempty" validate:"required_without=Error,omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"required_without=Error,omitempty,longitude"`
	Error     string   `json:"error,omitempty"`
}

// DraftResponse DTO черновика формы
// @Description Черновик формы и последнее уведомление
type DraftResponse struct {
	ID           uuid.UUID             `json:"id"`
	Form         form.HazardReportForm `json:"form"`
	UpdatedAt    time.Time             `json:"updated_at"`
	Notification *form.Notification    `json:"notification,omitempty"`
}

// ReportResponse DTO отправленного сообщения
// @Description Отправленное сообщение об опасности
type ReportResponse struct {
	ID              uuid.UUID         `json:"id"`
	HazardType      string            `json:"hazard_type"`
	HazardTypeLabel string            `json:"hazard_type_label"`
	Location        string            `json:"location"`
	Latitude        *float64          `json:"latitude,omitempty"`
	Longitude       *float64          `json:"longitude,omitempty"`
	Severity        string            `json:"severity"`
	SeverityColor   string            `json:"severity_color"`
	Description     string            `json:"description"`
	Photos          []form.Attachment `json:"photos"`
	Status          string            `json:"status"`
	SubmittedAt     time.Time         `json:"submitted_at"`
}

// SubmitResponse DTO результата отправки черновика
// @Description Созданное сообщение, сброшенный черновик и уведомление
type SubmitResponse struct {
	Report       *ReportResponse   `json:"report"`
	Draft        *DraftResponse    `json:"draft"`
	Notification form.Notification `json:"notification"`
}

// StatsResponse DTO для ответа со статистикой
// @Description Количество сообщений за окно по уровням опасности
type StatsResponse struct {
	WindowMinutes int            `json:"window_minutes"`
	Total         int            `json:"total"`
	BySeverity    map[string]int `json:"by_severity"`
}
