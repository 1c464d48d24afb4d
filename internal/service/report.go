package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/ocean_watch/internal/config"
	"github.com/shenikar/ocean_watch/internal/form"
	"github.com/shenikar/ocean_watch/internal/metrics"
	"github.com/shenikar/ocean_watch/internal/models"
)

// ReportRepository определяет контракт для хранения отправленных сообщений
type ReportRepository interface {
	Create(ctx context.Context, report *models.HazardReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.HazardReport, error)
	List(ctx context.Context, page, pageSize int) ([]*models.HazardReport, error)
	CountBySeverity(ctx context.Context, minutes int) (map[string]int, error)
	GetReportFromCache(ctx context.Context, id uuid.UUID) (*models.HazardReport, error)
	SetReportCache(ctx context.Context, report *models.HazardReport) error
}

// DraftStore хранит черновики формы между запросами
type DraftStore interface {
	Save(ctx context.Context, draft *models.Draft) error
	Get(ctx context.Context, id uuid.UUID) (*models.Draft, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventPublisher отправляет событие о новом сообщении во внешний канал
type EventPublisher interface {
	Publish(ctx context.Context, event models.ReportEvent) error
}

// Sink - именованный канал публикации событий (очередь вебхуков, Kafka)
type Sink struct {
	Name      string
	Publisher EventPublisher
}

// ReportService определяет контракт бизнес-логики формы и приема сообщений
type ReportService interface {
	CreateDraft(ctx context.Context) (*models.Draft, error)
	GetDraft(ctx context.Context, id uuid.UUID) (*models.Draft, error)
	UpdateDraftField(ctx context.Context, id uuid.UUID, field form.Field, value string) (*models.Draft, error)
	ApplyLocation(ctx context.Context, id uuid.UUID, pos form.Position) (*models.Draft, form.Notification, error)
	LocationFailed(ctx context.Context, id uuid.UUID) (*models.Draft, form.Notification, error)
	AddPhotos(ctx context.Context, id uuid.UUID, photos []form.Attachment) (*models.Draft, error)
	DiscardDraft(ctx context.Context, id uuid.UUID) error
	SubmitDraft(ctx context.Context, id uuid.UUID) (*models.HazardReport, *models.Draft, form.Notification, error)
	SubmitForm(ctx context.Context, f *form.HazardReportForm) (*models.HazardReport, form.Notification)
	GetReport(ctx context.Context, id uuid.UUID) (*models.HazardReport, error)
	ListReports(ctx context.Context, page, pageSize int) ([]*models.HazardReport, error)
	GetStats(ctx context.Context) (*models.ReportStats, error)
}

type reportService struct {
	repo     ReportRepository
	drafts   DraftStore
	sinks    []Sink
	logger   *logrus.Logger
	cfg      *config.Config
	metrics  *metrics.Metrics
	clock    clockwork.Clock
	validate *validator.Validate
}

func NewReportService(
	repo ReportRepository,
	drafts DraftStore,
	logger *logrus.Logger,
	cfg *config.Config,
	m *metrics.Metrics,
	clock clockwork.Clock,
	sinks ...Sink,
) ReportService {
	return &reportService{
		repo:     repo,
		drafts:   drafts,
		sinks:    sinks,
		logger:   logger,
		cfg:      cfg,
		metrics:  m,
		clock:    clock,
		validate: form.NewValidator(),
	}
}

// CreateDraft создает черновик с пустой формой
func (s *reportService) CreateDraft(ctx context.Context) (*models.Draft, error) {
	draft := &models.Draft{
		ID:        uuid.New(),
		Form:      form.Empty(),
		UpdatedAt: s.clock.Now().UTC(),
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "report",
			"method":  "CreateDraft",
		}).WithError(err).Error("Failed to save new draft")
		return nil, fmt.Errorf("service: could not create draft: %w", err)
	}
	return draft, nil
}

func (s *reportService) GetDraft(ctx context.Context, id uuid.UUID) (*models.Draft, error) {
	draft, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get draft: %w", err)
	}
	return draft, nil
}

// UpdateDraftField меняет одно поле черновика
func (s *reportService) UpdateDraftField(ctx context.Context, id uuid.UUID, field form.Field, value string) (*models.Draft, error) {
	return s.mutateDraft(ctx, id, "UpdateDraftField", func(f *form.HazardReportForm) error {
		return f.Set(field, value)
	})
}

// ApplyLocation записывает координаты, полученные от клиента
func (s *reportService) ApplyLocation(ctx context.Context, id uuid.UUID, pos form.Position) (*models.Draft, form.Notification, error) {
	var note form.Notification
	draft, err := s.mutateDraft(ctx, id, "ApplyLocation", func(f *form.HazardReportForm) error {
		if pos.Latitude < -90 || pos.Latitude > 90 || pos.Longitude < -180 || pos.Longitude > 180 {
			return fmt.Errorf("%w: position out of range", models.ErrInvalidReport)
		}
		note = f.ApplyPosition(pos)
		return nil
	})
	if err != nil {
		return nil, form.Notification{}, err
	}
	s.metrics.GeolocationOutcomes.WithLabelValues("success").Inc()
	return draft, note, nil
}

// LocationFailed фиксирует неудачу геолокации. Черновик не меняется.
func (s *reportService) LocationFailed(ctx context.Context, id uuid.UUID) (*models.Draft, form.Notification, error) {
	draft, err := s.GetDraft(ctx, id)
	if err != nil {
		return nil, form.Notification{}, err
	}
	s.metrics.GeolocationOutcomes.WithLabelValues("error").Inc()
	s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   "LocationFailed",
		"draft_id": id,
	}).Info("Client geolocation failed")
	return draft, draft.Form.LocationFailed(), nil
}

// AddPhotos добавляет описания вложений. При нарушении лимитов черновик не меняется.
func (s *reportService) AddPhotos(ctx context.Context, id uuid.UUID, photos []form.Attachment) (*models.Draft, error) {
	return s.mutateDraft(ctx, id, "AddPhotos", func(f *form.HazardReportForm) error {
		for _, p := range photos {
			if err := f.AddPhoto(p); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *reportService) DiscardDraft(ctx context.Context, id uuid.UUID) error {
	if err := s.drafts.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: could not discard draft: %w", err)
	}
	return nil
}

// SubmitDraft отправляет черновик и сохраняет его сброшенным
func (s *reportService) SubmitDraft(ctx context.Context, id uuid.UUID) (*models.HazardReport, *models.Draft, form.Notification, error) {
	draft, err := s.GetDraft(ctx, id)
	if err != nil {
		return nil, nil, form.Notification{}, err
	}

	report, note := s.SubmitForm(ctx, &draft.Form)

	draft.UpdatedAt = s.clock.Now().UTC()
	if err := s.drafts.Save(ctx, draft); err != nil {
		// сообщение уже принято, черновик просто истечет по TTL
		s.logger.WithFields(logrus.Fields{
			"service":  "report",
			"method":   "SubmitDraft",
			"draft_id": id,
		}).WithError(err).Warn("Failed to save reset draft")
	}
	return report, draft, note, nil
}

// SubmitForm принимает форму в любом состоянии: сохраняет сообщение, публикует событие
// и всегда сбрасывает форму с уведомлением об успехе. Неполные данные и ошибки хранилища
// только логируются.
func (s *reportService) SubmitForm(ctx context.Context, f *form.HazardReportForm) (*models.HazardReport, form.Notification) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "report",
		"method":      "SubmitForm",
		"hazard_type": f.HazardType,
		"severity":    f.Severity,
	})
	log.Info("Attempting to submit a hazard report")

	if err := s.validate.Struct(f); err != nil {
		log.WithError(err).Warn("Hazard report is incomplete")
	}
	// координаты хранятся парой: некорректное значение обнуляет обе
	lat, lon, err := f.Coordinates()
	if err != nil {
		log.WithError(err).Warn("Hazard report coordinates are not usable, storing without them")
	}

	report := &models.HazardReport{
		ID:          uuid.New(),
		HazardType:  f.HazardType,
		Location:    f.Location,
		Latitude:    lat,
		Longitude:   lon,
		Severity:    f.Severity,
		Description: f.Description,
		Photos:      append([]form.Attachment{}, f.Photos...),
		Status:      models.ReportStatusSubmitted,
		SubmittedAt: s.clock.Now().UTC(),
	}
	log = log.WithField("report_id", report.ID)
	s.metrics.ReportsSubmitted.WithLabelValues(report.HazardType, report.Severity).Inc()

	if err := s.repo.Create(ctx, report); err != nil {
		// событие все равно уходит в очередь на проверку, отчет не теряется
		log.WithError(err).Error("Failed to create hazard report in repository")
	} else if err := s.repo.SetReportCache(ctx, report); err != nil {
		log.WithError(err).Warn("Failed to cache hazard report")
	}
	s.publish(ctx, log, models.NewReportEvent(report))

	_, note := f.Submit()
	log.Info("Hazard report submitted")
	return report, note
}

func (s *reportService) publish(ctx context.Context, log *logrus.Entry, event models.ReportEvent) {
	for _, sink := range s.sinks {
		if err := sink.Publisher.Publish(ctx, event); err != nil {
			s.metrics.EventsPublished.WithLabelValues(sink.Name, "error").Inc()
			log.WithError(err).WithField("sink", sink.Name).Error("Failed to publish report event")
			continue
		}
		s.metrics.EventsPublished.WithLabelValues(sink.Name, "success").Inc()
	}
}

// GetReport возвращает сообщение, сначала из кэша
func (s *reportService) GetReport(ctx context.Context, id uuid.UUID) (*models.HazardReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "GetReport",
		"report_id": id,
	})

	cached, err := s.repo.GetReportFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read hazard report from cache")
	}
	if cached != nil {
		log.Debug("Hazard report served from cache")
		return cached, nil
	}

	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, models.ErrReportNotFound) {
			log.WithError(err).Error("Failed to get hazard report in repository")
		}
		return nil, fmt.Errorf("service: could not get hazard report: %w", err)
	}

	if err := s.repo.SetReportCache(ctx, report); err != nil {
		log.WithError(err).Warn("Failed to cache hazard report")
	}
	return report, nil
}

// ListReports возвращает сообщения с пагинацией
func (s *reportService) ListReports(ctx context.Context, page, pageSize int) ([]*models.HazardReport, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "ListReports",
		"page":      page,
		"page_size": pageSize,
	})

	reports, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list hazard reports from repository")
		return nil, fmt.Errorf("service: could not list hazard reports: %w", err)
	}

	log.WithField("count", len(reports)).Info("Hazard reports listed successfully")
	return reports, nil
}

// GetStats считает сообщения за окно STATS_TIME_WINDOW_MINUTES
func (s *reportService) GetStats(ctx context.Context) (*models.ReportStats, error) {
	counts, err := s.repo.CountBySeverity(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "report",
			"method":  "GetStats",
		}).WithError(err).Error("Failed to count hazard reports")
		return nil, fmt.Errorf("service: could not get report stats: %w", err)
	}

	stats := &models.ReportStats{
		WindowMinutes: s.cfg.StatsTimeWindowMinutes,
		BySeverity:    counts,
	}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

// mutateDraft применяет изменение к копии формы и сохраняет черновик только при успехе
func (s *reportService) mutateDraft(ctx context.Context, id uuid.UUID, method string, apply func(*form.HazardReportForm) error) (*models.Draft, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   method,
		"draft_id": id,
	})

	draft, err := s.drafts.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get draft: %w", err)
	}

	updated := draft.Form
	updated.Photos = append([]form.Attachment{}, draft.Form.Photos...)
	if err := apply(&updated); err != nil {
		log.WithError(err).Warn("Draft change rejected")
		return nil, fmt.Errorf("service: %w", err)
	}

	draft.Form = updated
	draft.UpdatedAt = s.clock.Now().UTC()
	if err := s.drafts.Save(ctx, draft); err != nil {
		log.WithError(err).Error("Failed to save draft")
		return nil, fmt.Errorf("service: could not save draft: %w", err)
	}
	return draft, nil
}
