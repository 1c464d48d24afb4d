package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/ocean_watch/internal/config"
	"github.com/shenikar/ocean_watch/internal/form"
	"github.com/shenikar/ocean_watch/internal/metrics"
	"github.com/shenikar/ocean_watch/internal/models"
	"github.com/shenikar/ocean_watch/internal/service/mocks"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

type testDeps struct {
	repo      *mocks.MockReportRepository
	drafts    *mocks.MockDraftStore
	publisher *mocks.MockEventPublisher
	metrics   *metrics.Metrics
	clock     *clockwork.FakeClock
}

// newTestReportService - вспомогательная функция для создания сервиса с моками
func newTestReportService(t *testing.T) (*reportService, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		repo:      mocks.NewMockReportRepository(ctrl),
		drafts:    mocks.NewMockDraftStore(ctrl),
		publisher: mocks.NewMockEventPublisher(ctrl),
		metrics:   metrics.NewMetricsForTesting(),
		clock:     clockwork.NewFakeClockAt(testNow),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{StatsTimeWindowMinutes: 60}

	svc := NewReportService(deps.repo, deps.drafts, logger, cfg, deps.metrics, deps.clock,
		Sink{Name: "webhook", Publisher: deps.publisher})
	return svc.(*reportService), deps
}

func submittableForm() form.HazardReportForm {
	f := form.Empty()
	f.HazardType = "tsunami_warning"
	f.Severity = "critical"
	f.Description = "Large waves"
	return f
}

func TestSubmitForm_Success(t *testing.T) {
	// Подготовка
	svc, deps := newTestReportService(t)
	ctx := context.Background()
	f := submittableForm()
	f.Latitude = "13.082700"
	f.Longitude = "80.270700"
	var reportID uuid.UUID

	// Ожидания
	deps.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.HazardReport) error {
			require.NotEqual(t, uuid.Nil, r.ID)
			reportID = r.ID
			return nil
		})
	deps.repo.EXPECT().SetReportCache(ctx, gomock.Any()).Return(nil)
	deps.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.ReportEvent) error {
			assert.Equal(t, reportID, e.ReportID)
			assert.Equal(t, "critical", e.Severity)
			return nil
		})

	// Действие
	report, note := svc.SubmitForm(ctx, &f)

	// Проверки
	assert.Equal(t, reportID, report.ID)
	assert.Equal(t, models.ReportStatusSubmitted, report.Status)
	assert.Equal(t, testNow, report.SubmittedAt)
	require.NotNil(t, report.Latitude)
	assert.InDelta(t, 13.0827, *report.Latitude, 1e-9)

	assert.Equal(t, form.LevelSuccess, note.Level)
	assert.Equal(t, "Hazard report submitted successfully!", note.Title)
	assert.Equal(t, "Your report has been sent to INCOIS for immediate review.", note.Description)
	assert.True(t, f.IsEmpty(), "form must be reset after submit")

	assert.InDelta(t, 1, testutil.ToFloat64(deps.metrics.ReportsSubmitted.WithLabelValues("tsunami_warning", "critical")), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(deps.metrics.EventsPublished.WithLabelValues("webhook", "success")), 1e-9)
}

func TestSubmitForm_AlwaysResets(t *testing.T) {
	tests := []struct {
		name   string
		form   func() form.HazardReportForm
		assert func(t *testing.T, r *models.HazardReport)
	}{
		{
			name: "empty form",
			form: form.Empty,
			assert: func(t *testing.T, r *models.HazardReport) {
				assert.Empty(t, r.HazardType)
				assert.Empty(t, r.Severity)
			},
		},
		{
			name: "description only",
			form: func() form.HazardReportForm {
				f := form.Empty()
				f.Description = "Large waves"
				return f
			},
			assert: func(t *testing.T, r *models.HazardReport) {
				assert.Equal(t, "Large waves", r.Description)
			},
		},
		{
			name: "free-text latitude",
			form: func() form.HazardReportForm {
				f := submittableForm()
				f.Latitude = "near 13N"
				f.Longitude = "80.2707"
				return f
			},
			assert: func(t *testing.T, r *models.HazardReport) {
				assert.Nil(t, r.Latitude)
				assert.Nil(t, r.Longitude)
				assert.Equal(t, "critical", r.Severity)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestReportService(t)
			ctx := context.Background()
			f := tt.form()

			deps.repo.EXPECT().
				Create(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, r *models.HazardReport) error {
					tt.assert(t, r)
					return nil
				})
			deps.repo.EXPECT().SetReportCache(ctx, gomock.Any()).Return(nil)
			deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

			report, note := svc.SubmitForm(ctx, &f)

			require.NotNil(t, report)
			assert.Equal(t, form.Empty(), f)
			assert.Equal(t, form.LevelSuccess, note.Level)
			assert.Equal(t, "Hazard report submitted successfully!", note.Title)
		})
	}
}

func TestSubmitForm_RepositoryErrorStillQueuesAndResets(t *testing.T) {
	svc, deps := newTestReportService(t)
	ctx := context.Background()
	f := submittableForm()

	deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(fmt.Errorf("connection refused"))
	deps.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.ReportEvent) error {
			assert.NotEqual(t, uuid.Nil, e.ReportID)
			assert.Equal(t, "Large waves", e.Description)
			return nil
		})

	report, note := svc.SubmitForm(ctx, &f)

	assert.Equal(t, "tsunami_warning", report.HazardType)
	assert.True(t, f.IsEmpty())
	assert.Equal(t, form.LevelSuccess, note.Level)
}

func TestSubmitForm_PublishFailureDoesNotFail(t *testing.T) {
	svc, deps := newTestReportService(t)
	ctx := context.Background()
	f := submittableForm()

	deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	deps.repo.EXPECT().SetReportCache(ctx, gomock.Any()).Return(fmt.Errorf("redis down"))
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(fmt.Errorf("redis down"))

	report, _ := svc.SubmitForm(ctx, &f)

	assert.NotNil(t, report)
	assert.True(t, f.IsEmpty())
	assert.InDelta(t, 1, testutil.ToFloat64(deps.metrics.EventsPublished.WithLabelValues("webhook", "error")), 1e-9)
}

func TestCreateDraft(t *testing.T) {
	svc, deps := newTestReportService(t)
	ctx := context.Background()

	deps.drafts.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	draft, err := svc.CreateDraft(ctx)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, draft.ID)
	assert.Equal(t, form.Empty(), draft.Form)
	assert.Equal(t, testNow, draft.UpdatedAt)
}

func TestUpdateDraftField_OnlyTouchesOneField(t *testing.T) {
	svc, deps := newTestReportService(t)
	ctx := context.Background()
	draftID := uuid.New()
	stored := &models.Draft{ID: draftID, Form: submittableForm()}

	deps.drafts.EXPECT().Get(ctx, draftID).Return(stored, nil)
	deps.drafts.EXPECT().Save(ctx, stored).Return(nil)

	draft, err := svc.UpdateDraftField(ctx, draftID, form.FieldLocation, "Kochi Port")

	require.NoError(t, err)
	expected := submittableForm()
	expected.Location = "Kochi Port"
	assert.Equal(t, expected, draft.Form)
}

func TestUpdateDraftField_UnknownField(t *testing.T) {
	svc, deps := newTestReportService(t)
	ctx := context.Background()
	draftID := uuid.New()

	deps.drafts.EXPECT().Get(ctx, draftID).Return(&models.Draft{ID: draftID, Form: form.Empty()}, nil)

	_, err := svc.UpdateDraftField(ctx, draftID, form.Field("photos"), "x")

	assert.True(t, errors.Is(err, form.ErrUnknownField))
}

func TestGetDraft_NotFound(t *testing.T) {
	svc, deps := newTestReportService(t)
	ctx := context.Background()
	draftID := uuid.New()

	deps.drafts.EXPECT().Get(ctx, draftID).Return(nil, models.ErrDraftNotFound)

	_, err := svc.GetDraft(ctx, draftID)

	assert.True(t, errors.Is(err, models.ErrDraftNotFound))
}

func TestApplyLocation(t *testing.T) {
	svc, deps := newTestReportService(t)
	ctx := context.Background()
	draftID := uuid.New()

	deps.drafts.EXPECT().Get(ctx, draftID).Return(&models.Draft{ID: draftID, Form: form.Empty()}, nil)
	deps.drafts.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	draft, note, err := svc.ApplyLocation(ctx, draftID, form.Position{Latitude: 13.0827, Longitude: 80.2707})

	require.NoError(t, err)
	assert.Equal(t, "13.082700", draft.Form.Latitude)
	assert.Equal(t, "80.270700", draft.Form.Longitude)
	assert.Equal(t, "Location captured successfully!", note.Title)
	assert.InDelta(t, 1, testutil.ToFloat64(deps.metrics.GeolocationOutcomes.WithLabelValues("success")), 1e-9)
}

func TestApplyLocation_OutOfRange(t *testing.T) {
	svc, deps := newTestReportService(t)
	ctx := context.Background()
	draftID := uuid.New()

	deps.drafts.EXPECT().Get(ctx, draftID).Return(&models.Draft{ID: draftID, Form: form.Empty()}, nil)

	_, _, err := svc.ApplyLocation(ctx, draftID, form.Position{Latitude: 91})

	assert.True(t, errors.Is(err, models.ErrInvalidReport))
}

func TestLocationFailed_LeavesDraft(t *testing.T) {
	svc, deps := newTestReportService(t)
	ctx := context.Background()
	draftID := uuid.New()
	stored := &models.Draft{ID: draftID, Form: submittableForm()}

	deps.drafts.EXPECT().Get(ctx, draftID).Return(stored, nil)

	draft, note, err := svc.LocationFailed(ctx, draftID)

	require.NoError(t, err)
	assert.Equal(t, submittableForm(), draft.Form)
	assert.Equal(t, form.LevelError, note.Level)
	assert.Equal(t, "Unable to get location. Please enter manually.", note.Title)
	assert.InDelta(t, 1, testutil.ToFloat64(deps.metrics.GeolocationOutcomes.WithLabelValues("error")), 1e-9)
}

func TestAddPhotos_LimitLeavesDraftUnchanged(t *testing.T) {
	svc, deps := newTestReportService(t)
	ctx := context.Background()
	draftID := uuid.New()

	photos := make([]form.Attachment, form.MaxPhotos+1)
	for i := range photos {
		photos[i] = form.Attachment{FileName: fmt.Sprintf("p%d.jpg", i), Size: 10}
	}
	stored := &models.Draft{ID: draftID, Form: form.Empty()}
	deps.drafts.EXPECT().Get(ctx, draftID).Return(stored, nil)

	_, err := svc.AddPhotos(ctx, draftID, photos)

	assert.True(t, errors.Is(err, form.ErrTooManyPhotos))
	assert.Empty(t, stored.Form.Photos)
}

func TestSubmitDraft_SavesResetDraft(t *testing.T) {
	svc, deps := newTestReportService(t)
	ctx := context.Background()
	draftID := uuid.New()

	deps.drafts.EXPECT().Get(ctx, draftID).Return(&models.Draft{ID: draftID, Form: submittableForm()}, nil)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	deps.repo.EXPECT().SetReportCache(ctx, gomock.Any()).Return(nil)
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
	deps.drafts.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Draft) error {
			assert.True(t, d.Form.IsEmpty())
			return nil
		})

	report, draft, note, err := svc.SubmitDraft(ctx, draftID)

	require.NoError(t, err)
	assert.Equal(t, "Large waves", report.Description)
	assert.Equal(t, form.Empty(), draft.Form)
	assert.Equal(t, form.LevelSuccess, note.Level)
}

func TestGetReport_FromCache(t *testing.T) {
	svc, deps := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()
	expected := &models.HazardReport{ID: reportID, Description: "из кеша"}

	deps.repo.EXPECT().GetReportFromCache(ctx, reportID).Return(expected, nil)

	report, err := svc.GetReport(ctx, reportID)

	require.NoError(t, err)
	assert.Equal(t, expected, report)
}

func TestGetReport_FromDB(t *testing.T) {
	svc, deps := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()
	expected := &models.HazardReport{ID: reportID, Description: "из БД"}

	// 1. Ошибка кеша не мешает чтению из БД
	deps.repo.EXPECT().GetReportFromCache(ctx, reportID).Return(nil, fmt.Errorf("redis down"))
	// 2. Попадание в БД
	deps.repo.EXPECT().GetByID(ctx, reportID).Return(expected, nil)
	// 3. Запись в кеш
	deps.repo.EXPECT().SetReportCache(ctx, expected).Return(nil)

	report, err := svc.GetReport(ctx, reportID)

	require.NoError(t, err)
	assert.Equal(t, expected, report)
}

func TestGetReport_NotFound(t *testing.T) {
	svc, deps := newTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()

	deps.repo.EXPECT().GetReportFromCache(ctx, reportID).Return(nil, nil)
	deps.repo.EXPECT().GetByID(ctx, reportID).Return(nil, fmt.Errorf("report %s: %w", reportID, models.ErrReportNotFound))

	report, err := svc.GetReport(ctx, reportID)

	assert.Nil(t, report)
	assert.True(t, errors.Is(err, models.ErrReportNotFound))
}

func TestListReports_ClampsPaging(t *testing.T) {
	svc, deps := newTestReportService(t)
	ctx := context.Background()

	deps.repo.EXPECT().List(ctx, 1, 20).Return([]*models.HazardReport{}, nil)

	reports, err := svc.ListReports(ctx, 0, 500)

	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestGetStats(t *testing.T) {
	svc, deps := newTestReportService(t)
	ctx := context.Background()

	deps.repo.EXPECT().CountBySeverity(ctx, 60).Return(map[string]int{"high": 2, "low": 1}, nil)

	stats, err := svc.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 60, stats.WindowMinutes)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.BySeverity["high"])
}
