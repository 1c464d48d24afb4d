package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/ocean_watch/internal/models"
	"github.com/shenikar/ocean_watch/internal/service"
)

const reportColumns = `id, hazard_type, location, latitude, longitude, severity, description, photos, status, submitted_at`

type ReportRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewReportRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.ReportRepository {
	return &ReportRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create сохраняет отправленное сообщение. ID назначается сервисом
func (r *ReportRepository) Create(ctx context.Context, report *models.HazardReport) error {
	query := `
		INSERT INTO hazard_reports (id, hazard_type, location, latitude, longitude, severity, description, photos, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		report.ID,
		report.HazardType,
		report.Location,
		report.Latitude,
		report.Longitude,
		report.Severity,
		report.Description,
		report.Photos,
		report.Status,
		report.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create hazard report: %w", err)
	}
	return nil
}

// GetByID возвращает сообщение по его UUID
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.HazardReport, error) {
	query := `SELECT ` + reportColumns + ` FROM hazard_reports WHERE id = $1;`

	report, err := scanReport(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report %s: %w", id, models.ErrReportNotFound)
		}
		return nil, fmt.Errorf("failed to get hazard report by id: %w", err)
	}
	return report, nil
}

// List возвращает сообщения с пагинацией, новые первыми
func (r *ReportRepository) List(ctx context.Context, page, pageSize int) ([]*models.HazardReport, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT ` + reportColumns + `
		FROM hazard_reports
		ORDER BY submitted_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list hazard reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.HazardReport, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hazard report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return reports, nil
}

// CountBySeverity возвращает количество сообщений за последние minutes минут по уровням опасности.
// Сообщения без уровня считаются как "unspecified"
func (r *ReportRepository) CountBySeverity(ctx context.Context, minutes int) (map[string]int, error) {
	query := `
		SELECT COALESCE(NULLIF(severity, ''), 'unspecified') AS level, COUNT(*)
		FROM hazard_reports
		WHERE submitted_at >= NOW() - ($1 * INTERVAL '1 minute')
		GROUP BY level;
	`
	rows, err := r.db.Query(ctx, query, minutes)
	if err != nil {
		return nil, fmt.Errorf("failed to count hazard reports: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			severity string
			count    int
		)
		if err := rows.Scan(&severity, &count); err != nil {
			return nil, fmt.Errorf("failed to scan severity count: %w", err)
		}
		counts[severity] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error severity count iteration: %w", err)
	}
	return counts, nil
}

// GetReportFromCache пытается получить сообщение из Redis. Промах дает nil без ошибки.
func (r *ReportRepository) GetReportFromCache(ctx context.Context, id uuid.UUID) (*models.HazardReport, error) {
	val, err := r.redisClient.Get(ctx, reportCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hazard report from cache: %w", err)
	}

	report := &models.HazardReport{}
	if err := json.Unmarshal(val, report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hazard report from cache: %w", err)
	}
	return report, nil
}

// SetReportCache сохраняет сообщение в Redis
func (r *ReportRepository) SetReportCache(ctx context.Context, report *models.HazardReport) error {
	val, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal hazard report for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, reportCacheKey(report.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set hazard report in cache: %w", err)
	}
	return nil
}

func reportCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("hazard_report:%s", id.String())
}

func scanReport(row pgx.Row) (*models.HazardReport, error) {
	report := &models.HazardReport{}
	err := row.Scan(
		&report.ID,
		&report.HazardType,
		&report.Location,
		&report.Latitude,
		&report.Longitude,
		&report.Severity,
		&report.Description,
		&report.Photos,
		&report.Status,
		&report.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}
	return report, nil
}
