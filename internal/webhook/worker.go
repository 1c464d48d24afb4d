package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/ocean_watch/internal/config"
	"github.com/shenikar/ocean_watch/internal/metrics"
	"github.com/shenikar/ocean_watch/internal/models"
)

const signatureHeader = "X-Webhook-Signature"

// WebhookWorker доставляет события из очереди проверки на WEBHOOK_URL
type WebhookWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	metrics     *metrics.Metrics
	clock       clockwork.Clock
	httpClient  *http.Client
}

func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config, m *metrics.Metrics, clock clockwork.Clock) *WebhookWorker {
	return &WebhookWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		metrics:     m,
		clock:       clock,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину обработки очереди. Горутина завершается при отмене ctx.
func (w *WebhookWorker) Start(ctx context.Context) {
	w.logger.Info("Starting webhook worker...")
	go func() {
		for {
			// 0 - ждем без ограничения, пока не появится событие или не отменится ctx
			result, err := w.redisClient.BRPop(ctx, 0, reviewQueueKey).Result()
			if err != nil {
				if ctx.Err() != nil {
					w.logger.Info("Stopping webhook worker.")
					return
				}
				w.logger.WithError(err).Error("Failed to pop report event from Redis")
				if !w.sleep(ctx, w.cfg.WebhookTimeout) {
					w.logger.Info("Stopping webhook worker.")
					return
				}
				continue
			}

			// result[0] - ключ, result[1] - значение
			w.processEvent(ctx, result[1])
		}
	}()
}

func (w *WebhookWorker) processEvent(ctx context.Context, rawPayload string) {
	var event models.ReportEvent
	if err := json.Unmarshal([]byte(rawPayload), &event); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal report event from Redis")
		return
	}

	log := w.logger.WithFields(logrus.Fields{
		"report_id": event.ReportID,
		"severity":  event.Severity,
	})

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		w.metrics.WebhookDeliveries.WithLabelValues("skipped").Inc()
		return
	}

	if w.deliver(ctx, log, rawPayload) {
		w.metrics.WebhookDeliveries.WithLabelValues("delivered").Inc()
		return
	}
	w.metrics.WebhookDeliveries.WithLabelValues("failed").Inc()
}

// deliver отправляет payload с экспоненциальной задержкой между попытками
func (w *WebhookWorker) deliver(ctx context.Context, log *logrus.Entry, rawPayload string) bool {
	maxRetries := w.cfg.WebhookMaxRetries
	delay := w.cfg.WebhookBaseDelay

	for attempt := 1; attempt <= maxRetries; attempt++ {
		status, err := w.send(ctx, rawPayload)
		switch {
		case err != nil:
			log.WithError(err).Warnf("Failed to send webhook. Attempt %d of %d", attempt, maxRetries)
		case status >= 200 && status < 300:
			log.Info("Webhook delivered successfully.")
			return true
		default:
			log.Warnf("Webhook delivery failed with status code %d. Attempt %d of %d", status, attempt, maxRetries)
		}

		if attempt == maxRetries {
			break
		}
		if !w.sleep(ctx, delay) {
			return false
		}
		delay *= 2
	}

	log.Errorf("Failed to deliver webhook after %d attempts.", maxRetries)
	return false
}

func (w *WebhookWorker) send(ctx context.Context, rawPayload string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	// Подпись добавляется, только если задан WEBHOOK_SECRET
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

// sleep ждет d по часам воркера. false означает отмену ctx.
func (w *WebhookWorker) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-w.clock.After(d):
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
