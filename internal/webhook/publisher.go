package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/ocean_watch/internal/models"
)

const reviewQueueKey = "hazard_report_review_queue"

// RedisReviewQueue ставит события о новых сообщениях в очередь Redis для воркера вебхуков
type RedisReviewQueue struct {
	redisClient *redis.Client
}

func NewRedisReviewQueue(client *redis.Client) *RedisReviewQueue {
	return &RedisReviewQueue{
		redisClient: client,
	}
}

// Publish добавляет событие в левую часть списка, воркер забирает справа
func (p *RedisReviewQueue) Publish(ctx context.Context, event models.ReportEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal report event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, reviewQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue report event: %w", err)
	}
	return nil
}
