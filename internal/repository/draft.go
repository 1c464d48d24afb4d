package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/ocean_watch/internal/models"
	"github.com/shenikar/ocean_watch/internal/service"
)

// DraftRepository хранит черновики формы в Redis. Каждое сохранение продлевает TTL.
type DraftRepository struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewDraftRepository(redisClient *redis.Client, ttl time.Duration) service.DraftStore {
	return &DraftRepository{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (r *DraftRepository) Save(ctx context.Context, draft *models.Draft) error {
	val, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := r.redisClient.Set(ctx, draftKey(draft.ID), val, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (r *DraftRepository) Get(ctx context.Context, id uuid.UUID) (*models.Draft, error) {
	val, err := r.redisClient.Get(ctx, draftKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("draft %s: %w", id, models.ErrDraftNotFound)
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	draft := &models.Draft{}
	if err := json.Unmarshal(val, draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return draft, nil
}

func (r *DraftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, draftKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

func draftKey(id uuid.UUID) string {
	return "report_draft:" + id.String()
}
