// Package cache decorates repositories with a Redis read cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"quicksizer/internal/domain/entities"
	"quicksizer/internal/usecase/interfaces"
	"quicksizer/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

// Store is the subset of *redis.Client the cache uses.
type Store interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
}

var _ Store = (*goredis.Client)(nil)

// EstimateCache serves stored estimates from Redis before hitting the wrapped repository.
// Estimates never change once written, so entries only expire by TTL. Lookups that find
// nothing are not cached. Redis failures are logged and bypassed.
type EstimateCache struct {
	next  interfaces.IEstimateRepository
	store Store
	ttl   time.Duration
	log   *logger.Logger
}

var _ interfaces.IEstimateRepository = (*EstimateCache)(nil)

func NewEstimateCache(next interfaces.IEstimateRepository, store Store, ttl time.Duration, log *logger.Logger) *EstimateCache {
	if log == nil {
		log = logger.NewNop()
	}
	return &EstimateCache{
		next:  next,
		store: store,
		ttl:   ttl,
		log:   log.With("service", "EstimateCache"),
	}
}

func estimateKey(questionnaireID int64) string {
	return "estimate:q:" + strconv.FormatInt(questionnaireID, 10)
}

func (c *EstimateCache) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	created, err := c.next.Create(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	c.put(ctx, created)
	return created, nil
}

func (c *EstimateCache) GetByQuestionnaireID(ctx context.Context, questionnaireID int64) (entities.Estimate, error) {
	key := estimateKey(questionnaireID)

	raw, err := c.store.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var e entities.Estimate
		jerr := json.Unmarshal(raw, &e)
		if jerr == nil {
			return e, nil
		}
		c.log.Warn("discarding unreadable cache entry", "key", key, "error", jerr)
	case errors.Is(err, goredis.Nil):
	default:
		c.log.Warn("cache read failed", "key", key, "error", err)
	}

	e, err := c.next.GetByQuestionnaireID(ctx, questionnaireID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID != 0 {
		c.put(ctx, e)
	}
	return e, nil
}

func (c *EstimateCache) put(ctx context.Context, e entities.Estimate) {
	raw, err := json.Marshal(e)
	if err != nil {
		c.log.Warn("cache encode failed", "questionnaire_id", e.QuestionnaireID, "error", err)
		return
	}
	if err := c.store.Set(ctx, estimateKey(e.QuestionnaireID), raw, c.ttl).Err(); err != nil {
		c.log.Warn("cache write failed", "questionnaire_id", e.QuestionnaireID, "error", err)
	}
}
