package guidance

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"luster/internal/application/inspection/usecases"
	"luster/internal/shared/logger"
)

const guidanceKeyPrefix = "guidance:category:"

// CachedProvider is a read-through Redis cache in front of another provider.
// Guidance is best-effort data, so cache failures degrade to the inner
// provider instead of surfacing.
type CachedProvider struct {
	inner  usecases.GuidanceProvider
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewCachedProvider(inner usecases.GuidanceProvider, client *redis.Client, ttl time.Duration, logger logger.Interface) *CachedProvider {
	return &CachedProvider{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (p *CachedProvider) ForCategories(ctx context.Context, categories []string) (map[string][]string, error) {
	guidance := make(map[string][]string, len(categories))
	missing := make([]string, 0)

	for _, category := range categories {
		hints, ok := p.fromCache(ctx, category)
		if ok {
			if len(hints) > 0 {
				guidance[category] = hints
			}
			continue
		}
		missing = append(missing, category)
	}

	if len(missing) == 0 {
		return guidance, nil
	}

	fresh, err := p.inner.ForCategories(ctx, missing)
	if err != nil {
		return nil, err
	}

	for _, category := range missing {
		hints := fresh[category]
		if len(hints) > 0 {
			guidance[category] = hints
		}
		// Empty entries are cached too, so unknown categories do not hit
		// the database on every view.
		p.toCache(ctx, category, hints)
	}

	return guidance, nil
}

func (p *CachedProvider) fromCache(ctx context.Context, category string) ([]string, bool) {
	raw, err := p.client.Get(ctx, guidanceKeyPrefix+category).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		p.logger.Warnw("guidance cache read failed", "category", category, "error", err)
		return nil, false
	}

	var hints []string
	if err := json.Unmarshal([]byte(raw), &hints); err != nil {
		p.logger.Warnw("guidance cache entry corrupt, ignoring", "category", category, "error", err)
		return nil, false
	}
	return hints, true
}

func (p *CachedProvider) toCache(ctx context.Context, category string, hints []string) {
	if hints == nil {
		hints = []string{}
	}
	raw, err := json.Marshal(hints)
	if err != nil {
		return
	}
	if err := p.client.Set(ctx, guidanceKeyPrefix+category, raw, p.ttl).Err(); err != nil {
		p.logger.Warnw("guidance cache write failed", "category", category, "error", err)
	}
}
