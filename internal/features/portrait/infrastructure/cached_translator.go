package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// CachedTranslator remembers successful translations for a fixed TTL.
// Concurrent requests for the same text share one upstream call. Failures are never cached.
type CachedTranslator struct {
	next  Translator
	ttl   time.Duration
	cache *cache.Cache
	group singleflight.Group
}

// NewCachedTranslator wraps next with a TTL cache.
func NewCachedTranslator(next Translator, ttl time.Duration) *CachedTranslator {
	return &CachedTranslator{
		next:  next,
		ttl:   ttl,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *CachedTranslator) Name() string { return c.next.Name() }

func (c *CachedTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	key := source + ":" + target + ":" + text
	if v, ok := c.cache.Get(key); ok {
		if s, ok := v.(string); ok {
			return s, nil
		}
	}

	// the shared call outlives any single caller; each caller only stops waiting on its own ctx
	sharedCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (interface{}, error) {
		// another caller may have filled the cache while this one waited
		if v, ok := c.cache.Get(key); ok {
			return v, nil
		}
		out, err := c.next.Translate(sharedCtx, text, source, target)
		if err != nil {
			return nil, err
		}
		c.cache.Set(key, out, c.ttl)
		return out, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return "", res.Err
	}

	out, ok := res.Val.(string)
	if !ok {
		return "", fmt.Errorf("unexpected return type from singleflight: %T", res.Val)
	}
	return out, nil
}
