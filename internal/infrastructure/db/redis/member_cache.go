package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/clanops/clan-gateway/internal/api/metrics"
	"github.com/clanops/clan-gateway/internal/core/domain"
)

const (
	defaultCacheTTL = 5 * time.Minute
	scanBatch       = 100
)

var _ domain.ClanRequester = (*CachedRequester)(nil)

// CachedRequester is a read-through cache in front of another requester.
// Lookup failures fall through to the inner requester; errors from inner are
// never cached.
//
// Keys:
//
//	clan:<id>:members:<type>
//	clan:<id>:member:<type>:<lowercased name>
type CachedRequester struct {
	client *redis.Client
	inner  domain.ClanRequester
	ttl    time.Duration
	log    zerolog.Logger
}

func NewCachedRequester(client *redis.Client, inner domain.ClanRequester, ttl time.Duration, log zerolog.Logger) *CachedRequester {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachedRequester{client: client, inner: inner, ttl: ttl, log: log}
}

func (c *CachedRequester) FetchClanMember(ctx context.Context, clanID int64, name string, t domain.MembershipType) (*domain.ClanMember, error) {
	key := memberKey(clanID, name, t)

	var cached domain.ClanMember
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}

	m, err := c.inner.FetchClanMember(ctx, clanID, name, t)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, m)
	return m, nil
}

func (c *CachedRequester) FetchClanMembers(ctx context.Context, clanID int64, t domain.MembershipType) ([]*domain.ClanMember, error) {
	key := membersKey(clanID, t)

	var cached []*domain.ClanMember
	if c.get(ctx, key, &cached) {
		return cached, nil
	}

	members, err := c.inner.FetchClanMembers(ctx, clanID, t)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, members)
	return members, nil
}

// Invalidate drops every cached lookup of clanID.
func (c *CachedRequester) Invalidate(ctx context.Context, clanID int64) error {
	var cursor uint64
	pattern := clanPrefix(clanID) + "*"
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return fmt.Errorf("scan %s: %w", pattern, err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("del %s: %w", pattern, err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (c *CachedRequester) get(ctx context.Context, key string, dst any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		metrics.MemberCacheTotal.WithLabelValues("miss").Inc()
		return false
	case err != nil:
		metrics.MemberCacheTotal.WithLabelValues("error").Inc()
		c.log.Warn().Err(err).Str("key", key).Msg("member cache read failed")
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		metrics.MemberCacheTotal.WithLabelValues("error").Inc()
		c.log.Warn().Err(err).Str("key", key).Msg("member cache entry undecodable")
		return false
	}
	metrics.MemberCacheTotal.WithLabelValues("hit").Inc()
	return true
}

func (c *CachedRequester) set(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("member cache encode failed")
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("member cache write failed")
	}
}

func clanPrefix(clanID int64) string {
	return fmt.Sprintf("clan:%d:", clanID)
}

func membersKey(clanID int64, t domain.MembershipType) string {
	return fmt.Sprintf("%smembers:%d", clanPrefix(clanID), keyType(t))
}

func memberKey(clanID int64, name string, t domain.MembershipType) string {
	return fmt.Sprintf("%smember:%d:%s", clanPrefix(clanID), keyType(t), strings.ToLower(name))
}

// keyType folds the any-platform filters onto one key.
func keyType(t domain.MembershipType) int {
	if t.AnyPlatform() {
		return int(domain.MembershipTypeNone)
	}
	return int(t)
}
