package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// DedupChecker remembers applied roster snapshots.
// Key format: snapshot:<clan_id>:<fetched_at_unix>
type DedupChecker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDedupChecker wraps client. A non-positive ttl keeps keys for a day.
func NewDedupChecker(client *redis.Client, ttl time.Duration) *DedupChecker {
	if ttl <= 0 {
		ttl = dedupTTL
	}
	return &DedupChecker{client: client, ttl: ttl}
}

// IsDuplicate reports whether the snapshot of clanID taken at fetchedAt was
// already applied.
func (d *DedupChecker) IsDuplicate(ctx context.Context, clanID int64, fetchedAt time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, snapshotKey(clanID, fetchedAt)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the snapshot as applied.
func (d *DedupChecker) Mark(ctx context.Context, clanID int64, fetchedAt time.Time) error {
	return d.client.Set(ctx, snapshotKey(clanID, fetchedAt), "1", d.ttl).Err()
}

func snapshotKey(clanID int64, fetchedAt time.Time) string {
	return fmt.Sprintf("snapshot:%d:%d", clanID, fetchedAt.Unix())
}
