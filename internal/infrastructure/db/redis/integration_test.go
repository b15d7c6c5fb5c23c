//go:build integration

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/clanops/clan-gateway/internal/core/domain"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start redis container")
	testcontainers.CleanupContainer(t, ctr)

	endpoint, err := ctr.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := Connect(ctx, Config{Addr: endpoint})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestCachedRequester_Integration(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()

	inner := &countingRequester{}
	c := NewCachedRequester(client, inner, time.Minute, zerolog.Nop())

	for n := 0; n < 3; n++ {
		members, err := c.FetchClanMembers(ctx, 998271, domain.MembershipTypeNone)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, int64(998271), members[0].GroupID)
	}
	assert.Equal(t, 1, inner.calls)

	_, err := c.FetchClanMember(ctx, 998271, "Thom", domain.MembershipTypeSteam)
	require.NoError(t, err)
	_, err = c.FetchClanMember(ctx, 998271, "thom", domain.MembershipTypeSteam)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)

	require.NoError(t, c.Invalidate(ctx, 998271))
	_, err = c.FetchClanMembers(ctx, 998271, domain.MembershipTypeNone)
	require.NoError(t, err)
	assert.Equal(t, 3, inner.calls)
}

func TestDedupChecker_Integration(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()
	d := NewDedupChecker(client, time.Minute)

	at := time.Now()
	dup, err := d.IsDuplicate(ctx, 7, at)
	require.NoError(t, err)
	assert.False(t, dup)

	require.NoError(t, d.Mark(ctx, 7, at))
	dup, err = d.IsDuplicate(ctx, 7, at)
	require.NoError(t, err)
	assert.True(t, dup)

	dup, err = d.IsDuplicate(ctx, 7, at.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, dup)
}
