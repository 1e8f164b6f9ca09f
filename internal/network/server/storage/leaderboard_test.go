package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Congyuwang/wuziqi/internal/network/server/types"
)

func newTestLeaderboardManager(t *testing.T) *LeaderboardManager {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return NewLeaderboardManager(client)
}

func TestLeaderboard_RecordWin(t *testing.T) {
	t.Parallel()

	lm := newTestLeaderboardManager(t)
	ctx := context.Background()

	require.NoError(t, lm.RecordWin(ctx, "Alice"))
	require.NoError(t, lm.RecordWin(ctx, "Alice"))
	require.NoError(t, lm.RecordWin(ctx, "Bob"))

	top, err := lm.GetTop(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []types.LeaderboardEntry{
		{Name: "Alice", Wins: 2},
		{Name: "Bob", Wins: 1},
	}, top)
}

func TestLeaderboard_GetTopLimit(t *testing.T) {
	t.Parallel()

	lm := newTestLeaderboardManager(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, lm.RecordWin(ctx, "Alice"))
	}
	require.NoError(t, lm.RecordWin(ctx, "Bob"))
	require.NoError(t, lm.RecordWin(ctx, "Carol"))

	top, err := lm.GetTop(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Alice", top[0].Name)

	// limit 不为正时不查询
	top, err = lm.GetTop(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestLeaderboard_Empty(t *testing.T) {
	t.Parallel()

	lm := newTestLeaderboardManager(t)

	top, err := lm.GetTop(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, top)
}
